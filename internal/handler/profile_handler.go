package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
	"familyboard/internal/service"
)

// ProfileHandler serves profile creation and lookup.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// CreateProfileRequest is the profile creation payload. The id is minted by
// the external session provider at signup.
type CreateProfileRequest struct {
	ID        string `json:"id" validate:"required,uuid"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=father mother grandfather grandmother son daughter other"`
	Persona   string `json:"persona,omitempty" validate:"omitempty,oneof=parent children"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active validating not_active"`
}

// CreateProfile godoc
// @Summary Create a family member profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body CreateProfileRequest true "Profile payload"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.Envelope
// @Router /profile [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return respondBadRequest(c, "invalid profile id")
	}

	if _, err := h.profiles.CreateProfile(c.Request().Context(), service.CreateProfileInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.Role(req.Role),
		Persona:   model.Persona(req.Persona),
		Status:    model.UserStatus(req.Status),
	}); err != nil {
		return respondError(c, "profile.create", err)
	}

	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true})
}

// GetProfile godoc
// @Summary Fetch a profile by id
// @Tags profile
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.Envelope
// @Router /profile/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid profile id")
	}

	user, err := h.profiles.GetProfile(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "profile.get", err)
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Record: user})
}
