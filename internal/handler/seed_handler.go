package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/service"
)

// SeedHandler serves demo data seeding.
type SeedHandler struct {
	questions service.QuestionService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(questions service.QuestionService) *SeedHandler {
	return &SeedHandler{questions: questions}
}

// SeedQuestions godoc
// @Summary Seed the demo family and questions
// @Tags seed
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /seed/questions [get]
func (h *SeedHandler) SeedQuestions(c echo.Context) error {
	count, err := h.questions.SeedDemo(c.Request().Context())
	if err != nil {
		return respondError(c, "seed.questions", err)
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{
		Success: true,
		Message: "seed completed",
		Count:   count,
	})
}
