package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/service"
)

// RecordHandler serves the tabular-store listing endpoints.
type RecordHandler struct {
	records service.RecordService
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(records service.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// ListRecords godoc
// @Summary List rows from the configured tabular table
// @Tags records
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Failure 503 {object} errors.Envelope
// @Router /records [get]
func (h *RecordHandler) ListRecords(c echo.Context) error {
	if !h.records.IsConfigured() {
		return respondError(c, "records.list", apperrors.ErrTabularNotConfigured)
	}
	records, err := h.records.ListDefault(c.Request().Context())
	if err != nil {
		return respondError(c, "records.list", err)
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Records: records})
}

// ListUsers godoc
// @Summary List rows from the tabular user table
// @Tags records
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Failure 503 {object} errors.Envelope
// @Router /records/users [get]
func (h *RecordHandler) ListUsers(c echo.Context) error {
	if !h.records.IsConfigured() {
		return respondError(c, "records.users", apperrors.ErrTabularNotConfigured)
	}
	users, err := h.records.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, "records.users", err)
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Users: users})
}

// ListQuestions godoc
// @Summary List questions newest-first
// @Tags questions
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Failure 503 {object} errors.Envelope
// @Router /questions [get]
func (h *RecordHandler) ListQuestions(c echo.Context) error {
	if !h.records.IsConfigured() {
		return respondError(c, "questions.list", apperrors.ErrTabularNotConfigured)
	}
	records, err := h.records.ListQuestions(c.Request().Context())
	if err != nil {
		return respondError(c, "questions.list", err)
	}
	return c.JSON(http.StatusOK, apperrors.Envelope{Success: true, Records: records})
}
