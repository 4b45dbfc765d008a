package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// EnvHandler serves the configuration diagnostic endpoint.
type EnvHandler struct{}

// NewEnvHandler creates a new env handler.
func NewEnvHandler() *EnvHandler {
	return &EnvHandler{}
}

// EnvCheck godoc
// @Summary Report which tabular-store variables are present
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /env-check [get]
func (h *EnvHandler) EnvCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"AIRTABLE_API_KEY":    os.Getenv("AIRTABLE_API_KEY") != "",
		"AIRTABLE_BASE_ID":    os.Getenv("AIRTABLE_BASE_ID") != "",
		"AIRTABLE_TABLE_NAME": os.Getenv("AIRTABLE_TABLE_NAME") != "",
	})
}
