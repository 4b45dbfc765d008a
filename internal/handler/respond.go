package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	apperrors "familyboard/internal/errors"
)

// respondError maps err onto the failure envelope and writes it. Server-side
// failures are logged before the response goes out.
func respondError(c echo.Context, op string, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("request failed")
	}
	return c.JSON(httpErr.StatusCode, httpErr.Envelope())
}

// respondBadRequest writes the bare {error} shape used for malformed input.
func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": message})
}
