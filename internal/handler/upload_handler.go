package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"familyboard/internal/storage"
)

// UploadHandler serves media uploads.
type UploadHandler struct {
	store *storage.LocalStore
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadResponse carries the root-relative URL of the stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Store an uploaded file under the public root
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to store"
// @Param folderPath formData string true "Subfolder beneath the public root"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondBadRequest(c, "file is required")
	}
	folderPath := c.FormValue("folderPath")
	if folderPath == "" {
		return respondBadRequest(c, "folderPath is required")
	}

	url, err := h.store.Save(file, folderPath)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFolderPath) {
			return respondBadRequest(c, err.Error())
		}
		log.Error().Err(err).Str("folder", folderPath).Msg("store upload")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store file"})
	}

	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}
