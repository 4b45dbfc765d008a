package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
	"familyboard/internal/service"
)

// QuestionHandler serves question mutations.
type QuestionHandler struct {
	questions service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questions service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// QuestionRecord is the updated question returned by the like endpoint,
// with the author projection joined in.
type QuestionRecord struct {
	ID           uuid.UUID            `json:"id"`
	Text         string               `json:"text"`
	FileURL      string               `json:"file_url,omitempty"`
	LikeCount    int                  `json:"like_count"`
	CommentCount int                  `json:"comment_count"`
	MediaType    model.MediaType      `json:"media_type,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	User         model.QuestionAuthor `json:"user"`
}

// Like godoc
// @Summary Add one like to a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.Envelope
// @Router /questions/{id}/like [post]
func (h *QuestionHandler) Like(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "invalid question id")
	}

	question, err := h.questions.Like(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "questions.like", err)
	}

	return c.JSON(http.StatusOK, apperrors.Envelope{
		Success: true,
		Record: QuestionRecord{
			ID:           question.ID,
			Text:         question.Text,
			FileURL:      question.FileURL,
			LikeCount:    question.LikeCount,
			CommentCount: question.CommentCount,
			MediaType:    question.MediaType,
			CreatedAt:    question.CreatedAt,
			User:         question.Author(),
		},
	})
}
