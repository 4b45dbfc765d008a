package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"familyboard/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Question, error)
	UpdateLikeCount(ctx context.Context, id uuid.UUID, count int) error
	IncrementLikeCount(ctx context.Context, id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts a new question.
func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// FindByID finds a question by ID without loading relations.
func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDWithAuthor finds a question by ID with the owning user joined in.
func (r *questionRepository) FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Preload("User").
		Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateLikeCount writes an absolute like count.
func (r *questionRepository) UpdateLikeCount(ctx context.Context, id uuid.UUID, count int) error {
	return r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		Update("like_count", count).Error
}

// IncrementLikeCount bumps the like count by one in a single statement.
func (r *questionRepository) IncrementLikeCount(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
