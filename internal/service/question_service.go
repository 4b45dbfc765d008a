package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"familyboard/internal/cache"
	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
	"familyboard/internal/repository"
)

// QuestionService handles question mutations.
type QuestionService interface {
	Like(ctx context.Context, id uuid.UUID) (*model.Question, error)
	SeedDemo(ctx context.Context) (int, error)
}

type questionService struct {
	questions   repository.QuestionRepository
	users       repository.UserRepository
	cache       *cache.Client
	atomicLikes bool
}

// NewQuestionService creates a new question service. atomicLikes selects the
// single-statement increment instead of the legacy read-then-write pair.
func NewQuestionService(
	questions repository.QuestionRepository,
	users repository.UserRepository,
	cache *cache.Client,
	atomicLikes bool,
) QuestionService {
	return &questionService{
		questions:   questions,
		users:       users,
		cache:       cache,
		atomicLikes: atomicLikes,
	}
}

// Like adds one like to a question and returns the updated record with the
// author {first_name, last_name} joined in.
//
// The default path is read-then-write with no isolation: two concurrent
// likes may read the same count and collapse into a single increment.
func (s *questionService) Like(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	if s.atomicLikes {
		if err := s.questions.IncrementLikeCount(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrQuestionNotFound
			}
			return nil, fmt.Errorf("increment like count: %w", err)
		}
	} else {
		question, err := s.questions.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrQuestionNotFound
			}
			return nil, fmt.Errorf("fetch question: %w", err)
		}
		// Absent count is the zero value, so this also covers rows
		// created before the counter column existed.
		if err := s.questions.UpdateLikeCount(ctx, id, question.LikeCount+1); err != nil {
			return nil, fmt.Errorf("update like count: %w", err)
		}
	}

	updated, err := s.questions.FindByIDWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch updated question: %w", err)
	}

	_ = s.cache.Delete(ctx, questionsCacheKey)
	return updated, nil
}

// SeedDemo creates the bundled demo family and its questions, skipping
// entries that already exist. Returns the number of records created.
func (s *questionService) SeedDemo(ctx context.Context) (int, error) {
	created := 0

	for i := range demoUsers {
		user := demoUsers[i]
		if _, err := s.users.FindByID(ctx, user.ID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check user %s: %w", user.ID, err)
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return created, fmt.Errorf("create user %s: %w", user.ID, err)
		}
		created++
	}

	for i := range demoQuestions {
		question := demoQuestions[i]
		if _, err := s.questions.FindByID(ctx, question.ID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check question %s: %w", question.ID, err)
		}
		if err := s.questions.Create(ctx, &question); err != nil {
			return created, fmt.Errorf("create question %s: %w", question.ID, err)
		}
		created++
	}

	_ = s.cache.Delete(ctx, questionsCacheKey)
	return created, nil
}
