package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
)

// MockQuestionRepository is a mock implementation of QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) UpdateLikeCount(ctx context.Context, id uuid.UUID, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *MockQuestionRepository) IncrementLikeCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func likedQuestion(id uuid.UUID, count int) *model.Question {
	return &model.Question{
		ID:        id,
		Text:      "What was your favorite meal growing up?",
		LikeCount: count,
		User: &model.User{
			ID:        uuid.New(),
			FirstName: "Maria",
			LastName:  "Santos",
		},
	}
}

func TestQuestionService_Like_IncrementsByOne(t *testing.T) {
	tests := []struct {
		name         string
		currentCount int
		wantCount    int
	}{
		{name: "existing count", currentCount: 2, wantCount: 3},
		{name: "absent count treated as zero", currentCount: 0, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionID := uuid.New()
			repo := new(MockQuestionRepository)
			repo.On("FindByID", mock.Anything, questionID).
				Return(&model.Question{ID: questionID, LikeCount: tt.currentCount}, nil).Once()
			repo.On("UpdateLikeCount", mock.Anything, questionID, tt.wantCount).
				Return(nil).Once()
			repo.On("FindByIDWithAuthor", mock.Anything, questionID).
				Return(likedQuestion(questionID, tt.wantCount), nil).Once()

			svc := NewQuestionService(repo, new(MockUserRepository), nil, false)

			updated, err := svc.Like(context.Background(), questionID)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, updated.LikeCount)
			assert.Equal(t, "Maria", updated.Author().FirstName)
			assert.Equal(t, "Santos", updated.Author().LastName)
			repo.AssertExpectations(t)
		})
	}
}

func TestQuestionService_Like_NotFound(t *testing.T) {
	questionID := uuid.New()
	repo := new(MockQuestionRepository)
	repo.On("FindByID", mock.Anything, questionID).
		Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewQuestionService(repo, new(MockUserRepository), nil, false)

	updated, err := svc.Like(context.Background(), questionID)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	repo.AssertNotCalled(t, "UpdateLikeCount", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The default path is read-then-write with no isolation: when two likes read
// the same pre-increment value, both write the same post-increment value and
// the net effect is +1, not +2. That behavior is part of the contract.
func TestQuestionService_Like_LostUpdateIsLegal(t *testing.T) {
	questionID := uuid.New()
	repo := new(MockQuestionRepository)
	// Both likes observe the same stale count.
	repo.On("FindByID", mock.Anything, questionID).
		Return(&model.Question{ID: questionID, LikeCount: 5}, nil).Twice()
	repo.On("UpdateLikeCount", mock.Anything, questionID, 6).
		Return(nil).Twice()
	repo.On("FindByIDWithAuthor", mock.Anything, questionID).
		Return(likedQuestion(questionID, 6), nil).Twice()

	svc := NewQuestionService(repo, new(MockUserRepository), nil, false)

	first, err := svc.Like(context.Background(), questionID)
	assert.NoError(t, err)
	second, err := svc.Like(context.Background(), questionID)
	assert.NoError(t, err)

	assert.Equal(t, 6, first.LikeCount)
	assert.Equal(t, 6, second.LikeCount)
	repo.AssertExpectations(t)
}

func TestQuestionService_Like_AtomicPath(t *testing.T) {
	questionID := uuid.New()
	repo := new(MockQuestionRepository)
	repo.On("IncrementLikeCount", mock.Anything, questionID).Return(nil).Once()
	repo.On("FindByIDWithAuthor", mock.Anything, questionID).
		Return(likedQuestion(questionID, 8), nil).Once()

	svc := NewQuestionService(repo, new(MockUserRepository), nil, true)

	updated, err := svc.Like(context.Background(), questionID)
	assert.NoError(t, err)
	assert.Equal(t, 8, updated.LikeCount)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateLikeCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionService_Like_AtomicPathNotFound(t *testing.T) {
	questionID := uuid.New()
	repo := new(MockQuestionRepository)
	repo.On("IncrementLikeCount", mock.Anything, questionID).
		Return(gorm.ErrRecordNotFound).Once()

	svc := NewQuestionService(repo, new(MockUserRepository), nil, true)

	updated, err := svc.Like(context.Background(), questionID)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestQuestionService_SeedDemo_SkipsExisting(t *testing.T) {
	users := new(MockUserRepository)
	questions := new(MockQuestionRepository)

	// First demo user already exists, the rest is missing.
	users.On("FindByID", mock.Anything, demoUsers[0].ID).
		Return(&demoUsers[0], nil).Once()
	users.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	questions.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)
	questions.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewQuestionService(questions, users, nil, false)

	created, err := svc.SeedDemo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, len(demoUsers)-1+len(demoQuestions), created)
}
