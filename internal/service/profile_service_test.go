package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
)

func TestProfileService_CreateProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		input       CreateProfileInput
		wantStatus  model.UserStatus
		wantRole    model.Role
		wantPersona model.Persona
	}{
		{
			name: "explicit fields",
			input: CreateProfileInput{
				ID:        userID,
				FirstName: "Maria",
				LastName:  "Santos",
				Email:     "maria@example.com",
				Password:  "secret123",
				Role:      model.RoleMother,
				Persona:   model.PersonaParent,
				Status:    model.StatusActive,
			},
			wantStatus:  model.StatusActive,
			wantRole:    model.RoleMother,
			wantPersona: model.PersonaParent,
		},
		{
			name: "defaults applied",
			input: CreateProfileInput{
				ID:        userID,
				FirstName: "Lucas",
				LastName:  "Santos",
				Email:     "lucas@example.com",
			},
			wantStatus:  model.StatusValidating,
			wantRole:    model.RoleOther,
			wantPersona: model.PersonaChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			var created *model.User
			repo.On("Create", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					created = args.Get(1).(*model.User)
				}).
				Return(nil).Once()

			svc := NewProfileService(repo)

			user, err := svc.CreateProfile(context.Background(), tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.input.ID, user.ID)
			assert.Equal(t, tt.wantStatus, created.Status)
			assert.Equal(t, tt.wantRole, created.Role)
			assert.Equal(t, tt.wantPersona, created.Persona)

			if tt.input.Password != "" {
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(created.PasswordHash), []byte(tt.input.Password)))
			} else {
				assert.Empty(t, created.PasswordHash)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProfileService_CreateProfile_ConstraintViolation(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(gorm.ErrDuplicatedKey).Once()

	svc := NewProfileService(repo)

	user, err := svc.CreateProfile(context.Background(), CreateProfileInput{
		ID:        uuid.New(),
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@example.com",
	})
	assert.Nil(t, user)

	var adapterErr *apperrors.AdapterError
	assert.ErrorAs(t, err, &adapterErr)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	userID := uuid.New()
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, userID).
		Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewProfileService(repo)

	user, err := svc.GetProfile(context.Background(), userID)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileService_GetProfile_RoundTrip(t *testing.T) {
	stored := &model.User{
		ID:        uuid.New(),
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@example.com",
		Status:    model.StatusActive,
		Role:      model.RoleMother,
		Persona:   model.PersonaParent,
	}
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil).Once()

	svc := NewProfileService(repo)

	user, err := svc.GetProfile(context.Background(), stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, stored, user)
}
