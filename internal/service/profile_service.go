package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
	"familyboard/internal/repository"
)

// CreateProfileInput carries the validated profile-creation payload.
// ID comes from the external session provider, not from this service.
type CreateProfileInput struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      model.Role
	Persona   model.Persona
	Status    model.UserStatus
}

// ProfileService handles profile creation and lookup.
type ProfileService interface {
	CreateProfile(ctx context.Context, in CreateProfileInput) (*model.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type profileService struct {
	users repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

// CreateProfile hashes the credential material when present and inserts the
// user. The insert either fully lands or fails; constraint violations
// propagate as the adapter error.
func (s *profileService) CreateProfile(ctx context.Context, in CreateProfileInput) (*model.User, error) {
	user := &model.User{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Status:    in.Status,
		Role:      in.Role,
		Persona:   in.Persona,
	}
	if user.Status == "" {
		user.Status = model.StatusValidating
	}
	if user.Role == "" {
		user.Role = model.RoleOther
	}
	if user.Persona == "" {
		user.Persona = model.PersonaChildren
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, &apperrors.AdapterError{Op: "profile.insert", Err: err}
	}
	return user, nil
}

// GetProfile fetches a user by id.
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return user, nil
}
