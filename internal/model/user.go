package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStatus tracks where a profile is in its lifecycle.
type UserStatus string

const (
	StatusActive     UserStatus = "active"
	StatusValidating UserStatus = "validating"
	StatusNotActive  UserStatus = "not_active"
)

// Persona splits the family into the two audiences the app renders for.
type Persona string

const (
	PersonaParent   Persona = "parent"
	PersonaChildren Persona = "children"
)

// Role is the family-role label shown next to a member.
type Role string

const (
	RoleFather      Role = "father"
	RoleMother      Role = "mother"
	RoleGrandfather Role = "grandfather"
	RoleGrandmother Role = "grandmother"
	RoleSon         Role = "son"
	RoleDaughter    Role = "daughter"
	RoleOther       Role = "other"
)

// User represents a family member profile.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string     `json:"first_name" gorm:"size:255;not null"`
	LastName     string     `json:"last_name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255"` // Never expose in JSON
	Status       UserStatus `json:"status" gorm:"size:32;not null;default:'validating';index"`
	Role         Role       `json:"role" gorm:"size:32;not null;default:'other'"`
	Persona      Persona    `json:"persona" gorm:"size:16;not null;default:'children'"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
