package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaType labels the optional media attached to a question.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// Question is a prompt posted by a family member. like_count and
// comment_count are non-negative and only ever grow in this service.
type Question struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	FileURL      string    `json:"file_url,omitempty" gorm:"size:512"`
	LikeCount    int       `json:"like_count" gorm:"not null;default:0"`
	CommentCount int       `json:"comment_count" gorm:"not null;default:0"`
	MediaType    MediaType `json:"media_type,omitempty" gorm:"size:16"`
	FolderPath   string    `json:"folder_path,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// QuestionAuthor is the subset of the owning user embedded in like responses.
type QuestionAuthor struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// Author returns the joined author projection, zero-valued when the
// relation was not loaded.
func (q *Question) Author() QuestionAuthor {
	if q.User == nil {
		return QuestionAuthor{}
	}
	return QuestionAuthor{
		ID:        q.User.ID,
		FirstName: q.User.FirstName,
		LastName:  q.User.LastName,
	}
}
