package service

import (
	"github.com/google/uuid"

	"familyboard/internal/model"
)

// Fixed ids keep the seed idempotent across runs.
var demoUsers = []model.User{
	{
		ID:        uuid.MustParse("5c0d7a5e-0c41-4b3a-9c63-1f4b0d2f8a01"),
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@example.com",
		Status:    model.StatusActive,
		Role:      model.RoleMother,
		Persona:   model.PersonaParent,
	},
	{
		ID:        uuid.MustParse("5c0d7a5e-0c41-4b3a-9c63-1f4b0d2f8a02"),
		FirstName: "Lucas",
		LastName:  "Santos",
		Email:     "lucas@example.com",
		Status:    model.StatusActive,
		Role:      model.RoleSon,
		Persona:   model.PersonaChildren,
	},
}

var demoQuestions = []model.Question{
	{
		ID:     uuid.MustParse("9b1fd4a0-3e52-4f0b-8a77-2d5c1e6f9b01"),
		UserID: demoUsers[0].ID,
		Text:   "What was your favorite meal growing up?",
	},
	{
		ID:        uuid.MustParse("9b1fd4a0-3e52-4f0b-8a77-2d5c1e6f9b02"),
		UserID:    demoUsers[0].ID,
		Text:      "Who can find the oldest photo of grandpa?",
		MediaType: model.MediaImage,
	},
	{
		ID:     uuid.MustParse("9b1fd4a0-3e52-4f0b-8a77-2d5c1e6f9b03"),
		UserID: demoUsers[1].ID,
		Text:   "Where should we go for the summer trip?",
	},
}
