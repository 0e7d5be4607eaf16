package entity

import (
	"time"

	"github.com/google/uuid"
)

type Form struct {
	Id          uuid.UUID
	PublicToken string
	OwnerId     uuid.UUID
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}

type Question struct {
	Id           uuid.UUID
	FormId       uuid.UUID
	QuestionText string
	Position     int
	CreatedAt    time.Time
}
