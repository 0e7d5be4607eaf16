package entity

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Id         uuid.UUID
	FormId     uuid.UUID
	QuestionId uuid.UUID
	AnswerText string
	CreatedAt  time.Time
}

// AnswerRow is an answer joined with its question, the shape the results
// page and the summarization prompt consume.
type AnswerRow struct {
	Position     int
	QuestionText string
	AnswerText   string
	CreatedAt    time.Time
}
