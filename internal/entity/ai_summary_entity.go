package entity

import (
	"time"

	"github.com/google/uuid"
)

type AISummary struct {
	Id          uuid.UUID
	FormId      uuid.UUID
	SummaryText string
	CreatedAt   time.Time
}
