package model

import (
	"time"

	"github.com/google/uuid"
)

// AISummary is an append-only log; only the newest row per form is surfaced.
type AISummary struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FormId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SummaryText string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AISummary) TableName() string {
	return "ai_summaries"
}
