package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FormId       uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionText string    `gorm:"type:text;not null"`
	Position     int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
