package model

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`
	// FormId is denormalized so results queries never join through questions.
	FormId     uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	AnswerText string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
