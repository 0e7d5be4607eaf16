package model

import (
	"time"

	"github.com/google/uuid"
)

type Form struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PublicToken string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	// Reserved. Written with its default, never read.
	Status    string    `gorm:"type:varchar(50);not null;default:'open'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Form) TableName() string {
	return "forms"
}
