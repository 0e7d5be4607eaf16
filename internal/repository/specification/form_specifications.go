package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPublicToken struct {
	Token string
}

func (s ByPublicToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_token = ?", s.Token)
}

type OwnedBy struct {
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type ByFormID struct {
	FormID uuid.UUID
}

func (s ByFormID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("form_id = ?", s.FormID)
}
