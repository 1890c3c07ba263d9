package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Info is the singleton site metadata; at most one row may exist.
type Info struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Bio       string    `json:"bio" gorm:"type:text;not null"`
	Title     string    `json:"title" gorm:"size:256;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Info) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Info) TableName() string {
	return "info"
}

type InfoCreateRequest struct {
	Bio   string `json:"bio" validate:"required"`
	Title string `json:"title" validate:"required,max=256"`
}

type InfoUpdateRequest struct {
	Bio   string `json:"bio" validate:"required"`
	Title string `json:"title" validate:"required,max=256"`
}
