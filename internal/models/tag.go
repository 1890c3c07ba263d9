package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content   string    `json:"content" gorm:"size:256;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TagCreateRequest struct {
	Content string `json:"content" validate:"required,max=256"`
}

type TagUpdateRequest struct {
	Content string `json:"content" validate:"required,max=256"`
}

type TagList struct {
	Tags []Tag `json:"tags"`
}
