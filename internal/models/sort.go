package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sort is a hierarchical category. ParentID builds a tree; nothing enforces
// acyclicity beyond caller discipline.
type Sort struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"size:256;not null"`
	Content   string     `json:"content" gorm:"size:256"`
	SortOrder int        `json:"sort_order" gorm:"default:0"`
	ParentID  *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *Sort) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type SortCreateRequest struct {
	Name      string     `json:"name" validate:"required,max=256"`
	Content   string     `json:"content" validate:"max=256"`
	SortOrder int        `json:"sort_order" validate:"min=0"`
	ParentID  *uuid.UUID `json:"parent_id"`
}

type SortUpdateRequest struct {
	Name      string     `json:"name" validate:"required,max=256"`
	Content   string     `json:"content" validate:"max=256"`
	SortOrder int        `json:"sort_order" validate:"min=0"`
	ParentID  *uuid.UUID `json:"parent_id"`
}

type SortList struct {
	Sorts []Sort `json:"sorts"`
}
