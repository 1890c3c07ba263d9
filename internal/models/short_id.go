package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortID maps a public URL token to an internal entity. Every note and
// page owns exactly one row. ShortName is random and immutable; Subname is
// an optional user-chosen alias and the only mutable column.
type ShortID struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShortName string    `json:"short_name" gorm:"size:16;uniqueIndex;not null"`
	Subname   *string   `json:"subname" gorm:"size:256;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ShortID) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Token is what readers link to: the subname when set, else the short name.
func (s *ShortID) Token() string {
	if s.Subname != nil && *s.Subname != "" {
		return *s.Subname
	}
	return s.ShortName
}
