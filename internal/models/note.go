package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublishStatus gates visibility: only public rows are shown to
// unauthenticated readers.
type PublishStatus string

const (
	StatusPublic  PublishStatus = "public"
	StatusDraft   PublishStatus = "draft"
	StatusRecycle PublishStatus = "recycle"
)

type Note struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string        `json:"title" gorm:"size:256;not null"`
	Status    PublishStatus `json:"status" gorm:"size:16;not null;default:draft;index"`
	Summary   string        `json:"summary" gorm:"type:text"`
	Content   string        `json:"content" gorm:"type:text"`
	Views     int64         `json:"views" gorm:"default:0"`
	Comm      bool          `json:"comm" gorm:"default:false"`
	UserID    uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	ShortIDID uuid.UUID     `json:"-" gorm:"column:short_id;type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt time.Time     `json:"updated_at"`

	ShortID *ShortID `json:"short,omitempty" gorm:"foreignKey:ShortIDID"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NoteTag links a note to a tag. The composite key carries its own
// timestamps; rows are managed independently of the note's own lifecycle
// and only swept up by the note's delete transaction.
type NoteTag struct {
	NoteID    uuid.UUID `json:"note_id" gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteSort struct {
	NoteID    uuid.UUID `json:"note_id" gorm:"type:uuid;primaryKey"`
	SortID    uuid.UUID `json:"sort_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteCreateRequest struct {
	Title   string        `json:"title" validate:"required,max=256"`
	Subname *string       `json:"subname,omitempty" validate:"omitempty,subname,max=256"`
	Status  PublishStatus `json:"status" validate:"required,oneof=public draft recycle"`
	Content string        `json:"content" validate:"required"`
	Comm    bool          `json:"comm"`
}

type NoteUpdateRequest struct {
	Title   string        `json:"title" validate:"required,max=256"`
	Subname *string       `json:"subname,omitempty" validate:"omitempty,subname,max=256"`
	Status  PublishStatus `json:"status" validate:"required,oneof=public draft recycle"`
	Content string        `json:"content" validate:"required"`
	Comm    bool          `json:"comm"`
}

// NoteCreated is returned from create so the caller can immediately link
// to the new note.
type NoteCreated struct {
	ID        uuid.UUID `json:"id"`
	ShortName string    `json:"short_name"`
	Subname   *string   `json:"subname,omitempty"`
}

type SortRef struct {
	Subname string `json:"subname"`
	Content string `json:"content"`
}

type NoteDetail struct {
	ID        *uuid.UUID     `json:"id,omitempty"`
	Title     string         `json:"title"`
	Status    *PublishStatus `json:"status,omitempty"`
	Summary   string         `json:"summary"`
	Content   string         `json:"content"`
	Comm      bool           `json:"comm"`
	Tags      []string       `json:"tags"`
	Sorts     []SortRef      `json:"sorts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type NoteListItem struct {
	ID        *uuid.UUID     `json:"id,omitempty"`
	Title     string         `json:"title"`
	Status    *PublishStatus `json:"status,omitempty"`
	ShortID   string         `json:"short_id"`
	Summary   string         `json:"summary"`
	Tags      []string       `json:"tags"`
	Sorts     []SortRef      `json:"sorts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type NoteList struct {
	Notes []NoteListItem `json:"notes"`
	Total int64          `json:"total"`
}
