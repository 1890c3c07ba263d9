package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment threading is schema-only for now: the tables are migrated and
// swept by note/page delete transactions, but no handlers exist yet.

type CommUser struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nickname   string    `json:"nickname" gorm:"size:256;not null"`
	Email      string    `json:"email" gorm:"size:256;not null"`
	WebsiteURL *string   `json:"website_url" gorm:"size:256"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *CommUser) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Comm struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	CommUserID *uuid.UUID `json:"comm_user_id" gorm:"type:uuid;index"`
	BlogUserID *uuid.UUID `json:"blog_user_id" gorm:"type:uuid;index"`
	NoteID     *uuid.UUID `json:"note_id" gorm:"type:uuid;index"`
	PageID     *uuid.UUID `json:"page_id" gorm:"type:uuid;index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Comm) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CommClosure stores threaded ancestry, one row per ancestor/descendant
// pair with its distance.
type CommClosure struct {
	AncestorID   uuid.UUID `json:"ancestor_id" gorm:"type:uuid;primaryKey"`
	DescendantID uuid.UUID `json:"descendant_id" gorm:"type:uuid;primaryKey"`
	Distance     int64     `json:"distance" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CommClosure) TableName() string {
	return "comms_closure"
}
