package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageType discriminates the variant payload table joined to a page.
// Adding a page kind means adding a constant here, a payload model, and one
// case in each dispatch switch of the page service.
type PageType string

const (
	PageTypeAbout PageType = "about"
)

type Page struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	PageType  PageType      `json:"page_type" gorm:"size:32;not null"`
	Status    PublishStatus `json:"status" gorm:"size:16;not null;default:draft"`
	Comm      bool          `json:"comm" gorm:"default:false"`
	UserID    uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	ShortIDID uuid.UUID     `json:"-" gorm:"column:short_id;type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	ShortID *ShortID `json:"short,omitempty" gorm:"foreignKey:ShortIDID"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PageAbout is the variant payload for PageTypeAbout, 1:1 with its page.
type PageAbout struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AvatarURL string    `json:"avatar_url" gorm:"size:2048;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	PageID    uuid.UUID `json:"page_id" gorm:"type:uuid;not null;uniqueIndex"`
}

func (a *PageAbout) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type PageSort struct {
	PageID    uuid.UUID `json:"page_id" gorm:"type:uuid;primaryKey"`
	SortID    uuid.UUID `json:"sort_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AboutPayload struct {
	AvatarURL string `json:"avatar_url" validate:"required,max=2048"`
	Content   string `json:"content" validate:"required"`
}

// PagePayload is the tagged union carried by page requests and responses.
// Exactly the pointer matching Type must be set.
type PagePayload struct {
	Type  PageType      `json:"type" validate:"required,oneof=about"`
	About *AboutPayload `json:"about,omitempty"`
}

type PageCreateRequest struct {
	Status  PublishStatus `json:"status" validate:"required,oneof=public draft recycle"`
	Subname string        `json:"subname" validate:"required,subname,max=256"`
	Comm    bool          `json:"comm"`
	Page    PagePayload   `json:"page" validate:"required"`
}

type PageUpdateRequest struct {
	Status  PublishStatus `json:"status" validate:"required,oneof=public draft recycle"`
	Subname string        `json:"subname" validate:"required,subname,max=256"`
	Comm    bool          `json:"comm"`
	Page    PagePayload   `json:"page" validate:"required"`
}

type PageCreated struct {
	ID        uuid.UUID `json:"id"`
	ShortName string    `json:"short_name"`
	Subname   string    `json:"subname"`
}

type PageDetail struct {
	ID        *uuid.UUID     `json:"id,omitempty"`
	Status    *PublishStatus `json:"status,omitempty"`
	Comm      bool           `json:"comm"`
	Page      PagePayload    `json:"page"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
