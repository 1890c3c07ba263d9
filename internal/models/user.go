package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"size:256;uniqueIndex;not null"`
	Nickname     string    `json:"nickname" gorm:"size:256;not null"`
	Email        string    `json:"email" gorm:"size:256;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:256;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type UserRegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=256"`
	Nickname string `json:"nickname" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserLoginRequest struct {
	// Identity matches either username or email.
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserUpdateRequest struct {
	Nickname string `json:"nickname" validate:"required,max=256"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
