package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/utils"
)

// ShortIDService is the registry mapping public tokens to internal ids.
// Mutating methods run on whatever gorm handle the caller passes in, so
// they join the caller's transaction; the registry never opens one itself.
type ShortIDService struct {
	db *gorm.DB
}

func NewShortIDService(db *gorm.DB) *ShortIDService {
	return &ShortIDService{db: db}
}

// Create persists a fresh 16-char random short name with an optional
// vanity subname. Collisions on the random name are left to the unique
// constraint; the probability is negligible and no retry is attempted.
func (s *ShortIDService) Create(tx *gorm.DB, subname *string) (*models.ShortID, error) {
	shortID := models.ShortID{
		ShortName: utils.RandomString(utils.ShortNameLength),
		Subname:   subname,
	}

	if err := tx.Create(&shortID).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubnameExists
		}
		return nil, err
	}

	return &shortID, nil
}

// Resolve looks a token up by exact match on either the short name or the
// subname.
func (s *ShortIDService) Resolve(token string) (*models.ShortID, error) {
	var shortID models.ShortID
	err := s.db.Where("short_name = ? OR subname = ?", token, token).First(&shortID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &shortID, nil
}

// UpdateSubname rewrites only the vanity alias and bumps updated_at.
func (s *ShortIDService) UpdateSubname(tx *gorm.DB, id uuid.UUID, subname *string) error {
	err := tx.Model(&models.ShortID{}).Where("id = ?", id).
		Update("subname", subname).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSubnameExists
	}
	return err
}

func (s *ShortIDService) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Where("id = ?", id).Delete(&models.ShortID{}).Error
}
