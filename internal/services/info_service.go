package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
)

type InfoService struct {
	db *gorm.DB
}

func NewInfoService(db *gorm.DB) *InfoService {
	return &InfoService{db: db}
}

// CreateInfo inserts the singleton site metadata; a second create fails.
func (s *InfoService) CreateInfo(req *models.InfoCreateRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Info{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrInfoExists
		}

		info := models.Info{Bio: req.Bio, Title: req.Title}
		return tx.Create(&info).Error
	})
}

func (s *InfoService) GetInfo() (*models.Info, error) {
	var info models.Info
	if err := s.db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (s *InfoService) UpdateInfo(req *models.InfoUpdateRequest) error {
	result := s.db.Model(&models.Info{}).Where("1 = 1").
		Updates(map[string]interface{}{
			"bio":   req.Bio,
			"title": req.Title,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
