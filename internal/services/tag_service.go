package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) CreateTag(content string) (*models.Tag, error) {
	tag := models.Tag{Content: content}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) UpdateTag(id uuid.UUID, content string) error {
	result := s.db.Model(&models.Tag{}).Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TagService) GetTags(page, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	offset := (page - 1) * limit
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&tags).Error
	return tags, err
}

// DeleteTag removes the tag and every note association pointing at it in
// one transaction.
func (s *TagService) DeleteTag(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.NoteTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Tag{}).Error
	})
}
