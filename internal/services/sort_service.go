package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
)

type SortService struct {
	db *gorm.DB
}

func NewSortService(db *gorm.DB) *SortService {
	return &SortService{db: db}
}

func (s *SortService) CreateSort(req *models.SortCreateRequest) (*models.Sort, error) {
	sort := models.Sort{
		Name:      req.Name,
		Content:   req.Content,
		SortOrder: req.SortOrder,
		ParentID:  req.ParentID,
	}
	if err := s.db.Create(&sort).Error; err != nil {
		return nil, err
	}
	return &sort, nil
}

func (s *SortService) UpdateSort(id uuid.UUID, req *models.SortUpdateRequest) error {
	result := s.db.Model(&models.Sort{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       req.Name,
			"content":    req.Content,
			"sort_order": req.SortOrder,
			"parent_id":  req.ParentID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SortService) GetSorts() ([]models.Sort, error) {
	var sorts []models.Sort
	err := s.db.Order("sort_order ASC").Find(&sorts).Error
	return sorts, err
}

// DeleteSort removes the sort and its note and page associations in one
// transaction.
func (s *SortService) DeleteSort(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sort_id = ?", id).Delete(&models.NoteSort{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sort_id = ?", id).Delete(&models.PageSort{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Sort{}).Error
	})
}
