package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
)

// PageService manages polymorphic pages: a base row with a page_type
// discriminant plus exactly one variant payload row. All variant knowledge
// lives in the payload dispatch switches below; adding a page kind means
// adding one case to each.
type PageService struct {
	db       *gorm.DB
	shortIDs *ShortIDService
}

func NewPageService(db *gorm.DB, shortIDs *ShortIDService) *PageService {
	return &PageService{db: db, shortIDs: shortIDs}
}

func createPayload(tx *gorm.DB, pageID uuid.UUID, payload *models.PagePayload) error {
	switch payload.Type {
	case models.PageTypeAbout:
		if payload.About == nil {
			return ErrMissingPayload
		}
		about := models.PageAbout{
			AvatarURL: payload.About.AvatarURL,
			Content:   payload.About.Content,
			PageID:    pageID,
		}
		return tx.Create(&about).Error
	default:
		return ErrUnknownPageType
	}
}

func loadPayload(db *gorm.DB, pageID uuid.UUID, pageType models.PageType) (*models.PagePayload, error) {
	switch pageType {
	case models.PageTypeAbout:
		var about models.PageAbout
		if err := db.Where("page_id = ?", pageID).First(&about).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &models.PagePayload{
			Type:  models.PageTypeAbout,
			About: &models.AboutPayload{AvatarURL: about.AvatarURL, Content: about.Content},
		}, nil
	default:
		return nil, ErrUnknownPageType
	}
}

func updatePayload(tx *gorm.DB, pageID uuid.UUID, payload *models.PagePayload) error {
	switch payload.Type {
	case models.PageTypeAbout:
		if payload.About == nil {
			return ErrMissingPayload
		}
		return tx.Model(&models.PageAbout{}).Where("page_id = ?", pageID).
			Updates(map[string]interface{}{
				"avatar_url": payload.About.AvatarURL,
				"content":    payload.About.Content,
			}).Error
	default:
		return ErrUnknownPageType
	}
}

func deletePayload(tx *gorm.DB, pageID uuid.UUID, pageType models.PageType) error {
	switch pageType {
	case models.PageTypeAbout:
		return tx.Where("page_id = ?", pageID).Delete(&models.PageAbout{}).Error
	default:
		return ErrUnknownPageType
	}
}

// CreatePage inserts the short id, the base page row and the variant
// payload row in one transaction.
func (s *PageService) CreatePage(userID uuid.UUID, req *models.PageCreateRequest) (*models.PageCreated, error) {
	_, err := s.shortIDs.Resolve(req.Subname)
	if err == nil {
		return nil, ErrSubnameExists
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var created models.PageCreated

	err = s.db.Transaction(func(tx *gorm.DB) error {
		subname := req.Subname
		shortID, err := s.shortIDs.Create(tx, &subname)
		if err != nil {
			return err
		}

		page := models.Page{
			PageType:  req.Page.Type,
			Status:    req.Status,
			Comm:      req.Comm,
			UserID:    userID,
			ShortIDID: shortID.ID,
		}
		if err := tx.Create(&page).Error; err != nil {
			return err
		}

		if err := createPayload(tx, page.ID, &req.Page); err != nil {
			return err
		}

		created = models.PageCreated{
			ID:        page.ID,
			ShortName: shortID.ShortName,
			Subname:   subname,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubnameExists
		}
		return nil, err
	}

	return &created, nil
}

// FindByToken resolves a public token to a page and its variant payload.
func (s *PageService) FindByToken(token string, includeHidden bool) (*models.Page, *models.PagePayload, error) {
	query := s.db.
		Joins("JOIN short_ids ON short_ids.id = pages.short_id").
		Where("short_ids.short_name = ? OR short_ids.subname = ?", token, token)
	if !includeHidden {
		query = query.Where("pages.status = ?", models.StatusPublic)
	}

	var page models.Page
	if err := query.Preload("ShortID").First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	payload, err := loadPayload(s.db, page.ID, page.PageType)
	if err != nil {
		return nil, nil, err
	}

	return &page, payload, nil
}

// UpdatePage rewrites status, comment flag, subname and the variant
// payload in one transaction. The page type itself is immutable.
func (s *PageService) UpdatePage(pageID uuid.UUID, req *models.PageUpdateRequest) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var page models.Page
		if err := tx.Where("id = ?", pageID).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"status": req.Status,
			"comm":   req.Comm,
		}
		if err := tx.Model(&page).Updates(updates).Error; err != nil {
			return err
		}

		subname := req.Subname
		if err := s.shortIDs.UpdateSubname(tx, page.ShortIDID, &subname); err != nil {
			return err
		}

		return updatePayload(tx, page.ID, &req.Page)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSubnameExists
	}
	return err
}

// DeletePage removes comments, sort associations, the variant payload, the
// page row and the short id in one transaction.
func (s *PageService) DeletePage(pageID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var page models.Page
		if err := tx.Where("id = ?", pageID).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("page_id = ?", pageID).Delete(&models.Comm{}).Error; err != nil {
			return err
		}
		if err := tx.Where("page_id = ?", pageID).Delete(&models.PageSort{}).Error; err != nil {
			return err
		}
		if err := deletePayload(tx, page.ID, page.PageType); err != nil {
			return err
		}
		if err := tx.Delete(&page).Error; err != nil {
			return err
		}

		return s.shortIDs.Delete(tx, page.ShortIDID)
	})
}
