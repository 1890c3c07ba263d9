package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/utils"
)

// NoteService owns the transactional lifecycle of a note together with its
// short id and cascading side tables.
type NoteService struct {
	db         *gorm.DB
	shortIDs   *ShortIDService
	summaryLen int
}

func NewNoteService(db *gorm.DB, shortIDs *ShortIDService, summaryLen int) *NoteService {
	return &NoteService{db: db, shortIDs: shortIDs, summaryLen: summaryLen}
}

// CreateNote inserts the short id and the note row in one transaction.
// The subname existence pre-check gives the common conflict a clean error;
// the unique constraint remains the real guard against concurrent creates.
func (s *NoteService) CreateNote(userID uuid.UUID, req *models.NoteCreateRequest) (*models.NoteCreated, error) {
	if req.Subname != nil {
		_, err := s.shortIDs.Resolve(*req.Subname)
		if err == nil {
			return nil, ErrSubnameExists
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	var created models.NoteCreated

	err := s.db.Transaction(func(tx *gorm.DB) error {
		shortID, err := s.shortIDs.Create(tx, req.Subname)
		if err != nil {
			return err
		}

		note := models.Note{
			Title:     req.Title,
			Status:    req.Status,
			Summary:   utils.ExtractSummary(req.Content, s.summaryLen),
			Content:   req.Content,
			Views:     0,
			Comm:      req.Comm,
			UserID:    userID,
			ShortIDID: shortID.ID,
		}

		if err := tx.Create(&note).Error; err != nil {
			return err
		}

		created = models.NoteCreated{
			ID:        note.ID,
			ShortName: shortID.ShortName,
			Subname:   shortID.Subname,
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

// FindByToken resolves a public token (short name or subname) to a note.
// Hidden statuses are filtered out unless includeHidden is set.
func (s *NoteService) FindByToken(token string, includeHidden bool) (*models.Note, error) {
	query := s.db.
		Joins("JOIN short_ids ON short_ids.id = notes.short_id").
		Where("short_ids.short_name = ? OR short_ids.subname = ?", token, token)
	if !includeHidden {
		query = query.Where("notes.status = ?", models.StatusPublic)
	}

	var note models.Note
	if err := query.Preload("ShortID").First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// List returns one page of notes, newest first, with their short ids
// preloaded, plus the total row count for pagination.
func (s *NoteService) List(page, limit int, includeHidden bool) ([]models.Note, int64, error) {
	query := s.db.Model(&models.Note{})
	if !includeHidden {
		query = query.Where("status = ?", models.StatusPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []models.Note
	offset := (page - 1) * limit
	err := query.Preload("ShortID").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

// UpdateNote rewrites every mutable field (full overwrite, not a patch)
// and the short id's subname in one transaction, bumping both updated_at
// timestamps.
func (s *NoteService) UpdateNote(noteID uuid.UUID, req *models.NoteUpdateRequest) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var note models.Note
		if err := tx.Where("id = ?", noteID).First(&note).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"title":   req.Title,
			"status":  req.Status,
			"summary": utils.ExtractSummary(req.Content, s.summaryLen),
			"content": req.Content,
			"comm":    req.Comm,
		}
		if err := tx.Model(&note).Updates(updates).Error; err != nil {
			return err
		}

		return s.shortIDs.UpdateSubname(tx, note.ShortIDID, req.Subname)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSubnameExists
	}
	return err
}

// DeleteNote removes the note and everything hanging off it in one
// transaction: comments, tag and sort associations, the note row, and
// finally its short id. Nothing may survive the note.
func (s *NoteService) DeleteNote(noteID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var note models.Note
		if err := tx.Where("id = ?", noteID).First(&note).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("note_id = ?", noteID).Delete(&models.Comm{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", noteID).Delete(&models.NoteTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", noteID).Delete(&models.NoteSort{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&note).Error; err != nil {
			return err
		}

		return s.shortIDs.Delete(tx, note.ShortIDID)
	})
}

// IncrementViews bumps the view counter. Failures are not interesting to
// the read path and are swallowed by callers.
func (s *NoteService) IncrementViews(noteID uuid.UUID) error {
	return s.db.Model(&models.Note{}).Where("id = ?", noteID).
		Update("views", gorm.Expr("views + 1")).Error
}
