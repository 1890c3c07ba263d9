package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tsuiio/blog/internal/models"
)

// AssocService is the association index over the note_tags, note_sorts and
// page_sorts join tables. Batch lookups run one IN-join instead of a query
// per entity; callers merge the returned map against their entity list and
// treat an absent key as an empty set.
type AssocService struct {
	db *gorm.DB
}

func NewAssocService(db *gorm.DB) *AssocService {
	return &AssocService{db: db}
}

func (s *AssocService) AddTagToNote(noteID, tagID uuid.UUID) error {
	err := s.db.Create(&models.NoteTag{NoteID: noteID, TagID: tagID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAssocExists
	}
	return err
}

func (s *AssocService) RemoveTagFromNote(noteID, tagID uuid.UUID) error {
	return s.db.Where("note_id = ? AND tag_id = ?", noteID, tagID).
		Delete(&models.NoteTag{}).Error
}

func (s *AssocService) AddSortToNote(noteID, sortID uuid.UUID) error {
	err := s.db.Create(&models.NoteSort{NoteID: noteID, SortID: sortID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAssocExists
	}
	return err
}

func (s *AssocService) RemoveSortFromNote(noteID, sortID uuid.UUID) error {
	return s.db.Where("note_id = ? AND sort_id = ?", noteID, sortID).
		Delete(&models.NoteSort{}).Error
}

func (s *AssocService) AddSortToPage(pageID, sortID uuid.UUID) error {
	err := s.db.Create(&models.PageSort{PageID: pageID, SortID: sortID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAssocExists
	}
	return err
}

func (s *AssocService) RemoveSortFromPage(pageID, sortID uuid.UUID) error {
	return s.db.Where("page_id = ? AND sort_id = ?", pageID, sortID).
		Delete(&models.PageSort{}).Error
}

func (s *AssocService) ListTagsForNote(noteID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Model(&models.Tag{}).
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", noteID).
		Find(&tags).Error
	return tags, err
}

func (s *AssocService) ListSortsForNote(noteID uuid.UUID) ([]models.Sort, error) {
	var sorts []models.Sort
	err := s.db.Model(&models.Sort{}).
		Joins("JOIN note_sorts ON note_sorts.sort_id = sorts.id").
		Where("note_sorts.note_id = ?", noteID).
		Find(&sorts).Error
	return sorts, err
}

func (s *AssocService) ListSortsForPage(pageID uuid.UUID) ([]models.Sort, error) {
	var sorts []models.Sort
	err := s.db.Model(&models.Sort{}).
		Joins("JOIN page_sorts ON page_sorts.sort_id = sorts.id").
		Where("page_sorts.page_id = ?", pageID).
		Find(&sorts).Error
	return sorts, err
}

type noteTagRow struct {
	NoteID     uuid.UUID
	models.Tag `gorm:"embedded"`
}

// BatchTagsForNotes loads the tags of all given notes in a single join and
// groups them by note id.
func (s *AssocService) BatchTagsForNotes(noteIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error) {
	result := make(map[uuid.UUID][]models.Tag)
	if len(noteIDs) == 0 {
		return result, nil
	}

	var rows []noteTagRow
	err := s.db.Table("note_tags").
		Select("note_tags.note_id, tags.*").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("note_tags.note_id IN ?", noteIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.NoteID] = append(result[row.NoteID], row.Tag)
	}
	return result, nil
}

type noteSortRow struct {
	NoteID      uuid.UUID
	models.Sort `gorm:"embedded"`
}

// BatchSortsForNotes is the sort-side counterpart of BatchTagsForNotes.
func (s *AssocService) BatchSortsForNotes(noteIDs []uuid.UUID) (map[uuid.UUID][]models.Sort, error) {
	result := make(map[uuid.UUID][]models.Sort)
	if len(noteIDs) == 0 {
		return result, nil
	}

	var rows []noteSortRow
	err := s.db.Table("note_sorts").
		Select("note_sorts.note_id, sorts.*").
		Joins("JOIN sorts ON sorts.id = note_sorts.sort_id").
		Where("note_sorts.note_id IN ?", noteIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.NoteID] = append(result[row.NoteID], row.Sort)
	}
	return result, nil
}
