package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsuiio/blog/internal/models"
)

func TestNoteTagAssociation(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)
	tags := NewTagService(db)

	tag, err := tags.CreateTag("golang")
	require.NoError(t, err)
	noteID := uuid.New()

	require.NoError(t, assocs.AddTagToNote(noteID, tag.ID))

	// the composite key rejects a second identical link
	assert.ErrorIs(t, assocs.AddTagToNote(noteID, tag.ID), ErrAssocExists)

	got, err := assocs.ListTagsForNote(noteID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "golang", got[0].Content)

	require.NoError(t, assocs.RemoveTagFromNote(noteID, tag.ID))

	got, err = assocs.ListTagsForNote(noteID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoteSortAssociation(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)
	sorts := NewSortService(db)

	sort, err := sorts.CreateSort(&models.SortCreateRequest{Name: "tech", Content: "tech"})
	require.NoError(t, err)
	noteID := uuid.New()

	require.NoError(t, assocs.AddSortToNote(noteID, sort.ID))
	assert.ErrorIs(t, assocs.AddSortToNote(noteID, sort.ID), ErrAssocExists)

	got, err := assocs.ListSortsForNote(noteID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tech", got[0].Name)

	require.NoError(t, assocs.RemoveSortFromNote(noteID, sort.ID))

	got, err = assocs.ListSortsForNote(noteID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPageSortAssociation(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)
	sorts := NewSortService(db)

	sort, err := sorts.CreateSort(&models.SortCreateRequest{Name: "meta"})
	require.NoError(t, err)
	pageID := uuid.New()

	require.NoError(t, assocs.AddSortToPage(pageID, sort.ID))
	assert.ErrorIs(t, assocs.AddSortToPage(pageID, sort.ID), ErrAssocExists)

	got, err := assocs.ListSortsForPage(pageID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, assocs.RemoveSortFromPage(pageID, sort.ID))

	got, err = assocs.ListSortsForPage(pageID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatchTagsForNotes(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)
	tags := NewTagService(db)

	t1, err := tags.CreateTag("one")
	require.NoError(t, err)
	t2, err := tags.CreateTag("two")
	require.NoError(t, err)

	tagged := uuid.New()
	bare := uuid.New()
	require.NoError(t, assocs.AddTagToNote(tagged, t1.ID))
	require.NoError(t, assocs.AddTagToNote(tagged, t2.ID))

	result, err := assocs.BatchTagsForNotes([]uuid.UUID{tagged, bare})
	require.NoError(t, err)

	require.Len(t, result[tagged], 2)
	contents := []string{result[tagged][0].Content, result[tagged][1].Content}
	assert.ElementsMatch(t, []string{"one", "two"}, contents)

	// a note without tags is simply absent from the map
	_, ok := result[bare]
	assert.False(t, ok)
}

func TestBatchSortsForNotes(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)
	sorts := NewSortService(db)

	sort, err := sorts.CreateSort(&models.SortCreateRequest{Name: "dev", Content: "dev"})
	require.NoError(t, err)

	noteID := uuid.New()
	require.NoError(t, assocs.AddSortToNote(noteID, sort.ID))

	result, err := assocs.BatchSortsForNotes([]uuid.UUID{noteID})
	require.NoError(t, err)
	require.Len(t, result[noteID], 1)
	assert.Equal(t, "dev", result[noteID][0].Name)
}

func TestBatchEmptyInput(t *testing.T) {
	db := testDB(t)
	assocs := NewAssocService(db)

	tags, err := assocs.BatchTagsForNotes(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	sorts, err := assocs.BatchSortsForNotes([]uuid.UUID{})
	require.NoError(t, err)
	assert.Empty(t, sorts)
}
