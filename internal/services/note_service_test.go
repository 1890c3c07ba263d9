package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/utils"
)

const testSummaryLen = 40

func noteServices(t *testing.T) (*NoteService, *ShortIDService, *AssocService) {
	t.Helper()
	db := testDB(t)
	shortIDs := NewShortIDService(db)
	return NewNoteService(db, shortIDs, testSummaryLen), shortIDs, NewAssocService(db)
}

func TestCreateNoteAndResolve(t *testing.T) {
	notes, _, _ := noteServices(t)
	userID := uuid.New()

	created, err := notes.CreateNote(userID, &models.NoteCreateRequest{
		Title:   "hello world",
		Subname: strPtr("hello-world"),
		Status:  models.StatusPublic,
		Content: "short body",
	})
	require.NoError(t, err)
	assert.Len(t, created.ShortName, utils.ShortNameLength)
	require.NotNil(t, created.Subname)
	assert.Equal(t, "hello-world", *created.Subname)

	// resolvable through both tokens immediately after create
	byName, err := notes.FindByToken(created.ShortName, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, userID, byName.UserID)

	bySubname, err := notes.FindByToken("hello-world", false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySubname.ID)
}

func TestCreateNoteSummary(t *testing.T) {
	notes, _, _ := noteServices(t)

	long := strings.Repeat("x", 43)
	created, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "long",
		Status:  models.StatusPublic,
		Content: long,
	})
	require.NoError(t, err)

	note, err := notes.FindByToken(created.ShortName, false)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 40)+"...", note.Summary)
	assert.Equal(t, long, note.Content)

	short := strings.Repeat("y", 30)
	created, err = notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "short",
		Status:  models.StatusPublic,
		Content: short,
	})
	require.NoError(t, err)

	note, err = notes.FindByToken(created.ShortName, false)
	require.NoError(t, err)
	assert.Equal(t, short, note.Summary)
}

func TestCreateNoteSubnameConflict(t *testing.T) {
	notes, _, _ := noteServices(t)

	_, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "first",
		Subname: strPtr("shared"),
		Status:  models.StatusPublic,
		Content: "a",
	})
	require.NoError(t, err)

	_, err = notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "second",
		Subname: strPtr("shared"),
		Status:  models.StatusPublic,
		Content: "b",
	})
	assert.ErrorIs(t, err, ErrSubnameExists)
}

func TestFindByTokenHidesDrafts(t *testing.T) {
	notes, _, _ := noteServices(t)

	created, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "draft",
		Status:  models.StatusDraft,
		Content: "unpublished",
	})
	require.NoError(t, err)

	_, err = notes.FindByToken(created.ShortName, false)
	assert.ErrorIs(t, err, ErrNotFound)

	note, err := notes.FindByToken(created.ShortName, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, note.ID)
}

func TestListNotes(t *testing.T) {
	notes, _, _ := noteServices(t)
	userID := uuid.New()

	for _, status := range []models.PublishStatus{models.StatusPublic, models.StatusPublic, models.StatusDraft} {
		_, err := notes.CreateNote(userID, &models.NoteCreateRequest{
			Title:   "note",
			Status:  status,
			Content: "body",
		})
		require.NoError(t, err)
	}

	visible, total, err := notes.List(1, 10, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, visible, 2)

	all, total, err := notes.List(1, 10, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)
	require.NotNil(t, all[0].ShortID)
}

func TestUpdateNote(t *testing.T) {
	notes, shortIDs, _ := noteServices(t)

	created, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "original",
		Subname: strPtr("original"),
		Status:  models.StatusDraft,
		Content: "draft body",
	})
	require.NoError(t, err)

	err = notes.UpdateNote(created.ID, &models.NoteUpdateRequest{
		Title:   "revised",
		Subname: strPtr("revised"),
		Status:  models.StatusPublic,
		Content: "published body",
		Comm:    true,
	})
	require.NoError(t, err)

	note, err := notes.FindByToken("revised", false)
	require.NoError(t, err)
	assert.Equal(t, "revised", note.Title)
	assert.Equal(t, models.StatusPublic, note.Status)
	assert.True(t, note.Comm)

	_, err = shortIDs.Resolve("original")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNoteMissing(t *testing.T) {
	notes, _, _ := noteServices(t)

	err := notes.UpdateNote(uuid.New(), &models.NoteUpdateRequest{
		Title:   "ghost",
		Status:  models.StatusPublic,
		Content: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNoteCascades(t *testing.T) {
	notes, shortIDs, assocs := noteServices(t)

	created, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "doomed",
		Subname: strPtr("doomed"),
		Status:  models.StatusPublic,
		Content: "soon gone",
	})
	require.NoError(t, err)

	tagID := uuid.New()
	require.NoError(t, assocs.AddTagToNote(created.ID, tagID))
	require.NoError(t, assocs.AddSortToNote(created.ID, uuid.New()))

	require.NoError(t, notes.DeleteNote(created.ID))

	_, err = notes.FindByToken("doomed", true)
	assert.ErrorIs(t, err, ErrNotFound)

	// the short id must not survive the note
	_, err = shortIDs.Resolve("doomed")
	assert.ErrorIs(t, err, ErrNotFound)

	var tagRows, sortRows int64
	require.NoError(t, notes.db.Model(&models.NoteTag{}).Where("note_id = ?", created.ID).Count(&tagRows).Error)
	require.NoError(t, notes.db.Model(&models.NoteSort{}).Where("note_id = ?", created.ID).Count(&sortRows).Error)
	assert.Zero(t, tagRows)
	assert.Zero(t, sortRows)
}

func TestDeleteNoteMissing(t *testing.T) {
	notes, _, _ := noteServices(t)
	assert.ErrorIs(t, notes.DeleteNote(uuid.New()), ErrNotFound)
}

func TestIncrementViews(t *testing.T) {
	notes, _, _ := noteServices(t)

	created, err := notes.CreateNote(uuid.New(), &models.NoteCreateRequest{
		Title:   "counted",
		Status:  models.StatusPublic,
		Content: "body",
	})
	require.NoError(t, err)

	require.NoError(t, notes.IncrementViews(created.ID))
	require.NoError(t, notes.IncrementViews(created.ID))

	note, err := notes.FindByToken(created.ShortName, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, note.Views)
}
