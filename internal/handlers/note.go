package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tsuiio/blog/internal/middleware"
	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
	pkgvalidator "github.com/tsuiio/blog/pkg/validator"
)

const notesPerPage = 10

type NoteHandler struct {
	noteService  *services.NoteService
	assocService *services.AssocService
	validator    *validator.Validate
}

func NewNoteHandler(noteService *services.NoteService, assocService *services.AssocService) *NoteHandler {
	return &NoteHandler{
		noteService:  noteService,
		assocService: assocService,
		validator:    pkgvalidator.GetValidator(),
	}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	var req models.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	created, err := h.noteService.CreateNote(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "note created", created)
}

// GetNote resolves a public token. Authenticated callers see hidden
// statuses plus the internal id and status fields; anonymous reads bump
// the view counter.
func (h *NoteHandler) GetNote(c *gin.Context) {
	token := c.Param("token")
	_, authenticated := middleware.UserID(c)

	note, err := h.noteService.FindByToken(token, authenticated)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var tags []models.Tag
	var sorts []models.Sort

	var g errgroup.Group
	g.Go(func() error {
		var err error
		tags, err = h.assocService.ListTagsForNote(note.ID)
		return err
	})
	g.Go(func() error {
		var err error
		sorts, err = h.assocService.ListSortsForNote(note.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		handleServiceError(c, err)
		return
	}

	if !authenticated {
		if err := h.noteService.IncrementViews(note.ID); err != nil {
			logrus.WithError(err).Warn("failed to count view")
		}
	}

	detail := models.NoteDetail{
		Title:     note.Title,
		Summary:   note.Summary,
		Content:   note.Content,
		Comm:      note.Comm,
		Tags:      tagContents(tags),
		Sorts:     sortRefs(sorts),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if authenticated {
		detail.ID = &note.ID
		status := note.Status
		detail.Status = &status
	}

	utils.Success(c, detail)
}

// ListNotes returns one page of notes with their tags and sorts, assembled
// from two batched lookups issued concurrently.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		utils.Error(c, http.StatusBadRequest, "invalid page")
		return
	}

	_, authenticated := middleware.UserID(c)

	notes, total, err := h.noteService.List(page, notesPerPage, authenticated)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	noteIDs := make([]uuid.UUID, len(notes))
	for i, note := range notes {
		noteIDs[i] = note.ID
	}

	var tagsByNote map[uuid.UUID][]models.Tag
	var sortsByNote map[uuid.UUID][]models.Sort

	var g errgroup.Group
	g.Go(func() error {
		var err error
		tagsByNote, err = h.assocService.BatchTagsForNotes(noteIDs)
		return err
	})
	g.Go(func() error {
		var err error
		sortsByNote, err = h.assocService.BatchSortsForNotes(noteIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		handleServiceError(c, err)
		return
	}

	items := make([]models.NoteListItem, 0, len(notes))
	for _, note := range notes {
		item := models.NoteListItem{
			Title:     note.Title,
			Summary:   note.Summary,
			Tags:      tagContents(tagsByNote[note.ID]),
			Sorts:     sortRefs(sortsByNote[note.ID]),
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
		if note.ShortID != nil {
			item.ShortID = note.ShortID.Token()
		}
		if authenticated {
			id := note.ID
			item.ID = &id
			status := note.Status
			item.Status = &status
		}
		items = append(items, item)
	}

	utils.Success(c, models.NoteList{Notes: items, Total: total})
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}

	var req models.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.noteService.UpdateNote(noteID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "note updated", nil)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := h.noteService.DeleteNote(noteID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "note deleted", nil)
}

func (h *NoteHandler) AddTag(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}
	tagID, err := uuid.Parse(c.Param("tagID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.assocService.AddTagToNote(noteID, tagID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "tag attached", nil)
}

func (h *NoteHandler) RemoveTag(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}
	tagID, err := uuid.Parse(c.Param("tagID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.assocService.RemoveTagFromNote(noteID, tagID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "tag detached", nil)
}

func (h *NoteHandler) AddSort(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}
	sortID, err := uuid.Parse(c.Param("sortID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	if err := h.assocService.AddSortToNote(noteID, sortID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort attached", nil)
}

func (h *NoteHandler) RemoveSort(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid note id")
		return
	}
	sortID, err := uuid.Parse(c.Param("sortID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	if err := h.assocService.RemoveSortFromNote(noteID, sortID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort detached", nil)
}

func tagContents(tags []models.Tag) []string {
	contents := make([]string, 0, len(tags))
	for _, tag := range tags {
		contents = append(contents, tag.Content)
	}
	return contents
}

func sortRefs(sorts []models.Sort) []models.SortRef {
	refs := make([]models.SortRef, 0, len(sorts))
	for _, sort := range sorts {
		refs = append(refs, models.SortRef{Subname: sort.Name, Content: sort.Content})
	}
	return refs
}
