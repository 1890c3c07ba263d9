package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

const tagsPerPage = 50

type TagHandler struct {
	tagService *services.TagService
	validator  *validator.Validate
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		validator:  validator.New(),
	}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if _, err := h.tagService.CreateTag(req.Content); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "tag created", nil)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		utils.Error(c, http.StatusBadRequest, "invalid page")
		return
	}

	tags, err := h.tagService.GetTags(page, tagsPerPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, models.TagList{Tags: tags})
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	var req models.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.tagService.UpdateTag(tagID, req.Content); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "tag updated", nil)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.tagService.DeleteTag(tagID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "tag deleted", nil)
}
