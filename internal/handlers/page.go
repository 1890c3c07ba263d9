package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tsuiio/blog/internal/middleware"
	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
	pkgvalidator "github.com/tsuiio/blog/pkg/validator"
)

type PageHandler struct {
	pageService  *services.PageService
	assocService *services.AssocService
	validator    *validator.Validate
}

func NewPageHandler(pageService *services.PageService, assocService *services.AssocService) *PageHandler {
	return &PageHandler{
		pageService:  pageService,
		assocService: assocService,
		validator:    pkgvalidator.GetValidator(),
	}
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	var req models.PageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	created, err := h.pageService.CreatePage(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "page created", created)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	token := c.Param("token")
	_, authenticated := middleware.UserID(c)

	page, payload, err := h.pageService.FindByToken(token, authenticated)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	detail := models.PageDetail{
		Comm:      page.Comm,
		Page:      *payload,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
	if authenticated {
		detail.ID = &page.ID
		status := page.Status
		detail.Status = &status
	}

	utils.Success(c, detail)
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid page id")
		return
	}

	var req models.PageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.pageService.UpdatePage(pageID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "page updated", nil)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid page id")
		return
	}

	if err := h.pageService.DeletePage(pageID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "page deleted", nil)
}

func (h *PageHandler) AddSort(c *gin.Context) {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid page id")
		return
	}
	sortID, err := uuid.Parse(c.Param("sortID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	if err := h.assocService.AddSortToPage(pageID, sortID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort attached", nil)
}

func (h *PageHandler) RemoveSort(c *gin.Context) {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid page id")
		return
	}
	sortID, err := uuid.Parse(c.Param("sortID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	if err := h.assocService.RemoveSortFromPage(pageID, sortID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort detached", nil)
}
