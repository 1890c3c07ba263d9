package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

type InfoHandler struct {
	infoService *services.InfoService
	validator   *validator.Validate
}

func NewInfoHandler(infoService *services.InfoService) *InfoHandler {
	return &InfoHandler{
		infoService: infoService,
		validator:   validator.New(),
	}
}

func (h *InfoHandler) CreateInfo(c *gin.Context) {
	var req models.InfoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.infoService.CreateInfo(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "info created", nil)
}

func (h *InfoHandler) GetInfo(c *gin.Context) {
	info, err := h.infoService.GetInfo()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, info)
}

func (h *InfoHandler) UpdateInfo(c *gin.Context) {
	var req models.InfoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.infoService.UpdateInfo(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "info updated", nil)
}
