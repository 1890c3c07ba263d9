package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

type SortHandler struct {
	sortService *services.SortService
	validator   *validator.Validate
}

func NewSortHandler(sortService *services.SortService) *SortHandler {
	return &SortHandler{
		sortService: sortService,
		validator:   validator.New(),
	}
}

func (h *SortHandler) CreateSort(c *gin.Context) {
	var req models.SortCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if _, err := h.sortService.CreateSort(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort created", nil)
}

func (h *SortHandler) GetSorts(c *gin.Context) {
	sorts, err := h.sortService.GetSorts()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, models.SortList{Sorts: sorts})
}

func (h *SortHandler) UpdateSort(c *gin.Context) {
	sortID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	var req models.SortUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.sortService.UpdateSort(sortID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort updated", nil)
}

func (h *SortHandler) DeleteSort(c *gin.Context) {
	sortID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid sort id")
		return
	}

	if err := h.sortService.DeleteSort(sortID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "sort deleted", nil)
}
