package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tsuiio/blog/internal/middleware"
	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

type UserHandler struct {
	authService *services.AuthService
	validator   *validator.Validate
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "user created", nil)
}

func (h *UserHandler) UpdateInfo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.authService.UpdateNickname(userID, req.Nickname); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "user updated", nil)
}
