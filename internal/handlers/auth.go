package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/tsuiio/blog/internal/config"
	"github.com/tsuiio/blog/internal/models"
	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
	validator   *validator.Validate
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
		validator:   validator.New(),
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := utils.IssueToken(user.ID, h.config.JWT.Secret, h.config.JWT.ExpireDays)
	if err != nil {
		logrus.WithError(err).Error("failed to issue token")
		utils.InternalError(c)
		return
	}

	utils.Success(c, models.LoginResponse{Token: token})
}
