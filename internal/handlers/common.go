package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tsuiio/blog/internal/services"
	"github.com/tsuiio/blog/internal/utils"
)

// handleServiceError maps service sentinels onto the response envelope.
// Unknown errors are logged with detail and rendered as a bare internal
// error so nothing leaks to the caller.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, "")
	case errors.Is(err, services.ErrSubnameExists),
		errors.Is(err, services.ErrAssocExists),
		errors.Is(err, services.ErrInfoExists):
		utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUsernameExists),
		errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrMissingPayload),
		errors.Is(err, services.ErrUnknownPageType):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrWrongCredentials):
		utils.Unauthorized(c, err.Error())
	default:
		logrus.WithError(err).Error("service error")
		utils.InternalError(c)
	}
}
