package handler

import (
	"errors"
	"net/http"

	domainShipment "shipment-tracker/internal/domain/shipment"
	domainUser "shipment-tracker/internal/domain/user"
	"shipment-tracker/internal/logger"
	appErrors "shipment-tracker/pkg/errors"
	"shipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps domain and usecase errors onto HTTP status codes.
// Anything unrecognized is logged and surfaced as a generic internal error
// so store and transport details never leak to the caller.
func handleServiceError(c *gin.Context, err error) {
	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, domainShipment.ErrShipmentNotFound),
		errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domainShipment.ErrDuplicateTrackingNumber),
		errors.Is(err, domainUser.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())

	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrUserInactive),
		errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())

	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)

	default:
		logger.Error("Unexpected error handling request",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
