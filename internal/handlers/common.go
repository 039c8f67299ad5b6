package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JonnyWalker81/habitpulse/backend/internal/apierror"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
	"github.com/JonnyWalker81/habitpulse/backend/internal/middleware"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/service"
)

func init() {
	apierror.UseJSONFieldNames()
}

// requireUser returns the authenticated user or writes a 401
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c), ""))
		return "", false
	}
	return userID, true
}

// pathID returns the :id parameter or writes a 400 when it is not a UUID
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidIDError(apierror.GetRequestID(c), "id", id))
		return "", false
	}
	return id, true
}

// bindJSON decodes the body into dst, writing a problem on failure
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(apierror.GetRequestID(c), err))
		return false
	}
	return true
}

// writeServiceError maps service errors onto problem responses
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	var fieldErr *models.FieldError
	switch {
	case errors.Is(err, service.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.As(err, &fieldErr):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: fieldErr.Field, Message: fieldErr.Message, Code: "invalid"},
		}))
	case errors.Is(err, service.ErrInvalidInput):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("resource", resource),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
