package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/middleware"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
	"go.uber.org/zap"
)

// respondError maps a service error onto a status code and envelope.
// Validation is checked first because it may wrap a NotFoundError.
func respondError(c *gin.Context, log *logger.Logger, err error, action string) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		referenceErr  *domain.ReferentialIntegrityError
		conflictErr   *domain.ConcurrencyConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		resp := response.ValidationFailed("Validation failed", toFieldErrors(validationErr.Errors))
		status := http.StatusBadRequest
		if domain.IsDuplicate(err) {
			resp.Error.Code = response.ErrCodeConflict
			status = http.StatusConflict
		}
		c.JSON(status, resp)

	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, response.NotFound(label(notFoundErr.Resource)+" not found"))

	case errors.As(err, &referenceErr):
		resp := response.Error(response.ErrCodeReferenceViolation,
			label(referenceErr.Resource)+" is still referenced by other records and cannot be deleted")
		resp.Error.Details = referenceErr.Constraint
		c.JSON(http.StatusConflict, resp)

	case errors.As(err, &conflictErr):
		resp := response.Error(response.ErrCodeConcurrency, domain.MsgStaleVersion)
		resp.Error.Fields = []response.FieldError{{Field: domain.FieldVersion, Message: domain.MsgStaleVersion}}
		c.JSON(http.StatusConflict, resp)

	default:
		log.Error("request failed",
			zap.String("action", action),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to "+action))
	}
}

func toFieldErrors(errs []domain.FieldError) []response.FieldError {
	fields := make([]response.FieldError, len(errs))
	for i, fe := range errs {
		fields[i] = response.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return fields
}

func label(resource string) string {
	if resource == "" {
		return "Record"
	}
	return strings.ToUpper(resource[:1]) + resource[1:]
}

// actorContext carries the authenticated user, if any, into the service call
func actorContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if userID, ok := middleware.GetUserID(c); ok {
		ctx = audit.WithActor(ctx, userID)
	}
	return ctx
}

func defaultLogger(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.NewNop()
	}
	return log
}
