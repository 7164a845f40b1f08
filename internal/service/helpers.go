package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/repository"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/telemetry"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func defaultStamper(s *audit.Stamper) *audit.Stamper {
	if s == nil {
		return audit.NewStamper(nil)
	}
	return s
}

func defaultLogger(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.NewNop()
	}
	return log
}

// isDomainError reports errors that describe the request rather than a fault
func isDomainError(err error) bool {
	return domain.IsValidationError(err) ||
		domain.IsNotFound(err) ||
		domain.IsReferentialIntegrity(err) ||
		domain.IsConcurrencyConflict(err)
}

// endSpan records the outcome of an operation and ends its span
func endSpan(span trace.Span, err error) {
	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case isDomainError(err):
		span.SetStatus(codes.Error, err.Error())
	default:
		telemetry.RecordError(span, err, err.Error())
	}
	span.End()
}

// logFailure logs store failures; domain outcomes are the caller's business
func logFailure(log *logger.Logger, msg string, err error, fields ...zap.Field) {
	if err == nil || isDomainError(err) {
		return
	}
	log.Error(msg, append(fields, zap.Error(err))...)
}

// checkVersion compares the version the client last saw with the stored one
func checkVersion(resource, id string, expected *int, current int) error {
	if expected != nil && *expected != current {
		return &domain.ConcurrencyConflictError{Resource: resource, ID: id}
	}
	return nil
}

// resolveStale explains an update that matched no row: the record is either
// gone or was changed by another writer. Other errors pass through.
func resolveStale[T any](ctx context.Context, err error, resource, id string, get func(context.Context, string) (*T, error)) error {
	if !errors.Is(err, repository.ErrStaleVersion) {
		return err
	}
	current, getErr := get(ctx, id)
	if getErr != nil {
		return getErr
	}
	if current == nil {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	return &domain.ConcurrencyConflictError{Resource: resource, ID: id}
}

// trimPtr trims an optional string and turns blanks into nil
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
