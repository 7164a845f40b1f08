// Package audit stamps creation and modification times on entities just
// before they are written.
package audit

import (
	"context"
	"time"

	"github.com/sabrinafayremeyer/EventEase/pkg/clock"
)

// Created is implemented by entities carrying a creation time
type Created interface {
	MarkCreated(now time.Time)
}

// Modified is implemented by entities carrying an update time
type Modified interface {
	MarkModified(now time.Time)
}

// Stamper applies audit times from a clock
type Stamper struct {
	clock clock.Clock
}

// NewStamper creates a stamper. A nil clock uses the system clock.
func NewStamper(c clock.Clock) *Stamper {
	if c == nil {
		c = clock.NewSystem()
	}
	return &Stamper{clock: c}
}

// Created stamps every entity as newly created. All entities in one call
// share the same instant. Values without MarkCreated are skipped.
func (s *Stamper) Created(entities ...interface{}) {
	now := s.now()
	for _, e := range entities {
		if c, ok := e.(Created); ok {
			c.MarkCreated(now)
		}
	}
}

// Modified stamps every entity as modified. Values without MarkModified
// are skipped.
func (s *Stamper) Modified(entities ...interface{}) {
	now := s.now()
	for _, e := range entities {
		if m, ok := e.(Modified); ok {
			m.MarkModified(now)
		}
	}
}

func (s *Stamper) now() time.Time {
	return s.clock.Now().UTC()
}

type actorKey struct{}

// WithActor records the acting user on the context
func WithActor(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user, or nil when the request was anonymous
func ActorFrom(ctx context.Context) *string {
	if id, ok := ctx.Value(actorKey{}).(string); ok && id != "" {
		return &id
	}
	return nil
}
