package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSystem().Now().Location())
}

func TestFake_Advance(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.FixedZone("SAST", 2*60*60))
	c := NewFake(start)

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(start))

	c.Advance(time.Hour)
	assert.True(t, c.Now().Equal(start.Add(time.Hour)))
}
