package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_Remaining(t *testing.T) {
	start := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := NewCountdown(5, start)

	assert.Equal(t, 300, c.Remaining(start))
	assert.Equal(t, 299, c.Remaining(start.Add(1*time.Second)))
	assert.Equal(t, 150, c.Remaining(start.Add(150*time.Second)))
	assert.Equal(t, 0, c.Remaining(start.Add(5*time.Minute)))

	// Clamped at zero once the estimate has elapsed.
	assert.Equal(t, 0, c.Remaining(start.Add(time.Hour)))
}

func TestCountdown_Format(t *testing.T) {
	start := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := NewCountdown(12, start)

	assert.Equal(t, "12:00", c.Format(start))
	assert.Equal(t, "11:59", c.Format(start.Add(1*time.Second)))
	assert.Equal(t, "00:00", c.Format(start.Add(time.Hour)))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:00", FormatSeconds(0))
	assert.Equal(t, "01:05", FormatSeconds(65))
	assert.Equal(t, "15:00", FormatSeconds(900))
	assert.Equal(t, "--:--", FormatSeconds(-1))
}
