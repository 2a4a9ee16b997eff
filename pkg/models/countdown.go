package models

import (
	"fmt"
	"time"
)

// Countdown derives a display-only arrival countdown from a booking's
// estimated arrival. It is re-derivable from wall-clock time and is never
// authoritative booking state.
type Countdown struct {
	total     time.Duration
	visibleAt time.Time
}

// NewCountdown starts a countdown of estimatedArrival minutes at the
// moment the booking became visible.
func NewCountdown(estimatedArrival int, visibleAt time.Time) Countdown {
	return Countdown{
		total:     time.Duration(estimatedArrival) * time.Minute,
		visibleAt: visibleAt,
	}
}

// Remaining returns whole seconds left at now, clamped at zero.
func (c Countdown) Remaining(now time.Time) int {
	left := c.total - now.Sub(c.visibleAt)
	if left < 0 {
		left = 0
	}
	return int(left / time.Second)
}

func (c Countdown) Format(now time.Time) string {
	return FormatSeconds(c.Remaining(now))
}

// FormatSeconds renders seconds as MM:SS; negative means unknown.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		return "--:--"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
