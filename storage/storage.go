package storage

import (
	"context"
	"errors"

	"mediride/pkg/models"
)

var (
	// ErrBookingNotFound means the id does not match the session's
	// current booking (or there is no current booking).
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition means the requested status change is not a
	// legal move from the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type IStorage interface {
	Session() ISessionStorage
	Close()
}

// ISessionStorage is the session state store: current user, current
// booking and the busy flag. Getters return copies; mutating a returned
// value never touches stored state.
type ISessionStorage interface {
	SetUser(ctx context.Context, user *models.User)
	User(ctx context.Context) *models.User
	ClearUser(ctx context.Context)
	AppendBookingHistory(ctx context.Context, bookingID string) error

	SetBooking(ctx context.Context, booking *models.Booking)
	Booking(ctx context.Context) *models.Booking
	UpdateBookingStatus(ctx context.Context, bookingID string, next models.Status) error
	ClearBooking(ctx context.Context, bookingID string) error

	SetBusy(ctx context.Context, busy bool)
	Busy(ctx context.Context) bool

	Watch() <-chan Snapshot
	Unwatch(ch <-chan Snapshot)
}

// Snapshot is an immutable copy of the session published to watchers on
// every mutation.
type Snapshot struct {
	User    *models.User
	Booking *models.Booking
	Busy    bool
}
