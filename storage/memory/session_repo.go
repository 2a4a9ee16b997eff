package memory

import (
	"context"
	"sync"

	"mediride/pkg/logger"
	"mediride/pkg/models"
	"mediride/storage"
)

type sessionRepo struct {
	mu       sync.Mutex
	user     *models.User
	booking  *models.Booking
	busy     bool
	watchers map[chan storage.Snapshot]struct{}
	closed   bool
	log      logger.ILogger
}

func newSessionRepo(log logger.ILogger) *sessionRepo {
	return &sessionRepo{
		watchers: make(map[chan storage.Snapshot]struct{}),
		log:      log,
	}
}

func (r *sessionRepo) SetUser(_ context.Context, user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = user.Clone()
	r.notifyLocked()
}

func (r *sessionRepo) User(_ context.Context) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user.Clone()
}

func (r *sessionRepo) ClearUser(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
	r.notifyLocked()
}

func (r *sessionRepo) AppendBookingHistory(_ context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user == nil {
		return nil
	}
	r.user.BookingHistory = append(r.user.BookingHistory, bookingID)
	r.notifyLocked()
	return nil
}

func (r *sessionRepo) SetBooking(_ context.Context, booking *models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booking = booking.Clone()
	r.notifyLocked()
}

func (r *sessionRepo) Booking(_ context.Context) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booking.Clone()
}

// UpdateBookingStatus applies a status transition to the current booking.
// The id guard keeps stale timers from touching a booking other than the
// one they were scheduled for; the transition guard keeps a cancelled or
// terminal booking from being advanced.
func (r *sessionRepo) UpdateBookingStatus(_ context.Context, bookingID string, next models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.booking == nil || r.booking.ID != bookingID {
		return storage.ErrBookingNotFound
	}
	if !r.booking.Status.CanTransitionTo(next) {
		return storage.ErrInvalidTransition
	}
	r.booking.Status = next
	r.notifyLocked()
	return nil
}

func (r *sessionRepo) ClearBooking(_ context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.booking == nil || r.booking.ID != bookingID {
		return storage.ErrBookingNotFound
	}
	r.booking = nil
	r.notifyLocked()
	return nil
}

func (r *sessionRepo) SetBusy(_ context.Context, busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = busy
	r.notifyLocked()
}

func (r *sessionRepo) Busy(_ context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *sessionRepo) Watch() <-chan storage.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan storage.Snapshot, 1)
	if !r.closed {
		r.watchers[ch] = struct{}{}
	} else {
		close(ch)
	}
	return ch
}

func (r *sessionRepo) Unwatch(ch <-chan storage.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.watchers {
		if c == ch {
			delete(r.watchers, c)
			close(c)
			return
		}
	}
}

func (r *sessionRepo) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for c := range r.watchers {
		close(c)
		delete(r.watchers, c)
	}
}

// notifyLocked publishes a snapshot to every watcher. Sends never block:
// a slow watcher's stale snapshot is dropped so it always observes the
// latest state.
func (r *sessionRepo) notifyLocked() {
	snap := storage.Snapshot{
		User:    r.user.Clone(),
		Booking: r.booking.Clone(),
		Busy:    r.busy,
	}
	for c := range r.watchers {
		select {
		case c <- snap:
		default:
			select {
			case <-c:
			default:
			}
			select {
			case c <- snap:
			default:
			}
		}
	}
}
