package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mediride/config"
	"mediride/pkg/dispatch"
	"mediride/pkg/logger"
	"mediride/pkg/models"
	"mediride/storage"
)

// ErrIncompleteRequest is returned by Create when a required field
// (patient name, contact number, pickup address) is missing. The form
// layer is expected to validate upstream; this is the backstop.
var ErrIncompleteRequest = errors.New("booking request is missing required fields")

type BookingService interface {
	Create(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
}

type bookingService struct {
	stg      storage.ISessionStorage
	cfg      config.Config
	dispatch *dispatch.Source
	log      logger.ILogger
}

func NewBookingService(stg storage.IStorage, cfg config.Config, src *dispatch.Source, log logger.ILogger) BookingService {
	return &bookingService{
		stg:      stg.Session(),
		cfg:      cfg,
		dispatch: src,
		log:      log,
	}
}

// Create builds a fully populated booking from the partial payload,
// installs it as the session's current booking (replacing any previous
// one) and schedules the automatic status transitions. The busy flag is
// held for the simulated round-trip.
func (s *bookingService) Create(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	s.stg.SetBusy(ctx, true)
	defer s.stg.SetBusy(ctx, false)

	time.Sleep(s.cfg.CreateDelay)

	if req == nil || req.PatientName == "" || req.ContactNumber == "" || req.PickupLocation.Address == "" {
		s.log.Warning("booking request rejected", logger.String("reason", "missing required fields"))
		return nil, ErrIncompleteRequest
	}

	ambulanceType := req.AmbulanceType
	if !ambulanceType.Valid() {
		ambulanceType = models.AmbulanceBasic
	}

	booking := &models.Booking{
		ID:               "booking-" + uuid.NewString(),
		PatientName:      req.PatientName,
		ContactNumber:    req.ContactNumber,
		MedicalNotes:     req.MedicalNotes,
		PickupLocation:   req.PickupLocation,
		Destination:      req.Destination,
		AmbulanceType:    ambulanceType,
		Status:           models.StatusConfirmed,
		CreatedAt:        time.Now(),
		EstimatedArrival: s.dispatch.EstimatedArrival(),
		DriverInfo:       s.dispatch.AssignDriver(),
	}
	if user := s.stg.User(ctx); user != nil {
		booking.UserID = user.ID
	}

	s.stg.SetBooking(ctx, booking)
	if err := s.stg.AppendBookingHistory(ctx, booking.ID); err != nil {
		s.log.Error("failed to append booking history", logger.Error(err))
	}
	s.scheduleTransitions(booking.ID)

	s.log.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("ambulance_type", string(booking.AmbulanceType)),
		logger.Int("estimated_arrival_min", booking.EstimatedArrival),
		logger.String("driver", booking.DriverInfo.Name),
	)
	return booking, nil
}

// Cancel sets the current booking to cancelled. The id must match the
// current booking and the status must still allow cancellation. On
// success the current booking reference is cleared after a fixed delay,
// so the cancelled view eventually expires.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	s.stg.SetBusy(ctx, true)
	defer s.stg.SetBusy(ctx, false)

	time.Sleep(s.cfg.CancelDelay)

	if err := s.stg.UpdateBookingStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		s.log.Warning("cancel rejected", logger.String("booking_id", bookingID), logger.Error(err))
		return err
	}
	s.log.Info("booking cancelled", logger.String("booking_id", bookingID))

	time.AfterFunc(s.cfg.BookingClearDelay, func() {
		if err := s.stg.ClearBooking(context.Background(), bookingID); err != nil {
			return
		}
		s.log.Info("cancelled booking cleared", logger.String("booking_id", bookingID))
	})
	return nil
}

// scheduleTransitions arms the three automatic transitions as
// independent timers pinned to absolute offsets from creation. Each
// callback carries the booking id; the store's guards turn fires against
// a cancelled or replaced booking into no-ops. Timers are never
// descheduled.
func (s *bookingService) scheduleTransitions(bookingID string) {
	steps := []struct {
		delay time.Duration
		next  models.Status
	}{
		{s.cfg.EnRouteDelay, models.StatusEnRoute},
		{s.cfg.ArrivedDelay, models.StatusArrived},
		{s.cfg.CompletedDelay, models.StatusCompleted},
	}
	for _, step := range steps {
		next := step.next
		time.AfterFunc(step.delay, func() {
			err := s.stg.UpdateBookingStatus(context.Background(), bookingID, next)
			switch {
			case err == nil:
				s.log.Info("booking status advanced",
					logger.String("booking_id", bookingID),
					logger.String("status", string(next)),
				)
			case errors.Is(err, storage.ErrBookingNotFound), errors.Is(err, storage.ErrInvalidTransition):
				// Stale timer: the booking was cancelled or replaced.
				s.log.Info("skipped stale status update",
					logger.String("booking_id", bookingID),
					logger.String("status", string(next)),
				)
			default:
				s.log.Error("status update failed",
					logger.String("booking_id", bookingID),
					logger.Error(err),
				)
			}
		})
	}
}
