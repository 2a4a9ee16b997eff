package service

import (
	"mediride/config"
	"mediride/pkg/dispatch"
	"mediride/pkg/logger"
	"mediride/storage"
)

type IServiceManager interface {
	Auth() AuthService
	Booking() BookingService
}

type service struct {
	authService    AuthService
	bookingService BookingService
}

func New(stg storage.IStorage, cfg config.Config, src *dispatch.Source, log logger.ILogger) IServiceManager {
	return &service{
		authService:    NewAuthService(stg, cfg, log),
		bookingService: NewBookingService(stg, cfg, src, log),
	}
}

func (s *service) Auth() AuthService {
	return s.authService
}

func (s *service) Booking() BookingService {
	return s.bookingService
}
