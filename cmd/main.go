package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediride/config"
	"mediride/pkg/dispatch"
	"mediride/pkg/logger"
	"mediride/pkg/models"
	"mediride/service"
	"mediride/storage/memory"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	// 3. Initialize Session Store (in-memory)
	store := memory.New(log)
	defer store.Close()

	// 4. Initialize Services
	src := dispatch.New(cfg.DispatchSeed)
	svc := service.New(store, cfg, src, log)

	log.Info("🚑 MediRide simulator is starting...")

	session := store.Session()
	watch := session.Watch()
	defer session.Unwatch(watch)

	ctx := context.Background()

	// Demo session: log in, book an ambulance, follow the lifecycle.
	if _, err := svc.Auth().Login(ctx, "demo@mediride.app", "demo"); err != nil {
		log.Error("login failed", logger.Error(err))
		os.Exit(1)
	}

	pickup := src.ReverseGeocode(40.7128, -74.0060)
	booking, err := svc.Booking().Create(ctx, &models.BookingRequest{
		PatientName:    "John Doe",
		ContactNumber:  "+1 (555) 123-4567",
		PickupLocation: pickup,
		Destination:    &models.Location{Address: "City General Hospital"},
	})
	if err != nil {
		log.Error("failed to create booking", logger.Error(err))
		os.Exit(1)
	}

	countdown := models.NewCountdown(booking.EstimatedArrival, time.Now())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	lastStatus := booking.Status
	for {
		select {
		case snap, ok := <-watch:
			if !ok {
				return
			}
			if snap.Booking == nil || snap.Booking.Status == lastStatus {
				continue
			}
			lastStatus = snap.Booking.Status
			info := models.GetStatusInfo(lastStatus)
			log.Info(info.Message,
				logger.String("status", info.Label),
				logger.Int("progress", info.Progress),
				logger.String("eta", countdown.Format(time.Now())),
			)
			if lastStatus.Terminal() {
				svc.Auth().Logout(ctx)
				return
			}
		case <-quit:
			log.Info("shutting down...")
			return
		}
	}
}
