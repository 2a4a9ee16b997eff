package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	// Seed for the simulated dispatch source. 0 means time-seeded.
	DispatchSeed int64

	// Simulated network latency per operation.
	LoginDelay  time.Duration
	CreateDelay time.Duration
	CancelDelay time.Duration

	// Automatic status transitions, measured from booking creation.
	EnRouteDelay   time.Duration
	ArrivedDelay   time.Duration
	CompletedDelay time.Duration

	// How long a cancelled booking stays visible before the current
	// booking reference is cleared.
	BookingClearDelay time.Duration
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "mediride"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.DispatchSeed = cast.ToInt64(getOrReturnDefault("DISPATCH_SEED", 0))

	cfg.LoginDelay = cast.ToDuration(getOrReturnDefault("LOGIN_DELAY", 1*time.Second))
	cfg.CreateDelay = cast.ToDuration(getOrReturnDefault("CREATE_DELAY", 1500*time.Millisecond))
	cfg.CancelDelay = cast.ToDuration(getOrReturnDefault("CANCEL_DELAY", 1*time.Second))

	cfg.EnRouteDelay = cast.ToDuration(getOrReturnDefault("EN_ROUTE_DELAY", 10*time.Second))
	cfg.ArrivedDelay = cast.ToDuration(getOrReturnDefault("ARRIVED_DELAY", 25*time.Second))
	cfg.CompletedDelay = cast.ToDuration(getOrReturnDefault("COMPLETED_DELAY", 40*time.Second))

	cfg.BookingClearDelay = cast.ToDuration(getOrReturnDefault("BOOKING_CLEAR_DELAY", 5*time.Second))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
