package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "LOGGER_LEVEL", "DISPATCH_SEED",
		"LOGIN_DELAY", "CREATE_DELAY", "CANCEL_DELAY",
		"EN_ROUTE_DELAY", "ARRIVED_DELAY", "COMPLETED_DELAY",
		"BOOKING_CLEAR_DELAY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mediride", cfg.ServiceName)
	assert.Equal(t, "debug", cfg.LoggerLevel)
	assert.Equal(t, int64(0), cfg.DispatchSeed)

	assert.Equal(t, 1*time.Second, cfg.LoginDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.CreateDelay)
	assert.Equal(t, 1*time.Second, cfg.CancelDelay)

	assert.Equal(t, 10*time.Second, cfg.EnRouteDelay)
	assert.Equal(t, 25*time.Second, cfg.ArrivedDelay)
	assert.Equal(t, 40*time.Second, cfg.CompletedDelay)
	assert.Equal(t, 5*time.Second, cfg.BookingClearDelay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "mediride-test")
	t.Setenv("DISPATCH_SEED", "42")
	t.Setenv("EN_ROUTE_DELAY", "250ms")
	t.Setenv("BOOKING_CLEAR_DELAY", "2s")

	cfg := Load()

	assert.Equal(t, "mediride-test", cfg.ServiceName)
	assert.Equal(t, int64(42), cfg.DispatchSeed)
	assert.Equal(t, 250*time.Millisecond, cfg.EnRouteDelay)
	assert.Equal(t, 2*time.Second, cfg.BookingClearDelay)
}
