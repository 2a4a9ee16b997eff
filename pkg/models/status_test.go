package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"confirmed to en-route", StatusConfirmed, StatusEnRoute, true},
		{"en-route to arrived", StatusEnRoute, StatusArrived, true},
		{"arrived to completed", StatusArrived, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"en-route to cancelled", StatusEnRoute, StatusCancelled, true},

		{"no skipping ahead", StatusConfirmed, StatusArrived, false},
		{"no going back", StatusArrived, StatusEnRoute, false},
		{"arrived cannot cancel", StatusArrived, StatusCancelled, false},
		{"completed cannot cancel", StatusCompleted, StatusCancelled, false},
		{"cancelled cannot advance", StatusCancelled, StatusEnRoute, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
		{"completed cannot advance", StatusCompleted, StatusEnRoute, false},
		{"no self transition", StatusEnRoute, StatusEnRoute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusEnRoute.Terminal())
	assert.False(t, StatusArrived.Terminal())
}

func TestGetStatusInfo(t *testing.T) {
	assert.Equal(t, 25, GetStatusInfo(StatusConfirmed).Progress)
	assert.Equal(t, 50, GetStatusInfo(StatusEnRoute).Progress)
	assert.Equal(t, 75, GetStatusInfo(StatusArrived).Progress)
	assert.Equal(t, 100, GetStatusInfo(StatusCompleted).Progress)
	assert.Equal(t, 100, GetStatusInfo(StatusCancelled).Progress)

	unknown := GetStatusInfo(Status("processing"))
	assert.Equal(t, "Processing", unknown.Label)
	assert.Equal(t, 10, unknown.Progress)
}
