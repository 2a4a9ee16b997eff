package models

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusEnRoute   Status = "en-route"
	StatusArrived   Status = "arrived"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal move from s. Statuses
// advance strictly forward (confirmed → en-route → arrived → completed);
// cancellation is reachable from confirmed and en-route only.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusEnRoute:
		return s == StatusConfirmed
	case StatusArrived:
		return s == StatusEnRoute
	case StatusCompleted:
		return s == StatusArrived
	case StatusCancelled:
		return s == StatusConfirmed || s == StatusEnRoute
	}
	return false
}

// StatusInfo is display metadata for a lifecycle status, consumed by
// presentation layers.
type StatusInfo struct {
	Label    string
	Color    string
	Icon     string
	Message  string
	Progress int
}

func GetStatusInfo(status Status) StatusInfo {
	switch status {
	case StatusConfirmed:
		return StatusInfo{
			Label:    "Confirmed",
			Color:    "blue",
			Icon:     "clock",
			Message:  "Your ambulance is confirmed and being dispatched",
			Progress: 25,
		}
	case StatusEnRoute:
		return StatusInfo{
			Label:    "En Route",
			Color:    "yellow",
			Icon:     "map-pin",
			Message:  "Your ambulance is on the way",
			Progress: 50,
		}
	case StatusArrived:
		return StatusInfo{
			Label:    "Arrived",
			Color:    "green",
			Icon:     "check-circle",
			Message:  "Your ambulance has arrived at your location",
			Progress: 75,
		}
	case StatusCompleted:
		return StatusInfo{
			Label:    "Completed",
			Color:    "green",
			Icon:     "check-circle",
			Message:  "Your journey has been completed",
			Progress: 100,
		}
	case StatusCancelled:
		return StatusInfo{
			Label:    "Cancelled",
			Color:    "red",
			Icon:     "x-circle",
			Message:  "This booking has been cancelled",
			Progress: 100,
		}
	default:
		return StatusInfo{
			Label:    "Processing",
			Color:    "gray",
			Icon:     "clock",
			Message:  "Processing your request",
			Progress: 10,
		}
	}
}
