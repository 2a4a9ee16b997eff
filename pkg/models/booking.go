package models

import "time"

type AmbulanceType string

const (
	AmbulanceBasic       AmbulanceType = "Basic"
	AmbulanceAdvanced    AmbulanceType = "Advanced"
	AmbulanceSpecialized AmbulanceType = "Specialized"
)

func (t AmbulanceType) Valid() bool {
	switch t {
	case AmbulanceBasic, AmbulanceAdvanced, AmbulanceSpecialized:
		return true
	}
	return false
}

type DriverInfo struct {
	Name          string  `json:"name"`
	ContactNumber string  `json:"contact_number"`
	Rating        float64 `json:"rating"`
}

type Booking struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id,omitempty"`
	PatientName    string        `json:"patient_name"`
	ContactNumber  string        `json:"contact_number"`
	MedicalNotes   string        `json:"medical_notes"`
	PickupLocation Location      `json:"pickup_location"`
	Destination    *Location     `json:"destination,omitempty"`
	AmbulanceType  AmbulanceType `json:"ambulance_type"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`

	// Minutes until arrival, fixed at creation.
	EstimatedArrival int         `json:"estimated_arrival"`
	DriverInfo       *DriverInfo `json:"driver_info,omitempty"`
}

func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	out := *b
	if pl := b.PickupLocation.Clone(); pl != nil {
		out.PickupLocation = *pl
	}
	out.Destination = b.Destination.Clone()
	if b.DriverInfo != nil {
		d := *b.DriverInfo
		out.DriverInfo = &d
	}
	return &out
}

// BookingRequest is the partial payload accepted by the create operation.
// PatientName, ContactNumber and PickupLocation.Address are required;
// the rest is defaulted.
type BookingRequest struct {
	PatientName    string        `json:"patient_name"`
	ContactNumber  string        `json:"contact_number"`
	MedicalNotes   string        `json:"medical_notes"`
	PickupLocation Location      `json:"pickup_location"`
	Destination    *Location     `json:"destination,omitempty"`
	AmbulanceType  AmbulanceType `json:"ambulance_type"`
}
