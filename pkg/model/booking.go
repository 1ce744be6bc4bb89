package model

import (
	"time"
)

// Status values the bookings service is known to emit. The set is open:
// anything else is carried verbatim and rendered as-is.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking is an immutable snapshot as received from the bookings service.
// Nothing in this service mutates a booking or writes one back.
type Booking struct {
	ID                string    `json:"id" validate:"required"`
	CarID             int64     `json:"car_id"`
	PreferredLocation string    `json:"preferred_location"`
	BookingDate       time.Time `json:"booking_date" validate:"required"`
	Status            string    `json:"status" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Denormalized vehicle fields. All optional; presentation falls back
	// to the car ID when make/model are absent.
	VehicleMake  *string `json:"vehicle_make,omitempty"`
	VehicleModel *string `json:"vehicle_model,omitempty"`
	VehicleYear  *int    `json:"vehicle_year,omitempty"`
	VehicleTrim  *string `json:"vehicle_trim,omitempty"`

	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// StatusKind is the closed view over the open status string: the four
// known statuses plus an explicit unknown arm, so classification and
// presentation stay total without a stringly default case at every site.
type StatusKind int

const (
	StatusKindUnknown StatusKind = iota
	StatusKindPending
	StatusKindConfirmed
	StatusKindCompleted
	StatusKindCancelled
)

func KindOfStatus(status string) StatusKind {
	switch status {
	case StatusPending:
		return StatusKindPending
	case StatusConfirmed:
		return StatusKindConfirmed
	case StatusCompleted:
		return StatusKindCompleted
	case StatusCancelled:
		return StatusKindCancelled
	default:
		return StatusKindUnknown
	}
}

// Open reports whether the booking still awaits an outcome. Terminal
// and unknown statuses are both not open.
func (k StatusKind) Open() bool {
	return k == StatusKindPending || k == StatusKindConfirmed
}
