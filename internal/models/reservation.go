package models

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

var AllReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusActive,
	ReservationStatusCompleted,
	ReservationStatusCancelled,
	ReservationStatusNoShow,
}

func (s ReservationStatus) Label() string {
	switch s {
	case ReservationStatusPending:
		return "Pending"
	case ReservationStatusConfirmed:
		return "Confirmed"
	case ReservationStatusActive:
		return "Active"
	case ReservationStatusCompleted:
		return "Completed"
	case ReservationStatusCancelled:
		return "Cancelled"
	case ReservationStatusNoShow:
		return "No show"
	}
	return string(s)
}

func (s ReservationStatus) Color() string {
	switch s {
	case ReservationStatusPending:
		return "#F59E0B" // Amber-500
	case ReservationStatusConfirmed:
		return "#10B981" // Green-500
	case ReservationStatusActive:
		return "#3B82F6" // Blue-500
	case ReservationStatusCompleted:
		return "#111827" // Gray-900
	case ReservationStatusCancelled:
		return "#EF4444" // Red-500
	case ReservationStatusNoShow:
		return "#6B7280" // Gray-500
	}
	return "#6B7280"
}

func (s ReservationStatus) IsValid() bool {
	for _, known := range AllReservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// BlocksAvailability reports whether a reservation in this status occupies
// the car for availability purposes. Only confirmed and active do.
func (s ReservationStatus) BlocksAvailability() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusActive
}

// CanTransitionTo reports whether an admin may move a reservation from s to
// next. The lifecycle is pending -> confirmed -> active -> completed, with
// cancelled and no_show terminal from pending or confirmed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ReservationStatusPending:
		return next == ReservationStatusConfirmed ||
			next == ReservationStatusCancelled ||
			next == ReservationStatusNoShow
	case ReservationStatusConfirmed:
		return next == ReservationStatusActive ||
			next == ReservationStatusCancelled ||
			next == ReservationStatusNoShow
	case ReservationStatusActive:
		return next == ReservationStatusCompleted
	case ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusNoShow:
		return false
	}
	return false
}

type Reservation struct {
	gorm.Model
	ReservationNumber  string            `json:"reservationNumber" gorm:"unique;not null"`
	UserID             uint              `json:"userId" gorm:"not null;index:idx_reservations_user_status"`
	User               User              `json:"user"`
	CarID              uint              `json:"carId" gorm:"not null;index:idx_reservations_car_dates"`
	Car                Car               `json:"car"`
	StartDate          time.Time         `json:"startDate" gorm:"not null;index:idx_reservations_car_dates"`
	EndDate            time.Time         `json:"endDate" gorm:"not null;index:idx_reservations_car_dates"`
	PickupTime         string            `json:"pickupTime" gorm:"default:'09:00'"`
	ReturnTime         string            `json:"returnTime" gorm:"default:'18:00'"`
	PickupLocation     string            `json:"pickupLocation"`
	ReturnLocation     string            `json:"returnLocation"`
	TotalDays          int               `json:"totalDays" gorm:"not null"`
	DailyRate          float64           `json:"dailyRate" gorm:"not null"`
	Subtotal           float64           `json:"subtotal" gorm:"not null"`
	TaxAmount          float64           `json:"taxAmount" gorm:"not null;default:0"`
	DiscountAmount     float64           `json:"discountAmount" gorm:"not null;default:0"`
	TotalAmount        float64           `json:"totalAmount" gorm:"not null"`
	Status             ReservationStatus `json:"status" gorm:"not null;default:'pending';index:idx_reservations_user_status"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time        `json:"cancelledAt,omitempty"`
	Payments           []Payment         `json:"payments,omitempty"`
}

// TableName specifies the table name
func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusActive
}

// CanBeCancelled reports whether the reservation is still in a state an
// admin may cancel (pending or confirmed).
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}
