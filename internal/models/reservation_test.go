package models

import "testing"

func TestReservationStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusNoShow, true},
		{ReservationStatusPending, ReservationStatusActive, false},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusConfirmed, ReservationStatusActive, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusNoShow, true},
		{ReservationStatusConfirmed, ReservationStatusCompleted, false},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusActive, ReservationStatusCompleted, true},
		{ReservationStatusActive, ReservationStatusCancelled, false},
		{ReservationStatusActive, ReservationStatusNoShow, false},
		{ReservationStatusCompleted, ReservationStatusActive, false},
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusNoShow, ReservationStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestReservationStatusCanTransitionToSelf(t *testing.T) {
	for _, status := range AllReservationStatuses {
		if !status.CanTransitionTo(status) {
			t.Errorf("%s.CanTransitionTo(%s) = false, want true", status, status)
		}
	}
}

func TestReservationStatusBlocksAvailability(t *testing.T) {
	blocking := map[ReservationStatus]bool{
		ReservationStatusConfirmed: true,
		ReservationStatusActive:    true,
	}

	for _, status := range AllReservationStatuses {
		if got := status.BlocksAvailability(); got != blocking[status] {
			t.Errorf("%s.BlocksAvailability() = %v, want %v", status, got, blocking[status])
		}
	}
}

func TestReservationStatusMetadata(t *testing.T) {
	for _, status := range AllReservationStatuses {
		if status.Label() == "" {
			t.Errorf("%s.Label() is empty", status)
		}
		if color := status.Color(); len(color) != 7 || color[0] != '#' {
			t.Errorf("%s.Color() = %q, want a hex color", status, color)
		}
		if !status.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", status)
		}
	}

	if ReservationStatus("teleported").IsValid() {
		t.Error(`ReservationStatus("teleported").IsValid() = true, want false`)
	}
}

func TestReservationCanBeCancelled(t *testing.T) {
	cancellable := map[ReservationStatus]bool{
		ReservationStatusPending:   true,
		ReservationStatusConfirmed: true,
	}

	for _, status := range AllReservationStatuses {
		r := Reservation{Status: status}
		if got := r.CanBeCancelled(); got != cancellable[status] {
			t.Errorf("CanBeCancelled() with status %s = %v, want %v", status, got, cancellable[status])
		}
	}
}
