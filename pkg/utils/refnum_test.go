package utils

import (
	"regexp"
	"testing"
)

var refPattern = regexp.MustCompile(`^[A-Z]+-[A-Z0-9]{8}$`)

func TestReservationNumberFormat(t *testing.T) {
	got := ReservationNumber()

	if len(got) != 12 {
		t.Errorf("len(ReservationNumber()) = %v, want %v", len(got), 12)
	}
	if got[:4] != "RES-" {
		t.Errorf("ReservationNumber() prefix = %q, want %q", got[:4], "RES-")
	}
	if !refPattern.MatchString(got) {
		t.Errorf("ReservationNumber() = %q, does not match %v", got, refPattern)
	}
}

func TestPaymentNumberFormat(t *testing.T) {
	got := PaymentNumber()

	if got[:4] != "PAY-" {
		t.Errorf("PaymentNumber() prefix = %q, want %q", got[:4], "PAY-")
	}
	if !refPattern.MatchString(got) {
		t.Errorf("PaymentNumber() = %q, does not match %v", got, refPattern)
	}
}

func TestReservationNumbersDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := ReservationNumber()
		if seen[ref] {
			t.Fatalf("duplicate reference %q after %d draws", ref, i)
		}
		seen[ref] = true
	}
}

func TestTicketNumber(t *testing.T) {
	tests := []struct {
		lastID uint
		want   string
	}{
		{0, "TICK-000001"},
		{41, "TICK-000042"},
		{999999, "TICK-1000000"},
	}

	for _, tt := range tests {
		if got := TicketNumber(tt.lastID); got != tt.want {
			t.Errorf("TicketNumber(%d) = %q, want %q", tt.lastID, got, tt.want)
		}
	}
}
