package models

import "testing"

func TestTicketIsGuest(t *testing.T) {
	userID := uint(7)

	owned := Ticket{UserID: &userID}
	if owned.IsGuest() {
		t.Error("IsGuest() = true for a ticket with a user, want false")
	}

	guest := Ticket{GuestName: "Ada", GuestEmail: "ada@example.com"}
	if !guest.IsGuest() {
		t.Error("IsGuest() = false for a guest ticket, want true")
	}
}

func TestTicketCustomerFields(t *testing.T) {
	userID := uint(7)
	owned := Ticket{
		UserID: &userID,
		User:   &User{Name: "Grace", Email: "grace@example.com"},
	}
	if got := owned.CustomerName(); got != "Grace" {
		t.Errorf("CustomerName() = %q, want %q", got, "Grace")
	}
	if got := owned.CustomerEmail(); got != "grace@example.com" {
		t.Errorf("CustomerEmail() = %q, want %q", got, "grace@example.com")
	}

	guest := Ticket{GuestName: "Ada", GuestEmail: "ada@example.com"}
	if got := guest.CustomerName(); got != "Ada" {
		t.Errorf("CustomerName() = %q, want %q", got, "Ada")
	}
	if got := guest.CustomerEmail(); got != "ada@example.com" {
		t.Errorf("CustomerEmail() = %q, want %q", got, "ada@example.com")
	}
}

func TestTicketStatusMetadata(t *testing.T) {
	for _, status := range AllTicketStatuses {
		if status.Label() == "" {
			t.Errorf("%s.Label() is empty", status)
		}
		if color := status.Color(); len(color) != 7 || color[0] != '#' {
			t.Errorf("%s.Color() = %q, want a hex color", status, color)
		}
	}
}
