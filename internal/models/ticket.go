package models

import (
	"time"

	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "new"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

var AllTicketStatuses = []TicketStatus{
	TicketStatusNew,
	TicketStatusInProgress,
	TicketStatusClosed,
}

func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusNew:
		return "New"
	case TicketStatusInProgress:
		return "In Progress"
	case TicketStatusClosed:
		return "Closed"
	}
	return string(s)
}

func (s TicketStatus) Color() string {
	switch s {
	case TicketStatusNew:
		return "#007bff" // blue
	case TicketStatusInProgress:
		return "#FFC107" // yellow
	case TicketStatusClosed:
		return "#28A745" // green
	}
	return "#6C757D"
}

// Ticket is a support conversation owned either by a registered user
// (UserID set) or a guest (GuestName and GuestEmail set). Exactly one of
// the two owners is present; the database enforces this with a CHECK
// constraint.
type Ticket struct {
	gorm.Model
	TicketNumber string       `json:"ticketNumber" gorm:"unique;not null"`
	Subject      string       `json:"subject" gorm:"not null"`
	Status       TicketStatus `json:"status" gorm:"not null;default:'new'"`
	UserID       *uint        `json:"userId,omitempty" gorm:"index"`
	User         *User        `json:"user,omitempty"`
	GuestName    string       `json:"guestName,omitempty"`
	GuestEmail   string       `json:"guestEmail,omitempty"`
	ResolvedAt   *time.Time   `json:"resolvedAt,omitempty"`
	Messages     []Message    `json:"messages,omitempty"`
}

// TableName specifies the table name
func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) IsGuest() bool {
	return t.UserID == nil
}

// CustomerName returns the registered user's name or the guest name.
func (t *Ticket) CustomerName() string {
	if t.User != nil {
		return t.User.Name
	}
	return t.GuestName
}

// CustomerEmail returns the registered user's email or the guest email.
func (t *Ticket) CustomerEmail() string {
	if t.User != nil {
		return t.User.Email
	}
	return t.GuestEmail
}
