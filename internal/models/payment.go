package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusCompleted         PaymentStatus = "completed"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

var AllPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusCancelled,
	PaymentStatusRefunded,
	PaymentStatusPartiallyRefunded,
}

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusCompleted:
		return "Completed"
	case PaymentStatusFailed:
		return "Failed"
	case PaymentStatusCancelled:
		return "Cancelled"
	case PaymentStatusRefunded:
		return "Refunded"
	case PaymentStatusPartiallyRefunded:
		return "Partially Refunded"
	}
	return string(s)
}

func (s PaymentStatus) Color() string {
	switch s {
	case PaymentStatusPending:
		return "#FFC107" // yellow
	case PaymentStatusCompleted:
		return "#28A745" // green
	case PaymentStatusFailed:
		return "#DC3545" // red
	case PaymentStatusCancelled:
		return "#6C757D" // gray
	case PaymentStatusRefunded:
		return "#007bff" // blue
	case PaymentStatusPartiallyRefunded:
		return "#fd7e14" // orange
	}
	return "#6C757D"
}

func (s PaymentStatus) IsValid() bool {
	for _, known := range AllPaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

var AllPaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodPaypal,
	PaymentMethodStripe,
	PaymentMethodBankTransfer,
	PaymentMethodCash,
}

func (m PaymentMethod) IsValid() bool {
	for _, known := range AllPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

type Payment struct {
	gorm.Model
	PaymentNumber   string        `json:"paymentNumber" gorm:"unique;not null"`
	ReservationID   uint          `json:"reservationId" gorm:"not null;index:idx_payments_reservation_status"`
	Reservation     *Reservation  `json:"reservation,omitempty"`
	UserID          uint          `json:"userId" gorm:"not null;index:idx_payments_user_status"`
	User            *User         `json:"user,omitempty"`
	Amount          float64       `json:"amount" gorm:"not null"`
	Currency        string        `json:"currency" gorm:"size:3;not null"`
	Method          PaymentMethod `json:"method" gorm:"column:payment_method;not null;default:'credit_card'"`
	Status          PaymentStatus `json:"status" gorm:"not null;default:'pending';index:idx_payments_reservation_status;index:idx_payments_user_status"`
	TransactionID   string        `json:"transactionId,omitempty" gorm:"index"`
	GatewayResponse string        `json:"-"`
	GatewayData     string        `json:"-" gorm:"type:jsonb;default:null"`
	Notes           string        `json:"notes,omitempty"`
	ProcessedAt     *time.Time    `json:"processedAt,omitempty"`
	RefundedAmount  float64       `json:"refundedAmount" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// NetAmount returns the amount minus what was refunded.
func (p *Payment) NetAmount() float64 {
	return p.Amount - p.RefundedAmount
}

// CanBeRefunded reports whether any refundable balance remains on a
// completed payment.
func (p *Payment) CanBeRefunded() bool {
	return p.Status == PaymentStatusCompleted && p.RefundedAmount < p.Amount
}
