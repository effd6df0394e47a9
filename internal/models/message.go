package models

import "gorm.io/gorm"

// Message is one entry in a support ticket thread, ordered by creation time.
type Message struct {
	gorm.Model
	TicketID uint   `json:"ticketId" gorm:"not null;index"`
	Body     string `json:"message" gorm:"column:message;not null"`
	IsAdmin  bool   `json:"isAdmin" gorm:"not null;default:false"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "messages"
}
