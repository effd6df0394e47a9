package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/pkg/utils"
	"gorm.io/gorm"
)

// nextTicketNumber derives a sequential TICK reference from the most recent
// ticket, soft-deleted rows included.
func nextTicketNumber(db *gorm.DB) string {
	var last models.Ticket
	if err := db.Unscoped().Order("id DESC").First(&last).Error; err != nil {
		return utils.TicketNumber(0)
	}
	return utils.TicketNumber(last.ID)
}

// GuestContact opens a support ticket from the public contact form.
func GuestContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name" binding:"required,max=255"`
			Email   string `json:"email" binding:"required,email,max=255"`
			Subject string `json:"subject" binding:"required,max=255"`
			Message string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ticket := models.Ticket{
			TicketNumber: nextTicketNumber(db),
			Subject:      input.Subject,
			Status:       models.TicketStatusNew,
			GuestName:    input.Name,
			GuestEmail:   input.Email,
		}

		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to send message"})
			return
		}

		message := models.Message{
			TicketID: ticket.ID,
			Body:     input.Message,
			IsAdmin:  false,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to send message"})
			return
		}

		c.JSON(201, gin.H{
			"message":      "Message sent successfully!",
			"ticketNumber": ticket.TicketNumber,
		})
	}
}

// CreateTicket opens a support ticket for the authenticated user.
func CreateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Subject string `json:"subject" binding:"required,max=255"`
			Message string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ticket := models.Ticket{
			TicketNumber: nextTicketNumber(db),
			Subject:      input.Subject,
			Status:       models.TicketStatusNew,
			UserID:       &userId,
		}

		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create ticket"})
			return
		}

		message := models.Message{
			TicketID: ticket.ID,
			Body:     input.Message,
			IsAdmin:  false,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create ticket"})
			return
		}

		c.JSON(201, ticket)
	}
}

// GetClientTickets lists the authenticated user's tickets.
func GetClientTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var tickets []models.Ticket
		if err := db.Where("user_id = ?", userId).
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tickets"})
			return
		}

		c.JSON(200, tickets)
	}
}

// GetTicket returns one ticket with its message thread in creation order.
func GetTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var ticket models.Ticket
		if err := db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).First(&ticket, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ticket not found"})
			return
		}

		if ticket.UserID == nil || *ticket.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, ticket)
	}
}

// ReplyTicket appends a customer message to the thread.
func ReplyTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Message string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var ticket models.Ticket
		if err := db.First(&ticket, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ticket not found"})
			return
		}

		if ticket.UserID == nil || *ticket.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if ticket.Status == models.TicketStatusClosed {
			c.JSON(409, gin.H{"error": "Ticket is closed"})
			return
		}

		message := models.Message{
			TicketID: ticket.ID,
			Body:     input.Message,
			IsAdmin:  false,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to send reply"})
			return
		}

		c.JSON(201, message)
	}
}
