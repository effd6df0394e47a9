package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/internal/services"
	"gorm.io/gorm"
)

const ticketPageSize = 10

// AdminListTickets lists support tickets, split between customer tickets
// (owned by a registered user) and guest tickets from the contact form.
func AdminListTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketType := c.DefaultQuery("type", "customer")

		query := db.Model(&models.Ticket{})
		if ticketType == "customer" {
			query = query.Where("user_id IS NOT NULL")
		} else {
			query = query.Where("user_id IS NULL")
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			if ticketType == "customer" {
				query = query.Joins("User").
					Where(`tickets.subject ILIKE ? OR "User".name ILIKE ? OR "User".email ILIKE ?`, like, like, like)
			} else {
				query = query.Where("subject ILIKE ? OR guest_name ILIKE ? OR guest_email ILIKE ?", like, like, like)
			}
		}
		if status := c.Query("status"); status != "" && status != "all" {
			query = query.Where("tickets.status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tickets"})
			return
		}

		page := pageParam(c)
		var tickets []models.Ticket
		if err := query.Preload("User").
			Order("tickets.created_at DESC").
			Limit(ticketPageSize).
			Offset((page - 1) * ticketPageSize).
			Find(&tickets).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tickets"})
			return
		}

		c.JSON(200, gin.H{
			"tickets":      tickets,
			"total":        total,
			"page":         page,
			"perPage":      ticketPageSize,
			"statusCounts": ticketStatusCounts(db),
			"statuses":     ticketStatusMeta(),
		})
	}
}

// AdminGetTicket returns one ticket with its thread in creation order.
func AdminGetTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ticket models.Ticket
		if err := db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).Preload("User").First(&ticket, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ticket not found"})
			return
		}

		c.JSON(200, gin.H{
			"ticket":        ticket,
			"isGuest":       ticket.IsGuest(),
			"customerName":  ticket.CustomerName(),
			"customerEmail": ticket.CustomerEmail(),
		})
	}
}

// AdminReplyTicket appends an admin message and moves the ticket to
// in_progress. Guest tickets have no reply channel.
func AdminReplyTicket(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Message string `json:"message" binding:"required,min=1"`
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

		if ticket.IsGuest() {
			c.JSON(409, gin.H{"error": "Cannot reply to guest tickets"})
			return
		}

		message := models.Message{
			TicketID: ticket.ID,
			Body:     input.Message,
			IsAdmin:  true,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to send reply"})
			return
		}

		ticket.Status = models.TicketStatusInProgress
		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update ticket"})
			return
		}

		// Live update for the customer if they are connected
		hub.PushToUser(*ticket.UserID, "support.reply", gin.H{
			"ticketId":     ticket.ID,
			"ticketNumber": ticket.TicketNumber,
			"message":      message.Body,
		})

		c.JSON(201, message)
	}
}

// AdminCloseTicket closes a ticket and stamps its resolution time.
func AdminCloseTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ticket models.Ticket
		if err := db.First(&ticket, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ticket not found"})
			return
		}

		now := time.Now()
		ticket.Status = models.TicketStatusClosed
		ticket.ResolvedAt = &now
		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to close ticket"})
			return
		}

		c.JSON(200, ticket)
	}
}

// ticketStatusCounts counts tickets per status for customer and guest
// tickets separately.
func ticketStatusCounts(db *gorm.DB) gin.H {
	count := func(owned bool, status models.TicketStatus) int64 {
		query := db.Model(&models.Ticket{})
		if owned {
			query = query.Where("user_id IS NOT NULL")
		} else {
			query = query.Where("user_id IS NULL")
		}
		if status != "" {
			query = query.Where("status = ?", status)
		}
		var n int64
		query.Count(&n)
		return n
	}

	counts := func(owned bool) gin.H {
		result := gin.H{"all": count(owned, "")}
		for _, status := range models.AllTicketStatuses {
			result[string(status)] = count(owned, status)
		}
		return result
	}

	return gin.H{
		"customer": counts(true),
		"guest":    counts(false),
	}
}

func ticketStatusMeta() []gin.H {
	meta := make([]gin.H, 0, len(models.AllTicketStatuses))
	for _, status := range models.AllTicketStatuses {
		meta = append(meta, gin.H{
			"value": status,
			"label": status.Label(),
			"color": status.Color(),
		})
	}
	return meta
}
