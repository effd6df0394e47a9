package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"gorm.io/gorm"
)

const clientPageSize = 10

// AdminListClients lists client accounts with search and active/suspended
// counts.
func AdminListClients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.User{}).Where("role = ?", models.UserRoleClient)

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
		}
		switch c.Query("status") {
		case "active":
			query = query.Where("is_active = ?", true)
		case "suspended":
			query = query.Where("is_active = ?", false)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch clients"})
			return
		}

		page := pageParam(c)
		var clients []models.User
		if err := query.Order("name").
			Limit(clientPageSize).
			Offset((page - 1) * clientPageSize).
			Find(&clients).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch clients"})
			return
		}

		var active, suspended int64
		db.Model(&models.User{}).Where("role = ? AND is_active = ?", models.UserRoleClient, true).Count(&active)
		db.Model(&models.User{}).Where("role = ? AND is_active = ?", models.UserRoleClient, false).Count(&suspended)

		c.JSON(200, gin.H{
			"clients": clients,
			"total":   total,
			"page":    page,
			"perPage": clientPageSize,
			"statuses": gin.H{
				"active":    gin.H{"label": "Active", "count": active, "color": "#10B981"},
				"suspended": gin.H{"label": "Suspended", "count": suspended, "color": "#EF4444"},
			},
		})
	}
}

// AdminGetClient returns one client with reservation/payment stats.
func AdminGetClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var client models.User
		if err := db.Where("role = ?", models.UserRoleClient).
			First(&client, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Client not found"})
			return
		}

		var reservationCount, paymentCount int64
		db.Model(&models.Reservation{}).Where("user_id = ?", client.ID).Count(&reservationCount)
		db.Model(&models.Payment{}).Where("user_id = ?", client.ID).Count(&paymentCount)

		var totalSpent float64
		db.Model(&models.Payment{}).
			Where("user_id = ? AND status = ?", client.ID, models.PaymentStatusCompleted).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalSpent)

		var reservations []models.Reservation
		db.Where("user_id = ?", client.ID).
			Preload("Car").
			Order("created_at DESC").
			Limit(clientPageSize).
			Find(&reservations)

		var payments []models.Payment
		db.Where("user_id = ?", client.ID).
			Preload("Reservation").
			Order("created_at DESC").
			Limit(clientPageSize).
			Find(&payments)

		c.JSON(200, gin.H{
			"client": gin.H{
				"id":        client.ID,
				"name":      client.Name,
				"email":     client.Email,
				"isActive":  client.IsActive,
				"createdAt": client.CreatedAt,
			},
			"stats": gin.H{
				"totalReservations": reservationCount,
				"totalPayments":     paymentCount,
				"totalSpent":        totalSpent,
			},
			"reservations": reservations,
			"payments":     payments,
		})
	}
}

// AdminSuspendClient deactivates a client account.
func AdminSuspendClient(db *gorm.DB) gin.HandlerFunc {
	return setClientActive(db, false, "Client suspended successfully")
}

// AdminActivateClient reactivates a client account.
func AdminActivateClient(db *gorm.DB) gin.HandlerFunc {
	return setClientActive(db, true, "Client activated successfully")
}

func setClientActive(db *gorm.DB, active bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var client models.User
		if err := db.Where("role = ?", models.UserRoleClient).
			First(&client, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Client not found"})
			return
		}

		client.IsActive = active
		if err := db.Save(&client).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update client"})
			return
		}

		c.JSON(200, gin.H{"message": message})
	}
}
