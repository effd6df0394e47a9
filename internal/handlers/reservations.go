package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// GetClientReservations lists the authenticated user's reservations.
func GetClientReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var reservations []models.Reservation
		if err := db.Where("user_id = ?", userId).
			Preload("Car").
			Order("created_at DESC").
			Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reservations"})
			return
		}

		c.JSON(200, reservations)
	}
}

// GetReservation returns one reservation with car, user and payments.
// Clients can only see their own reservations.
func GetReservation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var reservation models.Reservation
		if err := db.Preload("Car").
			Preload("User").
			Preload("Payments").
			First(&reservation, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		if reservation.UserID != userId && c.GetString("role") != "admin" {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, gin.H{
			"reservation": reservation,
			"statusMeta":  reservationStatusMeta(),
		})
	}
}

// GetReservationQRCode renders the pickup pass for a reservation as a PNG
// QR code. The encoded payload is what the counter scans at pickup.
func GetReservationQRCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var reservation models.Reservation
		if err := db.Preload("Car").First(&reservation, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		if reservation.UserID != userId && c.GetString("role") != "admin" {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		payload := fmt.Sprintf("%s|%s|%s|%s",
			reservation.ReservationNumber,
			reservation.Car.LicensePlate,
			reservation.StartDate.Format(dateLayout),
			reservation.EndDate.Format(dateLayout),
		)

		png, err := qrcode.Encode(payload, qrcode.Medium, 256)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate QR code"})
			return
		}

		c.Data(200, "image/png", png)
	}
}

// reservationStatusMeta builds the label/color lookup the frontend renders
// status badges from.
func reservationStatusMeta() []gin.H {
	meta := make([]gin.H, 0, len(models.AllReservationStatuses))
	for _, status := range models.AllReservationStatuses {
		meta = append(meta, gin.H{
			"value": status,
			"label": status.Label(),
			"color": status.Color(),
		})
	}
	return meta
}
