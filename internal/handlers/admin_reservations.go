package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/internal/services"
	"github.com/rapcars/rental-backend/pkg/utils"
	"gorm.io/gorm"
)

const reservationPageSize = 10

// AdminListReservations lists reservations with search, status filter and
// per-status counts.
func AdminListReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Reservation{}).
			Joins("User").
			Joins("Car")

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				`reservations.reservation_number ILIKE ?
				OR "User".name ILIKE ? OR "User".email ILIKE ?
				OR "Car".make ILIKE ? OR "Car".model ILIKE ? OR "Car".license_plate ILIKE ?`,
				like, like, like, like, like, like)
		}
		if status := c.Query("status"); status != "" && status != "all" {
			query = query.Where("reservations.status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reservations"})
			return
		}

		page := pageParam(c)
		var reservations []models.Reservation
		if err := query.Order("reservations.created_at DESC").
			Limit(reservationPageSize).
			Offset((page - 1) * reservationPageSize).
			Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reservations"})
			return
		}

		c.JSON(200, gin.H{
			"reservations": reservations,
			"total":        total,
			"page":         page,
			"perPage":      reservationPageSize,
			"statuses":     reservationStatusCounts(db),
		})
	}
}

// AdminGetReservation returns one reservation with its payments.
func AdminGetReservation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation models.Reservation
		if err := db.Preload("User").
			Preload("Car").
			Preload("Payments").
			First(&reservation, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		c.JSON(200, gin.H{
			"reservation":       reservation,
			"statusMeta":        reservationStatusMeta(),
			"paymentStatusMeta": paymentStatusMeta(),
		})
	}
}

type ReservationUpdateInput struct {
	StartDate          string  `json:"startDate" binding:"required"`
	EndDate            string  `json:"endDate" binding:"required"`
	PickupTime         string  `json:"pickupTime"`
	ReturnTime         string  `json:"returnTime"`
	PickupLocation     string  `json:"pickupLocation" binding:"max=255"`
	ReturnLocation     string  `json:"returnLocation" binding:"max=255"`
	DiscountAmount     float64 `json:"discountAmount" binding:"min=0"`
	Notes              string  `json:"notes"`
	Status             string  `json:"status" binding:"required"`
	CancellationReason string  `json:"cancellationReason"`
}

// AdminUpdateReservation edits dates, locations, discount and status.
// Pricing is recomputed from the stored daily-rate snapshot, and the
// availability check excludes the reservation being edited.
func AdminUpdateReservation(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation models.Reservation
		if err := db.Preload("Car").First(&reservation, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		var input ReservationUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		startDate, err := parseDate(input.StartDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid start date"})
			return
		}
		endDate, err := parseDate(input.EndDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid end date"})
			return
		}
		if endDate.Before(startDate) {
			c.JSON(400, gin.H{"error": "End date must be on or after start date"})
			return
		}

		newStatus := models.ReservationStatus(input.Status)
		if !newStatus.IsValid() {
			c.JSON(400, gin.H{"error": "Invalid status"})
			return
		}
		if !reservation.Status.CanTransitionTo(newStatus) {
			c.JSON(409, gin.H{"error": "Invalid status transition from " + string(reservation.Status)})
			return
		}

		// A blocking reservation must not collide with its neighbours once
		// moved; its own row is excluded from the check.
		if newStatus.BlocksAvailability() {
			available, err := reservation.Car.IsAvailable(db, startDate, endDate, reservation.ID)
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to check availability"})
				return
			}
			if !available {
				c.JSON(409, gin.H{"error": "Car is already reserved for the selected dates"})
				return
			}
		}

		statusChanged := reservation.Status != newStatus

		reservation.StartDate = startDate
		reservation.EndDate = endDate
		if input.PickupTime != "" {
			reservation.PickupTime = input.PickupTime
		}
		if input.ReturnTime != "" {
			reservation.ReturnTime = input.ReturnTime
		}
		reservation.PickupLocation = input.PickupLocation
		reservation.ReturnLocation = input.ReturnLocation
		reservation.Notes = input.Notes
		reservation.Status = newStatus

		price := utils.CalculateRentalPrice(reservation.DailyRate, startDate, endDate, input.DiscountAmount, utils.TaxRate())
		reservation.TotalDays = price.Days
		reservation.Subtotal = price.Subtotal
		reservation.TaxAmount = price.Tax
		reservation.DiscountAmount = price.Discount
		reservation.TotalAmount = price.Total

		if newStatus == models.ReservationStatusCancelled {
			reservation.CancellationReason = input.CancellationReason
			if reservation.CancelledAt == nil {
				now := time.Now()
				reservation.CancelledAt = &now
			}
		} else {
			reservation.CancellationReason = ""
			reservation.CancelledAt = nil
		}

		if err := db.Save(&reservation).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update reservation"})
			return
		}

		if statusChanged {
			hub.PushToUser(reservation.UserID, "reservation.status_changed", gin.H{
				"reservationId":     reservation.ID,
				"reservationNumber": reservation.ReservationNumber,
				"status":            reservation.Status,
			})
			go services.PublishReservationEvent(c.Copy(), services.ReservationEvent{
				ReservationID:     reservation.ID,
				ReservationNumber: reservation.ReservationNumber,
				CarID:             reservation.CarID,
				UserID:            reservation.UserID,
				Status:            string(reservation.Status),
				TotalAmount:       reservation.TotalAmount,
				OccurredAt:        time.Now().UTC().Format(time.RFC3339),
			})
		}

		c.JSON(200, reservation)
	}
}

// reservationStatusCounts builds filter metadata with per-status counts.
func reservationStatusCounts(db *gorm.DB) []gin.H {
	var rows []struct {
		Status models.ReservationStatus
		Count  int64
	}
	db.Model(&models.Reservation{}).Select("status, count(*) as count").Group("status").Scan(&rows)

	counts := make(map[models.ReservationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	meta := make([]gin.H, 0, len(models.AllReservationStatuses))
	for _, status := range models.AllReservationStatuses {
		meta = append(meta, gin.H{
			"value": status,
			"label": status.Label(),
			"color": status.Color(),
			"count": counts[status],
		})
	}
	return meta
}
