package handlers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/pkg/utils"
	"gorm.io/gorm"
)

const paymentPageSize = 10

func defaultCurrency() string {
	if code := os.Getenv("CURRENCY_CODE"); code != "" {
		return code
	}
	return "USD"
}

// AdminListPayments lists payments with user and reservation references.
func AdminListPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Payment{})
		if status := c.Query("status"); status != "" && status != "all" {
			query = query.Where("status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch payments"})
			return
		}

		page := pageParam(c)
		var payments []models.Payment
		if err := query.Preload("User").
			Preload("Reservation").
			Order("created_at DESC").
			Limit(paymentPageSize).
			Offset((page - 1) * paymentPageSize).
			Find(&payments).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(200, gin.H{
			"payments": payments,
			"total":    total,
			"page":     page,
			"perPage":  paymentPageSize,
			"statuses": paymentStatusMeta(),
		})
	}
}

type PaymentInput struct {
	ReservationID uint    `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
	TransactionID string  `json:"transactionId"`
	Notes         string  `json:"notes"`
	Completed     bool    `json:"completed"`
}

// AdminCreatePayment records a payment against a reservation. Multiple
// payments per reservation are allowed (retries, refunds).
func AdminCreatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		method := models.PaymentMethod(input.Method)
		if !method.IsValid() {
			c.JSON(400, gin.H{"error": "Invalid payment method"})
			return
		}

		var reservation models.Reservation
		if err := db.First(&reservation, input.ReservationID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		payment := models.Payment{
			PaymentNumber: utils.PaymentNumber(),
			ReservationID: reservation.ID,
			UserID:        reservation.UserID,
			Amount:        input.Amount,
			Currency:      defaultCurrency(),
			Method:        method,
			Status:        models.PaymentStatusPending,
			TransactionID: input.TransactionID,
			Notes:         input.Notes,
		}

		if input.Completed {
			now := time.Now()
			payment.Status = models.PaymentStatusCompleted
			payment.ProcessedAt = &now
		}

		if err := db.Create(&payment).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to record payment"})
			return
		}

		c.JSON(201, payment)
	}
}

type RefundInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// AdminRefundPayment refunds part or all of a completed payment. The
// refunded total can never exceed the payment amount.
func AdminRefundPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment models.Payment
		if err := db.First(&payment, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Payment not found"})
			return
		}

		var input RefundInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !payment.CanBeRefunded() {
			c.JSON(409, gin.H{"error": "Payment cannot be refunded"})
			return
		}
		if input.Amount > payment.NetAmount() {
			c.JSON(400, gin.H{"error": "Refund exceeds remaining payment amount"})
			return
		}

		payment.RefundedAmount += input.Amount
		if payment.RefundedAmount >= payment.Amount {
			payment.Status = models.PaymentStatusRefunded
		} else {
			payment.Status = models.PaymentStatusPartiallyRefunded
		}
		if input.Notes != "" {
			payment.Notes = input.Notes
		}

		if err := db.Save(&payment).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to refund payment"})
			return
		}

		c.JSON(200, payment)
	}
}

// paymentStatusMeta builds the label/color lookup for payment badges.
func paymentStatusMeta() []gin.H {
	meta := make([]gin.H, 0, len(models.AllPaymentStatuses))
	for _, status := range models.AllPaymentStatuses {
		meta = append(meta, gin.H{
			"value": status,
			"label": status.Label(),
			"color": status.Color(),
		})
	}
	return meta
}
