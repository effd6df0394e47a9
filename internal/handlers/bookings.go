package handlers

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/models"
	"github.com/rapcars/rental-backend/internal/services"
	"github.com/rapcars/rental-backend/pkg/utils"
	"gorm.io/gorm"
)

type BookingInput struct {
	CarID          uint   `json:"carId" binding:"required"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	PickupLocation string `json:"pickupLocation" binding:"required,max=255"`
	ReturnLocation string `json:"returnLocation" binding:"required,max=255"`
}

var errCarUnavailable = errors.New("car is not available for the selected dates")

// CreateBooking creates a reservation for the authenticated user.
//
// The availability check and insert are not atomic by default, matching how
// the booking flow has always behaved; two concurrent bookings of the same
// car can both pass the check. Set ATOMIC_BOOKING=true to rerun the check
// and insert inside one serializable transaction.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input BookingInput
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

		var car models.Car
		if err := db.First(&car, input.CarID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		if car.Status != models.CarStatusAvailable {
			c.JSON(409, gin.H{"error": "This car is not available for booking"})
			return
		}

		// One reservation per user per car
		var existing int64
		db.Model(&models.Reservation{}).
			Where("car_id = ? AND user_id = ?", car.ID, userId).
			Count(&existing)
		if existing > 0 {
			c.JSON(409, gin.H{"error": "You have already booked this car"})
			return
		}

		reservation, err := bookCar(db, &car, userId, startDate, endDate, input.PickupLocation, input.ReturnLocation)
		if errors.Is(err, errCarUnavailable) {
			c.JSON(409, gin.H{"error": "This car is already reserved for the selected dates"})
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		// Lifecycle event for downstream consumers; never fails the booking
		go services.PublishReservationEvent(c.Copy(), services.ReservationEvent{
			ReservationID:     reservation.ID,
			ReservationNumber: reservation.ReservationNumber,
			CarID:             reservation.CarID,
			UserID:            reservation.UserID,
			Status:            string(reservation.Status),
			TotalAmount:       reservation.TotalAmount,
			OccurredAt:        time.Now().UTC().Format(time.RFC3339),
		})

		c.JSON(201, reservation)
	}
}

// bookCar runs the availability check, pricing and insert. With
// ATOMIC_BOOKING=true the whole sequence runs in a serializable transaction.
func bookCar(db *gorm.DB, car *models.Car, userId uint, startDate, endDate time.Time, pickup, ret string) (*models.Reservation, error) {
	create := func(tx *gorm.DB) (*models.Reservation, error) {
		available, err := car.IsAvailable(tx, startDate, endDate, 0)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, errCarUnavailable
		}

		price := utils.CalculateRentalPrice(car.PricePerDay, startDate, endDate, 0, utils.TaxRate())

		reservation := models.Reservation{
			ReservationNumber: utils.ReservationNumber(),
			UserID:            userId,
			CarID:             car.ID,
			StartDate:         startDate,
			EndDate:           endDate,
			PickupTime:        "09:00",
			ReturnTime:        "18:00",
			PickupLocation:    pickup,
			ReturnLocation:    ret,
			TotalDays:         price.Days,
			DailyRate:         price.DailyRate,
			Subtotal:          price.Subtotal,
			TaxAmount:         price.Tax,
			DiscountAmount:    price.Discount,
			TotalAmount:       price.Total,
			Status:            models.ReservationStatusPending,
		}

		if err := tx.Create(&reservation).Error; err != nil {
			return nil, err
		}
		return &reservation, nil
	}

	if os.Getenv("ATOMIC_BOOKING") != "true" {
		return create(db)
	}

	var reservation *models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			return err
		}
		var err error
		reservation, err = create(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}
