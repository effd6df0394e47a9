package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusReserved    CarStatus = "reserved"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
	CarStatusCleaning    CarStatus = "cleaning"
	CarStatusUnavailable CarStatus = "unavailable"
	CarStatusRetired     CarStatus = "retired"
)

// AllCarStatuses lists every car status in display order.
var AllCarStatuses = []CarStatus{
	CarStatusAvailable,
	CarStatusReserved,
	CarStatusRented,
	CarStatusMaintenance,
	CarStatusCleaning,
	CarStatusUnavailable,
	CarStatusRetired,
}

func (s CarStatus) Label() string {
	switch s {
	case CarStatusAvailable:
		return "Available"
	case CarStatusReserved:
		return "Reserved"
	case CarStatusRented:
		return "Rented"
	case CarStatusMaintenance:
		return "Maintenance"
	case CarStatusCleaning:
		return "Cleaning"
	case CarStatusUnavailable:
		return "Unavailable"
	case CarStatusRetired:
		return "Retired"
	}
	return string(s)
}

func (s CarStatus) Color() string {
	switch s {
	case CarStatusAvailable:
		return "#10B981" // Green-500
	case CarStatusReserved:
		return "#3B82F6" // Blue-500
	case CarStatusRented:
		return "#F59E0B" // Amber-500
	case CarStatusMaintenance:
		return "#EF4444" // Red-500
	case CarStatusCleaning:
		return "#8B5CF6" // Violet-500
	case CarStatusUnavailable:
		return "#6B7280" // Gray-500
	case CarStatusRetired:
		return "#4B5563" // Gray-600
	}
	return "#6B7280"
}

func (s CarStatus) IsValid() bool {
	for _, known := range AllCarStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type CarColor string

const (
	CarColorWhite  CarColor = "white"
	CarColorBlack  CarColor = "black"
	CarColorSilver CarColor = "silver"
	CarColorGray   CarColor = "gray"
	CarColorRed    CarColor = "red"
	CarColorBlue   CarColor = "blue"
	CarColorGreen  CarColor = "green"
	CarColorYellow CarColor = "yellow"
	CarColorOrange CarColor = "orange"
	CarColorBrown  CarColor = "brown"
)

var AllCarColors = []CarColor{
	CarColorWhite, CarColorBlack, CarColorSilver, CarColorGray, CarColorRed,
	CarColorBlue, CarColorGreen, CarColorYellow, CarColorOrange, CarColorBrown,
}

// Hex returns the swatch color used by the frontend for this paint color.
func (c CarColor) Hex() string {
	switch c {
	case CarColorWhite:
		return "#F9FAFB"
	case CarColorBlack:
		return "#1F2937"
	case CarColorSilver:
		return "#E5E7EB"
	case CarColorGray:
		return "#9CA3AF"
	case CarColorRed:
		return "#FEE2E2"
	case CarColorBlue:
		return "#DBEAFE"
	case CarColorGreen:
		return "#DCFCE7"
	case CarColorYellow:
		return "#FEF9C3"
	case CarColorOrange:
		return "#FFEDD5"
	case CarColorBrown:
		return "#F3E8D2"
	}
	return "#F9FAFB"
}

func (c CarColor) IsValid() bool {
	for _, known := range AllCarColors {
		if c == known {
			return true
		}
	}
	return false
}

type FuelType string

const (
	FuelTypeGasoline     FuelType = "gasoline"
	FuelTypeDiesel       FuelType = "diesel"
	FuelTypeHybrid       FuelType = "hybrid"
	FuelTypeElectric     FuelType = "electric"
	FuelTypePluginHybrid FuelType = "plug-in hybrid"
	FuelTypeLPG          FuelType = "lpg"
	FuelTypeCNG          FuelType = "cng"
	FuelTypeHydrogen     FuelType = "hydrogen"
)

var AllFuelTypes = []FuelType{
	FuelTypeGasoline, FuelTypeDiesel, FuelTypeHybrid, FuelTypeElectric,
	FuelTypePluginHybrid, FuelTypeLPG, FuelTypeCNG, FuelTypeHydrogen,
}

func (f FuelType) IsValid() bool {
	for _, known := range AllFuelTypes {
		if f == known {
			return true
		}
	}
	return false
}

type Car struct {
	gorm.Model
	Make         string    `json:"make" gorm:"not null"`
	CarModel     string    `json:"model" gorm:"column:model;not null"`
	Year         int       `json:"year" gorm:"not null"`
	LicensePlate string    `json:"licensePlate" gorm:"unique;not null"`
	Color        CarColor  `json:"color" gorm:"not null;default:'white'"`
	PricePerDay  float64   `json:"pricePerDay" gorm:"not null"`
	Mileage      int       `json:"mileage" gorm:"not null"`
	Transmission string    `json:"transmission" gorm:"not null"`
	Seats        int       `json:"seats" gorm:"not null"`
	FuelType     FuelType  `json:"fuelType" gorm:"not null;default:'gasoline'"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Status       CarStatus `json:"status" gorm:"not null;default:'available'"`
}

// TableName specifies the table name
func (Car) TableName() string {
	return "cars"
}

// FullName returns the display name (year + make + model).
func (c *Car) FullName() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.CarModel)
}

// DateRangesOverlap reports whether [aStart,aEnd] intersects [bStart,bEnd].
// Both ranges are inclusive and date-granular.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// IsAvailable checks whether the car has no confirmed or active reservation
// overlapping the requested date range. Pending, cancelled, completed and
// no-show reservations never block. excludeReservationID skips one
// reservation when editing; pass 0 to skip none. Read-only.
func (c *Car) IsAvailable(db *gorm.DB, startDate, endDate time.Time, excludeReservationID uint) (bool, error) {
	query := db.Model(&Reservation{}).
		Where("car_id = ?", c.ID).
		Where("status IN ?", []ReservationStatus{ReservationStatusConfirmed, ReservationStatusActive}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	if excludeReservationID != 0 {
		query = query.Where("id != ?", excludeReservationID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
