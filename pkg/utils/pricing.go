package utils

import (
	"math"
	"os"
	"strconv"
	"time"
)

// PriceBreakdown contains the calculated rental cost and its parts.
type PriceBreakdown struct {
	Days      int     `json:"days"`
	DailyRate float64 `json:"dailyRate"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}

// DefaultTaxRate applies when TAX_RATE is not configured.
const DefaultTaxRate = 0.07

// TaxRate returns the configured tax rate for rental pricing.
func TaxRate() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		return DefaultTaxRate
	}
	return rate
}

// CalculateRentalPrice computes the cost of renting a car at dailyRate for
// the given date range. The minimum charge is one day, so same-day bookings
// still pay a full day. Rounding happens at the tax step only, to 2 decimals
// half up; subtotal and total stay exact multiples of the inputs.
func CalculateRentalPrice(dailyRate float64, startDate, endDate time.Time, discount, taxRate float64) PriceBreakdown {
	days := WholeDaysBetween(startDate, endDate)
	if days < 1 {
		days = 1
	}

	// Guard against a negative stored rate
	rate := math.Abs(dailyRate)

	subtotal := rate * float64(days)
	tax := math.Round(subtotal*taxRate*100) / 100
	total := subtotal + tax - discount

	return PriceBreakdown{
		Days:      days,
		DailyRate: rate,
		Subtotal:  subtotal,
		Tax:       tax,
		Discount:  discount,
		Total:     total,
	}
}

// WholeDaysBetween returns the number of whole calendar days from start to
// end, ignoring time of day. 2025-01-01 to 2025-01-03 is 2 days.
func WholeDaysBetween(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay) / (24 * time.Hour))
}
