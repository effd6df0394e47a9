package utils

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateRentalPrice(t *testing.T) {
	got := CalculateRentalPrice(100.00, date("2025-01-01"), date("2025-01-03"), 0, 0.07)

	if got.Days != 2 {
		t.Errorf("Days = %v, want %v", got.Days, 2)
	}
	if got.Subtotal != 200.00 {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, 200.00)
	}
	if got.Tax != 14.00 {
		t.Errorf("Tax = %v, want %v", got.Tax, 14.00)
	}
	if got.Total != 214.00 {
		t.Errorf("Total = %v, want %v", got.Total, 214.00)
	}
}

func TestCalculateRentalPriceWithDiscount(t *testing.T) {
	got := CalculateRentalPrice(100.00, date("2025-01-01"), date("2025-01-03"), 20, 0.07)

	if got.Discount != 20.00 {
		t.Errorf("Discount = %v, want %v", got.Discount, 20.00)
	}
	if got.Total != 194.00 {
		t.Errorf("Total = %v, want %v", got.Total, 194.00)
	}
}

func TestCalculateRentalPriceSameDayChargesOneDay(t *testing.T) {
	got := CalculateRentalPrice(80.00, date("2025-03-10"), date("2025-03-10"), 0, 0.07)

	if got.Days != 1 {
		t.Errorf("Days = %v, want %v", got.Days, 1)
	}
	if got.Subtotal != 80.00 {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, 80.00)
	}
}

func TestCalculateRentalPriceNegativeRate(t *testing.T) {
	got := CalculateRentalPrice(-50.00, date("2025-01-01"), date("2025-01-04"), 0, 0.07)

	if got.DailyRate != 50.00 {
		t.Errorf("DailyRate = %v, want %v", got.DailyRate, 50.00)
	}
	if got.Subtotal != 150.00 {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, 150.00)
	}
}

func TestCalculateRentalPriceTaxRounding(t *testing.T) {
	// 33.33 * 3 = 99.99, tax at 7% = 6.9993 which rounds to 7.00
	got := CalculateRentalPrice(33.33, date("2025-01-01"), date("2025-01-04"), 0, 0.07)

	if got.Tax != 7.00 {
		t.Errorf("Tax = %v, want %v", got.Tax, 7.00)
	}
	if got.Total != got.Subtotal+got.Tax {
		t.Errorf("Total = %v, want %v", got.Total, got.Subtotal+got.Tax)
	}
}

func TestWholeDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"two nights", "2025-01-01", "2025-01-03", 2},
		{"same day", "2025-01-01", "2025-01-01", 0},
		{"one night", "2025-01-01", "2025-01-02", 1},
		{"across month", "2025-01-30", "2025-02-02", 3},
		{"reversed", "2025-01-03", "2025-01-01", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WholeDaysBetween(date(tt.start), date(tt.end))
			if got != tt.want {
				t.Errorf("WholeDaysBetween(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestWholeDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 1, 3, 0, 1, 0, 0, time.UTC)

	if got := WholeDaysBetween(start, end); got != 2 {
		t.Errorf("WholeDaysBetween = %v, want %v", got, 2)
	}
}

func TestTaxRateDefault(t *testing.T) {
	t.Setenv("TAX_RATE", "")

	if got := TaxRate(); got != DefaultTaxRate {
		t.Errorf("TaxRate() = %v, want %v", got, DefaultTaxRate)
	}
}

func TestTaxRateFromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.21")

	if got := TaxRate(); got != 0.21 {
		t.Errorf("TaxRate() = %v, want %v", got, 0.21)
	}
}

func TestTaxRateInvalidFallsBack(t *testing.T) {
	t.Setenv("TAX_RATE", "lots")

	if got := TaxRate(); got != DefaultTaxRate {
		t.Errorf("TaxRate() = %v, want %v", got, DefaultTaxRate)
	}
}
