package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRangesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"identical", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true},
		{"contained", "2025-01-02", "2025-01-03", "2025-01-01", "2025-01-05", true},
		{"containing", "2025-01-01", "2025-01-05", "2025-01-02", "2025-01-03", true},
		{"partial front", "2024-12-30", "2025-01-02", "2025-01-01", "2025-01-05", true},
		{"partial back", "2025-01-04", "2025-01-08", "2025-01-01", "2025-01-05", true},
		{"shared end boundary", "2025-01-05", "2025-01-08", "2025-01-01", "2025-01-05", true},
		{"shared start boundary", "2024-12-28", "2025-01-01", "2025-01-01", "2025-01-05", true},
		{"before", "2024-12-20", "2024-12-31", "2025-01-01", "2025-01-05", false},
		{"after", "2025-01-06", "2025-01-10", "2025-01-01", "2025-01-05", false},
		{"single day inside", "2025-01-03", "2025-01-03", "2025-01-01", "2025-01-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateRangesOverlap(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			if got != tt.want {
				t.Errorf("DateRangesOverlap(%s..%s, %s..%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestDateRangesOverlapIsSymmetric(t *testing.T) {
	aStart, aEnd := day("2025-01-01"), day("2025-01-05")
	bStart, bEnd := day("2025-01-04"), day("2025-01-08")

	if DateRangesOverlap(aStart, aEnd, bStart, bEnd) != DateRangesOverlap(bStart, bEnd, aStart, aEnd) {
		t.Error("overlap check is not symmetric")
	}
}

func TestCarStatusMetadata(t *testing.T) {
	for _, status := range AllCarStatuses {
		if status.Label() == "" {
			t.Errorf("%s.Label() is empty", status)
		}
		if color := status.Color(); len(color) != 7 || color[0] != '#' {
			t.Errorf("%s.Color() = %q, want a hex color", status, color)
		}
		if !status.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", status)
		}
	}

	if CarStatus("flying").IsValid() {
		t.Error(`CarStatus("flying").IsValid() = true, want false`)
	}
}

func TestCarColorHex(t *testing.T) {
	for _, color := range AllCarColors {
		if hex := color.Hex(); len(hex) != 7 || hex[0] != '#' {
			t.Errorf("%s.Hex() = %q, want a hex color", color, hex)
		}
		if !color.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", color)
		}
	}
}

func TestFuelTypeIsValid(t *testing.T) {
	for _, fuel := range AllFuelTypes {
		if !fuel.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", fuel)
		}
	}

	if FuelType("coal").IsValid() {
		t.Error(`FuelType("coal").IsValid() = true, want false`)
	}
}

func TestCarFullName(t *testing.T) {
	car := Car{Make: "Toyota", CarModel: "Corolla", Year: 2022}

	if got := car.FullName(); got != "2022 Toyota Corolla" {
		t.Errorf("FullName() = %q, want %q", got, "2022 Toyota Corolla")
	}
}
