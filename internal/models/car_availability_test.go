package models

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache databases keep the pool on one in-memory store
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Car{}, &Reservation{}, &Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCarWithReservation(t *testing.T, db *gorm.DB, status ReservationStatus) (*Car, *Reservation) {
	t.Helper()

	user := User{Name: "Grace", Email: fmt.Sprintf("%s@example.com", t.Name()), PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	car := Car{
		Make: "Toyota", CarModel: "Corolla", Year: 2022,
		LicensePlate: fmt.Sprintf("PL-%s", t.Name()),
		PricePerDay:  50, Transmission: "automatic", Seats: 5,
	}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}

	reservation := Reservation{
		ReservationNumber: fmt.Sprintf("RES-%s", t.Name()),
		UserID:            user.ID,
		CarID:             car.ID,
		StartDate:         day("2025-02-10"),
		EndDate:           day("2025-02-15"),
		TotalDays:         5,
		DailyRate:         50,
		Subtotal:          250,
		TotalAmount:       267.50,
		Status:            status,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return &car, &reservation
}

func TestCarIsAvailableBlockedByOverlap(t *testing.T) {
	db := openTestDB(t)
	car, _ := seedCarWithReservation(t, db, ReservationStatusConfirmed)

	available, err := car.IsAvailable(db, day("2025-02-12"), day("2025-02-20"), 0)
	if err != nil {
		t.Fatalf("IsAvailable() error = %v", err)
	}
	if available {
		t.Error("IsAvailable() = true over a confirmed reservation, want false")
	}
}

func TestCarIsAvailableOutsideReservedRange(t *testing.T) {
	db := openTestDB(t)
	car, _ := seedCarWithReservation(t, db, ReservationStatusConfirmed)

	available, err := car.IsAvailable(db, day("2025-02-16"), day("2025-02-20"), 0)
	if err != nil {
		t.Fatalf("IsAvailable() error = %v", err)
	}
	if !available {
		t.Error("IsAvailable() = false for a disjoint range, want true")
	}
}

func TestCarIsAvailableIgnoresNonBlockingStatuses(t *testing.T) {
	for _, status := range []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusCompleted,
		ReservationStatusCancelled,
		ReservationStatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			db := openTestDB(t)
			car, _ := seedCarWithReservation(t, db, status)

			available, err := car.IsAvailable(db, day("2025-02-10"), day("2025-02-15"), 0)
			if err != nil {
				t.Fatalf("IsAvailable() error = %v", err)
			}
			if !available {
				t.Errorf("IsAvailable() = false with %s reservation, want true", status)
			}
		})
	}
}

func TestCarIsAvailableExcludesOwnReservation(t *testing.T) {
	db := openTestDB(t)
	car, reservation := seedCarWithReservation(t, db, ReservationStatusConfirmed)

	available, err := car.IsAvailable(db, day("2025-02-10"), day("2025-02-15"), reservation.ID)
	if err != nil {
		t.Fatalf("IsAvailable() error = %v", err)
	}
	if !available {
		t.Error("IsAvailable() = false when excluding the edited reservation, want true")
	}
}
