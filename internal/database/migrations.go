package database

import (
	"github.com/rapcars/rental-backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations applies constraints AutoMigrate cannot express.
func RunMigrations(db *gorm.DB) error {
	// A ticket belongs to exactly one of: a registered user, or a guest
	// identified by name and email.
	if db.Migrator().HasTable(&models.Ticket{}) {
		db.Exec(`ALTER TABLE tickets DROP CONSTRAINT IF EXISTS tickets_owner_check`)
		if err := db.Exec(`ALTER TABLE tickets ADD CONSTRAINT tickets_owner_check CHECK (
			(user_id IS NOT NULL AND guest_name = '' AND guest_email = '') OR
			(user_id IS NULL AND guest_name <> '' AND guest_email <> '')
		)`).Error; err != nil {
			return err
		}
	}

	// Refunds never exceed the payment amount.
	if db.Migrator().HasTable(&models.Payment{}) {
		db.Exec(`ALTER TABLE payments DROP CONSTRAINT IF EXISTS payments_refund_check`)
		if err := db.Exec(`ALTER TABLE payments ADD CONSTRAINT payments_refund_check CHECK (refunded_amount >= 0 AND refunded_amount <= amount)`).Error; err != nil {
			return err
		}
	}

	// Date ordering on reservations; GORM only creates the columns.
	if db.Migrator().HasTable(&models.Reservation{}) {
		db.Exec(`ALTER TABLE reservations DROP CONSTRAINT IF EXISTS reservations_dates_check`)
		if err := db.Exec(`ALTER TABLE reservations ADD CONSTRAINT reservations_dates_check CHECK (end_date >= start_date AND total_days >= 1)`).Error; err != nil {
			return err
		}
	}

	return nil
}
