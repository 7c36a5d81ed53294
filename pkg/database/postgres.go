package database

import (
	"log"

	"guestdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

// Migrate creates the schema and the occupancy invariant. The partial unique
// index is the data-layer backstop against two approved guests holding the
// same room: even if a code path skips the hotel lock, the second approval
// fails at insert/update time.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Guest{},
		&models.Complaint{},
		&models.Message{},
		&models.PredefinedComplaint{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_guest_room_approved
		ON guests (hotel_id, room_number)
		WHERE status = 'approved'
	`).Error
}
