package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"guestdesk/internal/models"
	"guestdesk/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// DSN keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedHotel(t *testing.T, db *gorm.DB, rangeStart, rangeEnd int) *models.Hotel {
	t.Helper()

	hotel := &models.Hotel{
		HotelName:      "Sea View " + strings.ReplaceAll(t.Name(), "/", "_"),
		Email:          strings.ReplaceAll(t.Name(), "/", "_") + "@example.com",
		PasswordHash:   "x",
		Address:        "1 Beach Road",
		PhoneNumber:    "0123456789",
		MaxRooms:       11,
		RoomRangeStart: rangeStart,
		RoomRangeEnd:   rangeEnd,
	}
	if err := db.Create(hotel).Error; err != nil {
		t.Fatalf("failed to seed hotel: %v", err)
	}
	return hotel
}

// checkout dates are truncated to seconds so they survive the database
// round trip intact for the exact-match comparison.
func futureCheckout(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour).Truncate(time.Second)
}
