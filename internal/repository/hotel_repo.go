package repository

import (
	"context"

	"guestdesk/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	FindByID(ctx context.Context, id uint) (*models.Hotel, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error)
	FindByEmail(ctx context.Context, email string) (*models.Hotel, error)
	FindByEmailOrName(ctx context.Context, email, name string) (*models.Hotel, error)
	FindAll(ctx context.Context) ([]models.Hotel, error)
	UpdateSettings(ctx context.Context, id uint, maxRooms, rangeStart, rangeEnd int) error
	GetDB() *gorm.DB
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *hotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// FindByIDForUpdate acquires a row-level lock on the hotel within the given
// transaction, serializing concurrent registration and approval attempts for
// the same hotel. SQLite has no row locks; its single-writer model covers it.
func (r *hotelRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var hotel models.Hotel
	if err := q.First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindByEmail(ctx context.Context, email string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindByEmailOrName(ctx context.Context, email, name string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).
		Where("email = ? OR hotel_name = ?", email, name).
		First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) UpdateSettings(ctx context.Context, id uint, maxRooms, rangeStart, rangeEnd int) error {
	return r.db.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"max_rooms":        maxRooms,
			"room_range_start": rangeStart,
			"room_range_end":   rangeEnd,
		}).Error
}
