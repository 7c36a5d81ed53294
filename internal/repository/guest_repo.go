package repository

import (
	"context"
	"time"

	"guestdesk/internal/models"
	"gorm.io/gorm"
)

type GuestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindByHotelAndStatus(ctx context.Context, hotelID uint, status models.GuestStatus) ([]models.Guest, error)
	FindActiveApproved(ctx context.Context, hotelID uint) ([]models.Guest, error)
	FindActiveByRoom(ctx context.Context, tx *gorm.DB, hotelID uint, roomNumber string, now time.Time) (*models.Guest, error)
	FindActiveByMobile(ctx context.Context, tx *gorm.DB, hotelID uint, mobileNumber string, now time.Time) (*models.Guest, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, guestID uint, status models.GuestStatus) error
	UpdateStatusWithReason(ctx context.Context, guestID uint, status models.GuestStatus, reason string) error
	CheckOutExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
	CheckOutExpiredInRoom(ctx context.Context, tx *gorm.DB, hotelID uint, roomNumber string, now time.Time) error
	GetDB() *gorm.DB
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *guestRepository) Create(ctx context.Context, tx *gorm.DB, guest *models.Guest) error {
	return tx.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByHotelAndStatus(ctx context.Context, hotelID uint, status models.GuestStatus) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND status = ?", hotelID, status).
		Order("created_at DESC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// FindActiveApproved lists approved guests whose stay has not ended yet,
// soonest checkout first.
func (r *guestRepository) FindActiveApproved(ctx context.Context, hotelID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND status = ? AND check_out_date > ?", hotelID, models.GuestApproved, time.Now()).
		Order("check_out_date ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindActiveByRoom(ctx context.Context, tx *gorm.DB, hotelID uint, roomNumber string, now time.Time) (*models.Guest, error) {
	var guest models.Guest
	err := tx.WithContext(ctx).
		Where("hotel_id = ? AND room_number = ? AND status = ? AND check_out_date > ?",
			hotelID, roomNumber, models.GuestApproved, now).
		First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindActiveByMobile(ctx context.Context, tx *gorm.DB, hotelID uint, mobileNumber string, now time.Time) (*models.Guest, error) {
	var guest models.Guest
	err := tx.WithContext(ctx).
		Where("hotel_id = ? AND mobile_number = ? AND status = ? AND check_out_date > ?",
			hotelID, mobileNumber, models.GuestApproved, now).
		First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, guestID uint, status models.GuestStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Update("status", status).Error
}

func (r *guestRepository) UpdateStatusWithReason(ctx context.Context, guestID uint, status models.GuestStatus, reason string) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Updates(map[string]any{"status": status, "rejection_reason": reason}).Error
}

// CheckOutExpired flips approved guests past their checkout date to
// checked-out. Idempotent: re-running it matches no rows.
func (r *guestRepository) CheckOutExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Guest{}).
		Where("status = ? AND check_out_date < ?", models.GuestApproved, now).
		Update("status", models.GuestCheckedOut)
	return result.RowsAffected, result.Error
}

// CheckOutExpiredInRoom clears an expired-but-unswept approved guest from a
// room so the partial unique index does not block the next approval.
func (r *guestRepository) CheckOutExpiredInRoom(ctx context.Context, tx *gorm.DB, hotelID uint, roomNumber string, now time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Guest{}).
		Where("hotel_id = ? AND room_number = ? AND status = ? AND check_out_date <= ?",
			hotelID, roomNumber, models.GuestApproved, now).
		Update("status", models.GuestCheckedOut).Error
}
