package repository

import (
	"context"
	"time"

	"guestdesk/internal/models"
	"gorm.io/gorm"
)

// StatsRepository serves the admin console: monthly per-hotel counts computed
// straight from the source tables on every request, no caching.
type StatsRepository interface {
	CountGuests(ctx context.Context, hotelID uint, from, to time.Time) (int64, error)
	CountComplaints(ctx context.Context, hotelID uint, from, to time.Time) (int64, error)
	CountOrders(ctx context.Context, hotelID uint, from, to time.Time) (int64, error)
	SumRevenue(ctx context.Context, hotelID uint, from, to time.Time) (float64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountGuests(ctx context.Context, hotelID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelID, from, to).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountComplaints(ctx context.Context, hotelID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelID, from, to).
		Count(&count).Error
	return count, err
}

// CountOrders excludes cancelled orders, matching the revenue sum.
func (r *statsRepository) CountOrders(ctx context.Context, hotelID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("hotel_id = ? AND status <> ? AND created_at >= ? AND created_at < ?",
			hotelID, models.OrderCancelled, from, to).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) SumRevenue(ctx context.Context, hotelID uint, from, to time.Time) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("hotel_id = ? AND status <> ? AND created_at >= ? AND created_at < ?",
			hotelID, models.OrderCancelled, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}
