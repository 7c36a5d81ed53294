package repository

import (
	"context"

	"guestdesk/internal/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByHotel(ctx context.Context, hotelID uint) ([]models.Order, error)
	FindByGuest(ctx context.Context, guestID uint) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) error
	DeleteForCheckedOutGuests(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Food").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByHotel(ctx context.Context, hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Food").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByGuest(ctx context.Context, guestID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Food").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// DeleteForCheckedOutGuests drops orders whose owning guest has checked out.
func (r *orderRepository) DeleteForCheckedOutGuests(ctx context.Context) (int64, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Joins("JOIN guests ON guests.id = orders.guest_id").
		Where("guests.status = ?", models.GuestCheckedOut).
		Pluck("orders.id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Delete(&models.OrderItem{}).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&models.Order{}, ids)
	return result.RowsAffected, result.Error
}
