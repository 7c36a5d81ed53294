package repository

import (
	"context"

	"guestdesk/internal/models"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	FindByID(ctx context.Context, id uint) (*models.Food, error)
	FindByHotel(ctx context.Context, hotelID uint, availableOnly bool) ([]models.Food, error)
	Update(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id uint) error
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) FindByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindByHotel(ctx context.Context, hotelID uint, availableOnly bool) ([]models.Food, error) {
	q := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var foods []models.Food
	if err := q.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) Update(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Food{}, id).Error
}
