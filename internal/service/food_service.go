package service

import (
	"context"
	"errors"
	"strings"

	"guestdesk/internal/dto"
	"guestdesk/internal/models"
	"guestdesk/internal/repository"
)

var ErrFoodNotFound = errors.New("food item not found")

type FoodService interface {
	AddFood(ctx context.Context, hotelID uint, name string, price float64, imageURL string) (*models.Food, error)
	ListMenu(ctx context.Context, hotelID uint) ([]models.Food, error)
	ListAll(ctx context.Context, hotelID uint) ([]models.Food, error)
	UpdateFood(ctx context.Context, hotelID, foodID uint, req dto.UpdateFoodRequest) (*models.Food, error)
	DeleteFood(ctx context.Context, hotelID, foodID uint) error
}

type foodService struct {
	repo repository.FoodRepository
}

func NewFoodService(repo repository.FoodRepository) FoodService {
	return &foodService{repo: repo}
}

func (s *foodService) AddFood(ctx context.Context, hotelID uint, name string, price float64, imageURL string) (*models.Food, error) {
	food := &models.Food{
		Name:        strings.ToUpper(strings.TrimSpace(name)),
		Price:       price,
		ImageURL:    imageURL,
		HotelID:     hotelID,
		IsAvailable: true,
	}
	if err := s.repo.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// ListMenu returns only available items; the guest-facing menu.
func (s *foodService) ListMenu(ctx context.Context, hotelID uint) ([]models.Food, error) {
	return s.repo.FindByHotel(ctx, hotelID, true)
}

func (s *foodService) ListAll(ctx context.Context, hotelID uint) ([]models.Food, error) {
	return s.repo.FindByHotel(ctx, hotelID, false)
}

func (s *foodService) UpdateFood(ctx context.Context, hotelID, foodID uint, req dto.UpdateFoodRequest) (*models.Food, error) {
	food, err := s.repo.FindByID(ctx, foodID)
	if err != nil || food.HotelID != hotelID {
		return nil, ErrFoodNotFound
	}

	if req.Name != nil {
		food.Name = strings.ToUpper(strings.TrimSpace(*req.Name))
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.ImageURL != nil {
		food.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		food.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *foodService) DeleteFood(ctx context.Context, hotelID, foodID uint) error {
	food, err := s.repo.FindByID(ctx, foodID)
	if err != nil || food.HotelID != hotelID {
		return ErrFoodNotFound
	}
	return s.repo.Delete(ctx, foodID)
}
