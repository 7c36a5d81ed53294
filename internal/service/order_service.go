package service

import (
	"context"
	"errors"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/pkg/rabbitmq"
	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrFoodUnavailable   = errors.New("food item is not available")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type OrderService interface {
	PlaceOrder(ctx context.Context, guest *models.Guest, items []dto.OrderItemRequest) (*models.Order, error)
	ListByHotel(ctx context.Context, hotelID uint) ([]models.Order, error)
	ListByGuest(ctx context.Context, guest *models.Guest) ([]models.Order, error)
	UpdateStatus(ctx context.Context, hotelID, orderID uint, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodRepository
	publisher *rabbitmq.Publisher
}

func NewOrderService(orderRepo repository.OrderRepository, foodRepo repository.FoodRepository, publisher *rabbitmq.Publisher) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		publisher: publisher,
	}
}

// PlaceOrder computes the total server-side from the current menu prices and
// snapshots each price into the order items; later price edits never change
// an existing order.
func (s *orderService) PlaceOrder(ctx context.Context, guest *models.Guest, items []dto.OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		food, err := s.foodRepo.FindByID(ctx, item.FoodID)
		if err != nil || food.HotelID != guest.HotelID || !food.IsAvailable {
			return nil, ErrFoodUnavailable
		}
		total += food.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			FoodID:   food.ID,
			Quantity: item.Quantity,
			Price:    food.Price,
		})
	}

	order := &models.Order{
		Reference:   uuid.NewString(),
		GuestID:     guest.ID,
		HotelID:     guest.HotelID,
		RoomNumber:  guest.RoomNumber,
		Items:       orderItems,
		TotalAmount: total,
		Status:      models.OrderPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish("order.created", order)
	return order, nil
}

func (s *orderService) ListByHotel(ctx context.Context, hotelID uint) ([]models.Order, error) {
	return s.orderRepo.FindByHotel(ctx, hotelID)
}

// ListByGuest returns nothing once the guest's stay has ended.
func (s *orderService) ListByGuest(ctx context.Context, guest *models.Guest) ([]models.Order, error) {
	if !guest.CheckOutDate.After(time.Now()) {
		return []models.Order{}, nil
	}
	return s.orderRepo.FindByGuest(ctx, guest.ID)
}

func (s *orderService) UpdateStatus(ctx context.Context, hotelID, orderID uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil || order.HotelID != hotelID {
		return nil, ErrOrderNotFound
	}

	if !models.ValidOrderTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	_ = s.publisher.Publish("order.status", order)
	return order, nil
}
