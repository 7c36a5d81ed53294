package dto

import (
	"time"

	"guestdesk/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type HotelSummary struct {
	ID        uint   `json:"id"`
	HotelName string `json:"hotel_name"`
	Email     string `json:"email,omitempty"`
}

type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	Hotel   HotelSummary `json:"hotel"`
}

type AdminAuthResponse struct {
	Token string `json:"token"`
	Admin struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"admin"`
}

type SettingsResponse struct {
	MaxRooms       int `json:"max_rooms"`
	RoomRangeStart int `json:"room_range_start"`
	RoomRangeEnd   int `json:"room_range_end"`
}

type GuestResponse struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	RoomNumber      string             `json:"room_number"`
	MobileNumber    string             `json:"mobile_number"`
	CheckOutDate    time.Time          `json:"check_out_date"`
	Status          models.GuestStatus `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	HotelID         uint               `json:"hotel_id"`
	CreatedAt       time.Time          `json:"created_at"`
}

// RegistrationResponse is returned by the public registration endpoint for
// both the pending and the returning-guest auto-approve outcomes.
type RegistrationResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Guest   GuestResponse `json:"guest"`
}

type GuestStatusResponse struct {
	Status models.GuestStatus `json:"status"`
	Guest  GuestResponse      `json:"guest"`
}

type MessageResponse struct {
	Message   string    `json:"message"`
	IsStaff   bool      `json:"is_staff"`
	Timestamp time.Time `json:"timestamp"`
}

type ComplaintResponse struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Status       models.ComplaintStatus `json:"status"`
	GuestID      uint                   `json:"guest_id"`
	HotelID      uint                   `json:"hotel_id"`
	IsPredefined bool                   `json:"is_predefined"`
	Messages     []MessageResponse      `json:"messages"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type OrderItemResponse struct {
	FoodID   uint    `json:"food_id"`
	FoodName string  `json:"food_name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderResponse struct {
	ID          uint                `json:"id"`
	Reference   string              `json:"reference"`
	GuestID     uint                `json:"guest_id"`
	HotelID     uint                `json:"hotel_id"`
	RoomNumber  string              `json:"room_number"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	Status      models.OrderStatus  `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// HotelStats is one row of the admin monthly rollup.
type HotelStats struct {
	HotelID     uint    `json:"hotel_id"`
	HotelName   string  `json:"hotel_name"`
	TotalGuests int64   `json:"totalGuests"`
	Complaints  int64   `json:"complaints"`
	FoodOrders  int64   `json:"foodOrders"`
	Revenue     float64 `json:"revenue"`
}

func ToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:              g.ID,
		Name:            g.Name,
		RoomNumber:      g.RoomNumber,
		MobileNumber:    g.MobileNumber,
		CheckOutDate:    g.CheckOutDate,
		Status:          g.Status,
		RejectionReason: g.RejectionReason,
		HotelID:         g.HotelID,
		CreatedAt:       g.CreatedAt,
	}
}

func ToComplaintResponse(c *models.Complaint) ComplaintResponse {
	msgs := make([]MessageResponse, len(c.Messages))
	for i, m := range c.Messages {
		msgs[i] = MessageResponse{
			Message:   m.Body,
			IsStaff:   m.IsStaff,
			Timestamp: m.CreatedAt,
		}
	}
	return ComplaintResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Status:       c.Status,
		GuestID:      c.GuestID,
		HotelID:      c.HotelID,
		IsPredefined: c.IsPredefined,
		Messages:     msgs,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		item := OrderItemResponse{
			FoodID:   it.FoodID,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
		if it.Food != nil {
			item.FoodName = it.Food.Name
		}
		items[i] = item
	}
	return OrderResponse{
		ID:          o.ID,
		Reference:   o.Reference,
		GuestID:     o.GuestID,
		HotelID:     o.HotelID,
		RoomNumber:  o.RoomNumber,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
