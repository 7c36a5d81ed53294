package dto

import "time"

type SignupRequest struct {
	HotelName   string `json:"hotel_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateSettingsRequest struct {
	MaxRooms       int `json:"max_rooms"`
	RoomRangeStart int `json:"room_range_start"`
	RoomRangeEnd   int `json:"room_range_end"`
}

type RegisterGuestRequest struct {
	Name         string    `json:"name"`
	RoomNumber   string    `json:"room_number"`
	MobileNumber string    `json:"mobile_number"`
	CheckOutDate time.Time `json:"check_out_date"`
}

type RejectGuestRequest struct {
	Reason string `json:"reason"`
}

type SubmitComplaintRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	IsPredefined bool   `json:"is_predefined"`
}

type AddMessageRequest struct {
	Message string `json:"message"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

type AddPredefinedComplaintRequest struct {
	Title string `json:"title"`
}

type CreateFoodRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// UpdateFoodRequest uses pointers so absent fields leave the item unchanged.
type UpdateFoodRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
