package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderTransition enforces the staff-driven order lifecycle:
// pending → confirmed → preparing → delivered, with cancellation allowed
// only before preparation starts.
func ValidOrderTransition(from, to OrderStatus) bool {
	switch from {
	case OrderPending:
		return to == OrderConfirmed || to == OrderCancelled
	case OrderConfirmed:
		return to == OrderPreparing || to == OrderCancelled
	case OrderPreparing:
		return to == OrderDelivered
	default:
		return false
	}
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Reference   string      `gorm:"uniqueIndex;not null" json:"reference"`
	GuestID     uint        `gorm:"not null;index" json:"guest_id"`
	HotelID     uint        `gorm:"not null;index:idx_order_hotel_status,priority:1" json:"hotel_id"`
	RoomNumber  string      `gorm:"not null" json:"room_number"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_order_hotel_status,priority:2" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem snapshots the food price at submission time; later menu edits do
// not change existing orders.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"not null;index" json:"order_id"`
	FoodID   uint    `gorm:"not null" json:"food_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`

	Food *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}
