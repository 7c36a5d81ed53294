package models

import "time"

type GuestStatus string

const (
	GuestPending    GuestStatus = "pending"
	GuestApproved   GuestStatus = "approved"
	GuestRejected   GuestStatus = "rejected"
	GuestCheckedOut GuestStatus = "checked-out"
)

type Guest struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Name            string      `gorm:"not null" json:"name"`
	RoomNumber      string      `gorm:"not null" json:"room_number"`
	MobileNumber    string      `gorm:"not null" json:"mobile_number"`
	CheckOutDate    time.Time   `gorm:"not null" json:"check_out_date"`
	Status          GuestStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_guest_hotel_status,priority:2" json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	HotelID         uint        `gorm:"not null;index:idx_guest_hotel_status,priority:1" json:"hotel_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

// Active reports whether the guest currently holds the room: approved and
// not yet past the checkout date.
func (g *Guest) Active(now time.Time) bool {
	return g.Status == GuestApproved && g.CheckOutDate.After(now)
}
