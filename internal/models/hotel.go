package models

import "time"

type Hotel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HotelName      string    `gorm:"uniqueIndex;not null" json:"hotel_name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Address        string    `gorm:"not null" json:"address"`
	PhoneNumber    string    `gorm:"not null" json:"phone_number"`
	MaxRooms       int       `json:"max_rooms"`
	RoomRangeStart int       `json:"room_range_start"`
	RoomRangeEnd   int       `json:"room_range_end"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasRoomRange reports whether the hotel restricts registrations to a
// numeric room-number interval.
func (h *Hotel) HasRoomRange() bool {
	return h.RoomRangeStart != 0 || h.RoomRangeEnd != 0
}
