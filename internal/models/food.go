package models

import "time"

type Food struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `json:"image_url"`
	HotelID     uint      `gorm:"not null;index:idx_food_hotel_available,priority:1" json:"hotel_id"`
	IsAvailable bool      `gorm:"not null;default:true;index:idx_food_hotel_available,priority:2" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
