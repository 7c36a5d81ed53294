package models

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type Complaint struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"not null" json:"title"`
	Description  string          `gorm:"not null" json:"description"`
	Status       ComplaintStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	GuestID      uint            `gorm:"not null;index" json:"guest_id"`
	HotelID      uint            `gorm:"not null;index" json:"hotel_id"`
	IsPredefined bool            `gorm:"not null;default:false" json:"is_predefined"`
	Messages     []Message       `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"messages"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Message is one entry in a complaint's append-only thread.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	Body        string    `gorm:"not null" json:"message"`
	IsStaff     bool      `gorm:"not null;default:false" json:"is_staff"`
	CreatedAt   time.Time `json:"timestamp"`
}

// PredefinedComplaint is a staff-curated title guests can pick instead of
// writing free text. Complaints reference it by title only.
type PredefinedComplaint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	HotelID   uint      `gorm:"not null;index:idx_predefined_hotel_active,priority:1" json:"hotel_id"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_predefined_hotel_active,priority:2" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
