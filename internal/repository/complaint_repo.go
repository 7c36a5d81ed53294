package repository

import (
	"context"
	"time"

	"guestdesk/internal/models"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	FindByID(ctx context.Context, id uint) (*models.Complaint, error)
	FindByHotel(ctx context.Context, hotelID uint) ([]models.Complaint, error)
	FindByGuest(ctx context.Context, guestID uint) ([]models.Complaint, error)
	AppendMessage(ctx context.Context, complaintID uint, msg *models.Message) error
	UpdateStatus(ctx context.Context, complaintID uint, status models.ComplaintStatus) error
	Delete(ctx context.Context, complaintID uint) error
	DeleteStaleResolved(ctx context.Context, olderThan time.Time) (int64, error)

	CreatePredefined(ctx context.Context, pc *models.PredefinedComplaint) error
	FindPredefined(ctx context.Context, hotelID uint) ([]models.PredefinedComplaint, error)
}

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) FindByID(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("messages.id ASC") }).
		First(&complaint, id).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) FindByHotel(ctx context.Context, hotelID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("messages.id ASC") }).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) FindByGuest(ctx context.Context, guestID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("messages.id ASC") }).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// AppendMessage adds one thread entry and touches the complaint's updated_at
// so the retention sweep sees activity.
func (r *complaintRepository) AppendMessage(ctx context.Context, complaintID uint, msg *models.Message) error {
	msg.ComplaintID = complaintID
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Update("updated_at", time.Now()).Error
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, complaintID uint, status models.ComplaintStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Update("status", status).Error
}

func (r *complaintRepository) Delete(ctx context.Context, complaintID uint) error {
	if err := r.db.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Delete(&models.Message{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Complaint{}, complaintID).Error
}

// DeleteStaleResolved removes resolved complaints untouched since olderThan.
func (r *complaintRepository) DeleteStaleResolved(ctx context.Context, olderThan time.Time) (int64, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("status = ? AND updated_at < ?", models.ComplaintResolved, olderThan).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("complaint_id IN ?", ids).
		Delete(&models.Message{}).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&models.Complaint{}, ids)
	return result.RowsAffected, result.Error
}

func (r *complaintRepository) CreatePredefined(ctx context.Context, pc *models.PredefinedComplaint) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *complaintRepository) FindPredefined(ctx context.Context, hotelID uint) ([]models.PredefinedComplaint, error) {
	var items []models.PredefinedComplaint
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND is_active = ?", hotelID, true).
		Order("title ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
