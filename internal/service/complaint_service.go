package service

import (
	"context"
	"errors"
	"strings"

	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/pkg/rabbitmq"
)

var (
	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrComplaintNotResolved = errors.New("only resolved complaints can be deleted")
	ErrInvalidStatus        = errors.New("invalid status")
)

type ComplaintService interface {
	Submit(ctx context.Context, guestID, hotelID uint, title, description string, isPredefined bool) (*models.Complaint, error)
	ListByHotel(ctx context.Context, hotelID uint) ([]models.Complaint, error)
	ListByGuest(ctx context.Context, guestID uint) ([]models.Complaint, error)
	AddMessage(ctx context.Context, complaintID, scopeID uint, staff bool, body string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, complaintID, hotelID uint, status models.ComplaintStatus) (*models.Complaint, error)
	Delete(ctx context.Context, complaintID, hotelID uint) error
	AddPredefined(ctx context.Context, hotelID uint, title string) (*models.PredefinedComplaint, error)
	ListPredefined(ctx context.Context, hotelID uint) ([]models.PredefinedComplaint, error)
}

type complaintService struct {
	repo      repository.ComplaintRepository
	publisher *rabbitmq.Publisher
}

func NewComplaintService(repo repository.ComplaintRepository, publisher *rabbitmq.Publisher) ComplaintService {
	return &complaintService{repo: repo, publisher: publisher}
}

// Submit creates a complaint and seeds the thread with the description as
// the guest's first message.
func (s *complaintService) Submit(ctx context.Context, guestID, hotelID uint, title, description string, isPredefined bool) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Title:        title,
		Description:  description,
		Status:       models.ComplaintPending,
		GuestID:      guestID,
		HotelID:      hotelID,
		IsPredefined: isPredefined,
		Messages: []models.Message{
			{Body: description, IsStaff: false},
		},
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish("complaint.created", complaint)
	return complaint, nil
}

func (s *complaintService) ListByHotel(ctx context.Context, hotelID uint) ([]models.Complaint, error) {
	return s.repo.FindByHotel(ctx, hotelID)
}

func (s *complaintService) ListByGuest(ctx context.Context, guestID uint) ([]models.Complaint, error) {
	return s.repo.FindByGuest(ctx, guestID)
}

// AddMessage appends to the thread. scopeID is the hotel for staff messages
// and the guest for guest messages; the complaint must belong to the caller.
func (s *complaintService) AddMessage(ctx context.Context, complaintID, scopeID uint, staff bool, body string) (*models.Complaint, error) {
	complaint, err := s.repo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, ErrComplaintNotFound
	}
	if staff && complaint.HotelID != scopeID {
		return nil, ErrComplaintNotFound
	}
	if !staff && complaint.GuestID != scopeID {
		return nil, ErrComplaintNotFound
	}

	msg := &models.Message{Body: body, IsStaff: staff}
	if err := s.repo.AppendMessage(ctx, complaintID, msg); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, complaintID)
}

func (s *complaintService) UpdateStatus(ctx context.Context, complaintID, hotelID uint, status models.ComplaintStatus) (*models.Complaint, error) {
	switch status {
	case models.ComplaintPending, models.ComplaintInProgress, models.ComplaintResolved:
	default:
		return nil, ErrInvalidStatus
	}

	complaint, err := s.repo.FindByID(ctx, complaintID)
	if err != nil || complaint.HotelID != hotelID {
		return nil, ErrComplaintNotFound
	}

	if err := s.repo.UpdateStatus(ctx, complaintID, status); err != nil {
		return nil, err
	}
	complaint.Status = status
	return complaint, nil
}

// Delete removes a complaint; staff may only delete resolved ones.
func (s *complaintService) Delete(ctx context.Context, complaintID, hotelID uint) error {
	complaint, err := s.repo.FindByID(ctx, complaintID)
	if err != nil || complaint.HotelID != hotelID {
		return ErrComplaintNotFound
	}
	if complaint.Status != models.ComplaintResolved {
		return ErrComplaintNotResolved
	}
	return s.repo.Delete(ctx, complaintID)
}

func (s *complaintService) AddPredefined(ctx context.Context, hotelID uint, title string) (*models.PredefinedComplaint, error) {
	pc := &models.PredefinedComplaint{
		Title:    strings.ToUpper(strings.TrimSpace(title)),
		HotelID:  hotelID,
		IsActive: true,
	}
	if err := s.repo.CreatePredefined(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}

func (s *complaintService) ListPredefined(ctx context.Context, hotelID uint) ([]models.PredefinedComplaint, error) {
	return s.repo.FindPredefined(ctx, hotelID)
}
