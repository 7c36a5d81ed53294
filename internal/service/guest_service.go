package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrCheckOutInPast  = errors.New("check-out date must be in the future")
	ErrRoomOutOfRange  = errors.New("room number is outside this hotel's room range")
	ErrRoomOccupied    = errors.New("this room is currently occupied by another guest")
	ErrMobileInUse     = errors.New("this mobile number is already registered to an active guest")
	ErrGuestNotPending = errors.New("guest is not awaiting approval")
)

// RegistrationOutcome distinguishes the returning-guest auto-approve path
// (no document created, token bound to the existing record) from a fresh
// pending registration.
type RegistrationOutcome struct {
	Guest        *models.Guest
	AutoApproved bool
}

type GuestService interface {
	Register(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, checkOut time.Time) (*RegistrationOutcome, error)
	GetGuest(ctx context.Context, id uint) (*models.Guest, error)
	ListPending(ctx context.Context, hotelID uint) ([]models.Guest, error)
	ListApproved(ctx context.Context, hotelID uint) ([]models.Guest, error)
	Approve(ctx context.Context, hotelID, guestID uint) (*models.Guest, error)
	Reject(ctx context.Context, hotelID, guestID uint, reason string) (*models.Guest, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
	hotelRepo repository.HotelRepository
	publisher *rabbitmq.Publisher
}

func NewGuestService(guestRepo repository.GuestRepository, hotelRepo repository.HotelRepository, publisher *rabbitmq.Publisher) GuestService {
	return &guestService{
		guestRepo: guestRepo,
		hotelRepo: hotelRepo,
		publisher: publisher,
	}
}

// Register reconciles a self-registration against current occupancy. The
// whole decision runs inside a transaction that locks the hotel row, so two
// simultaneous attempts for the same room cannot both pass the occupancy
// check; the partial unique index on (hotel_id, room_number, approved) backs
// the same invariant at the data layer.
func (s *guestService) Register(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, checkOut time.Time) (*RegistrationOutcome, error) {
	now := time.Now()
	// Stored timestamps round to microseconds; truncate before both storing
	// and comparing so a returning guest's exact-match check cannot fail on
	// sub-second noise in the request.
	checkOut = checkOut.Truncate(time.Second)
	if !checkOut.After(now) {
		return nil, ErrCheckOutInPast
	}

	name = strings.ToUpper(strings.TrimSpace(name))
	roomNumber = strings.ToUpper(strings.TrimSpace(roomNumber))

	var result *RegistrationOutcome

	err := s.guestRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the hotel row — serializes concurrent registrations
		hotel, err := s.hotelRepo.FindByIDForUpdate(ctx, tx, hotelID)
		if err != nil {
			return ErrHotelNotFound
		}

		// 2. Room-range check (numeric) when the hotel configures one
		if hotel.HasRoomRange() {
			n, convErr := strconv.Atoi(roomNumber)
			if convErr != nil || n < hotel.RoomRangeStart || n > hotel.RoomRangeEnd {
				return ErrRoomOutOfRange
			}
		}

		// 3. Is the room held by an active approved guest?
		occupant, err := s.guestRepo.FindActiveByRoom(ctx, tx, hotelID, roomNumber, now)
		if err == nil {
			if occupant.Name == name &&
				occupant.MobileNumber == mobileNumber &&
				occupant.CheckOutDate.Equal(checkOut) {
				// Returning guest, identical details: bind to the
				// existing record, write nothing.
				result = &RegistrationOutcome{Guest: occupant, AutoApproved: true}
				return nil
			}
			return ErrRoomOccupied
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 4. Same mobile number active elsewhere in the hotel?
		_, err = s.guestRepo.FindActiveByMobile(ctx, tx, hotelID, mobileNumber, now)
		if err == nil {
			return ErrMobileInUse
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 5. New pending registration. Earlier rejected records for the
		// same person never block a resubmission.
		guest := &models.Guest{
			Name:         name,
			RoomNumber:   roomNumber,
			MobileNumber: mobileNumber,
			CheckOutDate: checkOut,
			Status:       models.GuestPending,
			HotelID:      hotelID,
		}
		if err := s.guestRepo.Create(ctx, tx, guest); err != nil {
			return err
		}
		result = &RegistrationOutcome{Guest: guest}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AutoApproved {
		_ = s.publisher.Publish("guest.registered", result.Guest)
	}
	return result, nil
}

func (s *guestService) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

func (s *guestService) ListPending(ctx context.Context, hotelID uint) ([]models.Guest, error) {
	return s.guestRepo.FindByHotelAndStatus(ctx, hotelID, models.GuestPending)
}

func (s *guestService) ListApproved(ctx context.Context, hotelID uint) ([]models.Guest, error) {
	return s.guestRepo.FindActiveApproved(ctx, hotelID)
}

// Approve moves a pending guest to approved. Approving an already-approved
// guest is a no-op, not an error. The occupancy check re-runs under the
// hotel lock: another guest may have been approved for the room since the
// registration was submitted.
func (s *guestService) Approve(ctx context.Context, hotelID, guestID uint) (*models.Guest, error) {
	var result *models.Guest

	err := s.guestRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guest, err := s.guestRepo.FindByID(ctx, guestID)
		if err != nil {
			return ErrGuestNotFound
		}
		if guest.HotelID != hotelID {
			return ErrGuestNotFound
		}

		if guest.Status == models.GuestApproved {
			result = guest
			return nil
		}
		if guest.Status != models.GuestPending {
			return ErrGuestNotPending
		}

		now := time.Now()
		if !guest.CheckOutDate.After(now) {
			return ErrCheckOutInPast
		}

		if _, err := s.hotelRepo.FindByIDForUpdate(ctx, tx, guest.HotelID); err != nil {
			return ErrHotelNotFound
		}

		// An expired occupant the sweep has not reached yet would trip the
		// partial unique index; flip it first (same action the sweep takes).
		if err := s.guestRepo.CheckOutExpiredInRoom(ctx, tx, guest.HotelID, guest.RoomNumber, now); err != nil {
			return err
		}

		_, err = s.guestRepo.FindActiveByRoom(ctx, tx, guest.HotelID, guest.RoomNumber, now)
		if err == nil {
			return ErrRoomOccupied
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.guestRepo.UpdateStatus(ctx, tx, guestID, models.GuestApproved); err != nil {
			return err
		}
		guest.Status = models.GuestApproved
		result = guest
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.publisher.Publish("guest.approved", result)
	return result, nil
}

func (s *guestService) Reject(ctx context.Context, hotelID, guestID uint, reason string) (*models.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil || guest.HotelID != hotelID {
		return nil, ErrGuestNotFound
	}

	if guest.Status == models.GuestRejected {
		return guest, nil
	}
	if guest.Status != models.GuestPending {
		return nil, ErrGuestNotPending
	}

	if reason == "" {
		reason = "Invalid details provided"
	}
	if err := s.guestRepo.UpdateStatusWithReason(ctx, guestID, models.GuestRejected, reason); err != nil {
		return nil, err
	}
	guest.Status = models.GuestRejected
	guest.RejectionReason = reason
	return guest, nil
}
