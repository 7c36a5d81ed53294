package service

import (
	"context"
	"errors"

	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrHotelExists        = errors.New("hotel already registered with this email or name")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRoomRange   = errors.New("room range start must be less than room range end")
)

type AuthService interface {
	Signup(ctx context.Context, hotelName, email, password, address, phoneNumber string) (*models.Hotel, error)
	Login(ctx context.Context, email, password string) (*models.Hotel, error)
	GetSettings(ctx context.Context, hotelID uint) (*models.Hotel, error)
	UpdateSettings(ctx context.Context, hotelID uint, maxRooms, rangeStart, rangeEnd int) (*models.Hotel, error)
	AdminLogin(ctx context.Context, username, password string) (*models.Admin, error)
}

type authService struct {
	hotelRepo repository.HotelRepository
	adminRepo repository.AdminRepository
}

func NewAuthService(hotelRepo repository.HotelRepository, adminRepo repository.AdminRepository) AuthService {
	return &authService{hotelRepo: hotelRepo, adminRepo: adminRepo}
}

func (s *authService) Signup(ctx context.Context, hotelName, email, password, address, phoneNumber string) (*models.Hotel, error) {
	_, err := s.hotelRepo.FindByEmailOrName(ctx, email, hotelName)
	if err == nil {
		return nil, ErrHotelExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		HotelName:    hotelName,
		Email:        email,
		PasswordHash: string(hash),
		Address:      address,
		PhoneNumber:  phoneNumber,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Hotel, error) {
	hotel, err := s.hotelRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hotel.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return hotel, nil
}

func (s *authService) GetSettings(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	hotel, err := s.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

func (s *authService) UpdateSettings(ctx context.Context, hotelID uint, maxRooms, rangeStart, rangeEnd int) (*models.Hotel, error) {
	if (rangeStart != 0 || rangeEnd != 0) && rangeStart >= rangeEnd {
		return nil, ErrInvalidRoomRange
	}

	if err := s.hotelRepo.UpdateSettings(ctx, hotelID, maxRooms, rangeStart, rangeEnd); err != nil {
		return nil, err
	}
	return s.hotelRepo.FindByID(ctx, hotelID)
}

func (s *authService) AdminLogin(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
