package service

import (
	"context"
	"errors"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/repository"
)

var ErrInvalidMonth = errors.New("year and month must form a valid calendar month")

type AdminService interface {
	HotelStats(ctx context.Context, year, month int) ([]dto.HotelStats, error)
}

type adminService struct {
	hotelRepo repository.HotelRepository
	statsRepo repository.StatsRepository
}

func NewAdminService(hotelRepo repository.HotelRepository, statsRepo repository.StatsRepository) AdminService {
	return &adminService{hotelRepo: hotelRepo, statsRepo: statsRepo}
}

// HotelStats assembles the monthly rollup for every hotel. Each count is an
// independent query against the source tables; any failure aborts the whole
// aggregation, no partial results.
func (s *adminService) HotelStats(ctx context.Context, year, month int) ([]dto.HotelStats, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	hotels, err := s.hotelRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.HotelStats, 0, len(hotels))
	for _, hotel := range hotels {
		guests, err := s.statsRepo.CountGuests(ctx, hotel.ID, from, to)
		if err != nil {
			return nil, err
		}
		complaints, err := s.statsRepo.CountComplaints(ctx, hotel.ID, from, to)
		if err != nil {
			return nil, err
		}
		orders, err := s.statsRepo.CountOrders(ctx, hotel.ID, from, to)
		if err != nil {
			return nil, err
		}
		revenue, err := s.statsRepo.SumRevenue(ctx, hotel.ID, from, to)
		if err != nil {
			return nil, err
		}

		stats = append(stats, dto.HotelStats{
			HotelID:     hotel.ID,
			HotelName:   hotel.HotelName,
			TotalGuests: guests,
			Complaints:  complaints,
			FoodOrders:  orders,
			Revenue:     revenue,
		})
	}
	return stats, nil
}
