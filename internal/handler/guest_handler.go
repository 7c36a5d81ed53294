package handler

import (
	"errors"
	"net/http"
	"strconv"

	"guestdesk/internal/dto"
	"guestdesk/internal/middleware"
	"guestdesk/internal/repository"
	"guestdesk/internal/service"
	"guestdesk/pkg/token"
	"github.com/labstack/echo/v4"
)

type GuestHandler struct {
	svc       service.GuestService
	hotelRepo repository.HotelRepository
	signer    *token.Signer
}

func NewGuestHandler(svc service.GuestService, hotelRepo repository.HotelRepository, signer *token.Signer) *GuestHandler {
	return &GuestHandler{svc: svc, hotelRepo: hotelRepo, signer: signer}
}

func (h *GuestHandler) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	g := e.Group("/api/guests")
	g.GET("/verify-hotel/:hotelId", h.VerifyHotel)
	g.POST("/register/:hotelId", h.Register)
	g.GET("/status/:guestId", h.GetStatus)

	g.GET("/pending/:hotelId", h.ListPending, auth.Staff)
	g.GET("/approved/:hotelId", h.ListApproved, auth.Staff)
	g.POST("/approve/:guestId", h.Approve, auth.Staff)
	g.POST("/reject/:guestId", h.Reject, auth.Staff)
}

// VerifyHotel lets the public registration page confirm the hotel in the
// link exists before showing the form.
func (h *GuestHandler) VerifyHotel(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	hotel, err := h.hotelRepo.FindByID(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "hotel not found")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"hotel": dto.HotelSummary{ID: hotel.ID, HotelName: hotel.HotelName},
	})
}

func (h *GuestHandler) Register(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	var req dto.RegisterGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.RoomNumber == "" || req.MobileNumber == "" || req.CheckOutDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "name, room_number, mobile_number and check_out_date are required")
	}

	outcome, err := h.svc.Register(c.Request().Context(), uint(hotelID), req.Name, req.RoomNumber, req.MobileNumber, req.CheckOutDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHotelNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCheckOutInPast),
			errors.Is(err, service.ErrRoomOutOfRange),
			errors.Is(err, service.ErrRoomOccupied),
			errors.Is(err, service.ErrMobileInUse):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
		}
	}

	tokenStr, err := h.signer.SignGuest(outcome.Guest.ID, outcome.Guest.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}

	if outcome.AutoApproved {
		return c.JSON(http.StatusOK, dto.RegistrationResponse{
			Message: "Welcome back! Auto-approved.",
			Token:   tokenStr,
			Guest:   dto.ToGuestResponse(outcome.Guest),
		})
	}
	return c.JSON(http.StatusCreated, dto.RegistrationResponse{
		Message: "Registration submitted. Awaiting staff approval.",
		Token:   tokenStr,
		Guest:   dto.ToGuestResponse(outcome.Guest),
	})
}

func (h *GuestHandler) GetStatus(c echo.Context) error {
	guestID, err := strconv.ParseUint(c.Param("guestId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guest id")
	}

	guest, err := h.svc.GetGuest(c.Request().Context(), uint(guestID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "guest not found")
	}

	return c.JSON(http.StatusOK, dto.GuestStatusResponse{
		Status: guest.Status,
		Guest:  dto.ToGuestResponse(guest),
	})
}

func (h *GuestHandler) ListPending(c echo.Context) error {
	hotelID, err := h.ownHotelID(c)
	if err != nil {
		return err
	}

	guests, err := h.svc.ListPending(c.Request().Context(), hotelID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching pending guests")
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i, g := range guests {
		resp[i] = dto.ToGuestResponse(&g)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GuestHandler) ListApproved(c echo.Context) error {
	hotelID, err := h.ownHotelID(c)
	if err != nil {
		return err
	}

	guests, err := h.svc.ListApproved(c.Request().Context(), hotelID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching approved guests")
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i, g := range guests {
		resp[i] = dto.ToGuestResponse(&g)
	}
	return c.JSON(http.StatusOK, resp)
}

// ownHotelID parses the :hotelId path param and checks it matches the
// authenticated staff session.
func (h *GuestHandler) ownHotelID(c echo.Context) (uint, error) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}
	if uint(hotelID) != middleware.HotelID(c) {
		return 0, echo.NewHTTPError(http.StatusForbidden, "not authorized for this hotel")
	}
	return uint(hotelID), nil
}

func (h *GuestHandler) Approve(c echo.Context) error {
	guestID, err := strconv.ParseUint(c.Param("guestId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guest id")
	}

	guest, err := h.svc.Approve(c.Request().Context(), middleware.HotelID(c), uint(guestID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGuestNotPending),
			errors.Is(err, service.ErrCheckOutInPast),
			errors.Is(err, service.ErrRoomOccupied):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error approving guest")
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Guest approved successfully",
		"guest":   dto.ToGuestResponse(guest),
	})
}

func (h *GuestHandler) Reject(c echo.Context) error {
	guestID, err := strconv.ParseUint(c.Param("guestId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guest id")
	}

	var req dto.RejectGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	guest, err := h.svc.Reject(c.Request().Context(), middleware.HotelID(c), uint(guestID), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGuestNotPending):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error rejecting guest")
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Guest rejected successfully",
		"guest":   dto.ToGuestResponse(guest),
	})
}
