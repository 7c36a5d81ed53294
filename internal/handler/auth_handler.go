package handler

import (
	"errors"
	"net/http"
	"strconv"

	"guestdesk/internal/dto"
	"guestdesk/internal/middleware"
	"guestdesk/internal/service"
	"guestdesk/pkg/token"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc    service.AuthService
	signer *token.Signer
}

func NewAuthHandler(svc service.AuthService, signer *token.Signer) *AuthHandler {
	return &AuthHandler{svc: svc, signer: signer}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	g := e.Group("/api/auth")
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.GET("/settings/:hotelId", h.GetSettings, auth.Staff)
	g.PATCH("/settings", h.UpdateSettings, auth.Staff)
}

// setStaffCookie binds the staff session to the browser; the middleware
// accepts the cookie as a fallback when no Authorization header is sent.
func setStaffCookie(c echo.Context, tokenStr string) {
	c.SetCookie(&http.Cookie{
		Name:     "staffToken",
		Value:    tokenStr,
		HttpOnly: true,
		Path:     "/",
	})
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HotelName == "" || req.Email == "" || req.Password == "" || req.Address == "" || req.PhoneNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	hotel, err := h.svc.Signup(c.Request().Context(), req.HotelName, req.Email, req.Password, req.Address, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrHotelExists) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}

	tokenStr, err := h.signer.SignStaff(hotel.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}
	setStaffCookie(c, tokenStr)

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		Token:   tokenStr,
		Hotel:   dto.HotelSummary{ID: hotel.ID, HotelName: hotel.HotelName, Email: hotel.Email},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	hotel, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	tokenStr, err := h.signer.SignStaff(hotel.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	setStaffCookie(c, tokenStr)

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Token: tokenStr,
		Hotel: dto.HotelSummary{ID: hotel.ID, HotelName: hotel.HotelName, Email: hotel.Email},
	})
}

func (h *AuthHandler) GetSettings(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}
	if uint(hotelID) != middleware.HotelID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not authorized for this hotel")
	}

	hotel, err := h.svc.GetSettings(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "hotel not found")
	}

	return c.JSON(http.StatusOK, dto.SettingsResponse{
		MaxRooms:       hotel.MaxRooms,
		RoomRangeStart: hotel.RoomRangeStart,
		RoomRangeEnd:   hotel.RoomRangeEnd,
	})
}

func (h *AuthHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	hotel, err := h.svc.UpdateSettings(c.Request().Context(), middleware.HotelID(c), req.MaxRooms, req.RoomRangeStart, req.RoomRangeEnd)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRoomRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error updating settings")
	}

	return c.JSON(http.StatusOK, dto.SettingsResponse{
		MaxRooms:       hotel.MaxRooms,
		RoomRangeStart: hotel.RoomRangeStart,
		RoomRangeEnd:   hotel.RoomRangeEnd,
	})
}
