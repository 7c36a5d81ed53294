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

type AdminHandler struct {
	authSvc  service.AuthService
	adminSvc service.AdminService
	signer   *token.Signer
}

func NewAdminHandler(authSvc service.AuthService, adminSvc service.AdminService, signer *token.Signer) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, adminSvc: adminSvc, signer: signer}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	g := e.Group("/api/admin")
	g.POST("/login", h.Login)
	g.GET("/hotels/stats", h.HotelStats, auth.Admin)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	admin, err := h.authSvc.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	tokenStr, err := h.signer.SignAdmin(admin.ID, admin.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	resp := dto.AdminAuthResponse{Token: tokenStr}
	resp.Admin.ID = admin.ID
	resp.Admin.Username = admin.Username
	resp.Admin.Role = admin.Role
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) HotelStats(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
	}

	stats, err := h.adminSvc.HotelStats(c.Request().Context(), year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching stats")
	}
	return c.JSON(http.StatusOK, stats)
}
