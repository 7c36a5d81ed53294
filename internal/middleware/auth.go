package middleware

import (
	"net/http"
	"strings"
	"time"

	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/pkg/token"
	"github.com/labstack/echo/v4"
)

const (
	ContextHotelID = "hotelID"
	ContextGuest   = "guest"
	ContextAdminID = "adminID"

	staffCookie = "staffToken"
	guestCookie = "guestToken"
)

// Auth resolves tenant/guest identity from a bearer token or cookie and
// stores it on the echo context for handlers.
type Auth struct {
	signer    *token.Signer
	hotelRepo repository.HotelRepository
	guestRepo repository.GuestRepository
}

func NewAuth(signer *token.Signer, hotelRepo repository.HotelRepository, guestRepo repository.GuestRepository) *Auth {
	return &Auth{signer: signer, hotelRepo: hotelRepo, guestRepo: guestRepo}
}

func (a *Auth) Staff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr := extractToken(c, staffCookie)
		if tokenStr == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		claims, err := a.signer.VerifyStaff(tokenStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		if _, err := a.hotelRepo.FindByID(c.Request().Context(), claims.HotelID); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "hotel not found")
		}

		c.Set(ContextHotelID, claims.HotelID)
		return next(c)
	}
}

func (a *Auth) Guest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr := extractToken(c, guestCookie)
		if tokenStr == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "guest authentication required")
		}

		claims, err := a.signer.VerifyGuest(tokenStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		// The session ends with the stay, whatever the token's own expiry.
		if !claims.CheckOutDate.After(time.Now()) {
			return echo.NewHTTPError(http.StatusUnauthorized, "stay period has expired")
		}

		guest, err := a.guestRepo.FindByID(c.Request().Context(), claims.GuestID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "guest not found")
		}
		if guest.Status != models.GuestApproved {
			return echo.NewHTTPError(http.StatusForbidden, "awaiting staff approval")
		}

		c.Set(ContextGuest, guest)
		return next(c)
	}
}

func (a *Auth) Admin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr := extractToken(c, "")
		if tokenStr == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		claims, err := a.signer.VerifyAdmin(tokenStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(ContextAdminID, claims.AdminID)
		return next(c)
	}
}

// HotelID returns the authenticated hotel set by the Staff middleware.
func HotelID(c echo.Context) uint {
	id, _ := c.Get(ContextHotelID).(uint)
	return id
}

// GuestFromContext returns the authenticated guest set by the Guest middleware.
func GuestFromContext(c echo.Context) *models.Guest {
	guest, _ := c.Get(ContextGuest).(*models.Guest)
	return guest
}

func extractToken(c echo.Context, cookieName string) string {
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}
