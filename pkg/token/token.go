package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const (
	staffTTL = 7 * 24 * time.Hour
	guestTTL = 7 * 24 * time.Hour
	adminTTL = 24 * time.Hour
)

type StaffClaims struct {
	HotelID uint `json:"hotel_id"`
	jwt.RegisteredClaims
}

type GuestClaims struct {
	GuestID uint `json:"guest_id"`
	// CheckOutDate is embedded so middleware can end the session when the
	// stay expires, independently of the token's own expiry.
	CheckOutDate time.Time `json:"check_out_date"`
	jwt.RegisteredClaims
}

type AdminClaims struct {
	AdminID uint   `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and verifies the three session token kinds. All tokens are
// HS256 with a shared secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) SignStaff(hotelID uint) (string, error) {
	claims := StaffClaims{
		HotelID:          hotelID,
		RegisteredClaims: registered(staffTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) SignGuest(guestID uint, checkOutDate time.Time) (string, error) {
	claims := GuestClaims{
		GuestID:          guestID,
		CheckOutDate:     checkOutDate,
		RegisteredClaims: registered(guestTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) SignAdmin(adminID uint, role string) (string, error) {
	claims := AdminClaims{
		AdminID:          adminID,
		Role:             role,
		RegisteredClaims: registered(adminTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) VerifyStaff(tokenStr string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	if err := s.verify(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.HotelID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Signer) VerifyGuest(tokenStr string) (*GuestClaims, error) {
	claims := &GuestClaims{}
	if err := s.verify(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.GuestID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Signer) VerifyAdmin(tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := s.verify(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.AdminID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Signer) verify(tokenStr string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

func registered(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}
