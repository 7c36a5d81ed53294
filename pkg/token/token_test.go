package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffToken_RoundTrip(t *testing.T) {
	s := NewSigner("test-secret")

	tok, err := s.SignStaff(42)
	require.NoError(t, err)

	claims, err := s.VerifyStaff(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.HotelID)
}

func TestGuestToken_CarriesCheckOutDate(t *testing.T) {
	s := NewSigner("test-secret")
	checkOut := time.Now().Add(72 * time.Hour).Truncate(time.Second)

	tok, err := s.SignGuest(7, checkOut)
	require.NoError(t, err)

	claims, err := s.VerifyGuest(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.GuestID)
	assert.True(t, claims.CheckOutDate.Equal(checkOut))
}

func TestAdminToken_RoundTrip(t *testing.T) {
	s := NewSigner("test-secret")

	tok, err := s.SignAdmin(1, "superadmin")
	require.NoError(t, err)

	claims, err := s.VerifyAdmin(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.AdminID)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewSigner("secret-a").SignStaff(1)
	require.NoError(t, err)

	_, err = NewSigner("secret-b").VerifyStaff(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKind(t *testing.T) {
	s := NewSigner("test-secret")

	guestTok, err := s.SignGuest(7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// a guest token has no hotel_id claim, so it cannot pass staff checks
	_, err = s.VerifyStaff(guestTok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	s := NewSigner("test-secret")

	_, err := s.VerifyStaff("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
