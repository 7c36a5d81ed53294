package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/middleware"
	"guestdesk/internal/models"
	"guestdesk/internal/service"
	"guestdesk/pkg/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock GuestService ---

type mockGuestService struct {
	registerFn     func(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, checkOut time.Time) (*service.RegistrationOutcome, error)
	getFn          func(ctx context.Context, id uint) (*models.Guest, error)
	listPendingFn  func(ctx context.Context, hotelID uint) ([]models.Guest, error)
	listApprovedFn func(ctx context.Context, hotelID uint) ([]models.Guest, error)
	approveFn      func(ctx context.Context, hotelID, guestID uint) (*models.Guest, error)
	rejectFn       func(ctx context.Context, hotelID, guestID uint, reason string) (*models.Guest, error)
}

func (m *mockGuestService) Register(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, checkOut time.Time) (*service.RegistrationOutcome, error) {
	return m.registerFn(ctx, hotelID, name, roomNumber, mobileNumber, checkOut)
}
func (m *mockGuestService) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	return m.getFn(ctx, id)
}
func (m *mockGuestService) ListPending(ctx context.Context, hotelID uint) ([]models.Guest, error) {
	return m.listPendingFn(ctx, hotelID)
}
func (m *mockGuestService) ListApproved(ctx context.Context, hotelID uint) ([]models.Guest, error) {
	return m.listApprovedFn(ctx, hotelID)
}
func (m *mockGuestService) Approve(ctx context.Context, hotelID, guestID uint) (*models.Guest, error) {
	return m.approveFn(ctx, hotelID, guestID)
}
func (m *mockGuestService) Reject(ctx context.Context, hotelID, guestID uint, reason string) (*models.Guest, error) {
	return m.rejectFn(ctx, hotelID, guestID, reason)
}

// --- Mock HotelRepository ---

type mockHotelRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Hotel, error)
}

func (m *mockHotelRepo) Create(ctx context.Context, hotel *models.Hotel) error { return nil }
func (m *mockHotelRepo) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockHotelRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockHotelRepo) FindByEmail(ctx context.Context, email string) (*models.Hotel, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockHotelRepo) FindByEmailOrName(ctx context.Context, email, name string) (*models.Hotel, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockHotelRepo) FindAll(ctx context.Context) ([]models.Hotel, error) { return nil, nil }
func (m *mockHotelRepo) UpdateSettings(ctx context.Context, id uint, maxRooms, rangeStart, rangeEnd int) error {
	return nil
}
func (m *mockHotelRepo) GetDB() *gorm.DB { return nil }

var testSigner = token.NewSigner("test-secret")

// --- Tests ---

func TestRegister_Handler_Pending(t *testing.T) {
	checkOut := time.Now().Add(72 * time.Hour)
	svc := &mockGuestService{
		registerFn: func(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, co time.Time) (*service.RegistrationOutcome, error) {
			return &service.RegistrationOutcome{
				Guest: &models.Guest{
					ID:           1,
					Name:         "JOHN SMITH",
					RoomNumber:   roomNumber,
					MobileNumber: mobileNumber,
					CheckOutDate: co,
					Status:       models.GuestPending,
					HotelID:      hotelID,
				},
			}, nil
		},
	}

	e := echo.New()
	body, _ := json.Marshal(dto.RegisterGuestRequest{
		Name:         "John Smith",
		RoomNumber:   "105",
		MobileNumber: "9876543210",
		CheckOutDate: checkOut,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/guests/register/1", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RegistrationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.GuestPending, resp.Guest.Status)
	assert.Contains(t, resp.Message, "Awaiting staff approval")
}

func TestRegister_Handler_AutoApproved(t *testing.T) {
	svc := &mockGuestService{
		registerFn: func(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, co time.Time) (*service.RegistrationOutcome, error) {
			return &service.RegistrationOutcome{
				Guest: &models.Guest{
					ID:           7,
					Name:         "JOHN SMITH",
					RoomNumber:   roomNumber,
					CheckOutDate: co,
					Status:       models.GuestApproved,
					HotelID:      hotelID,
				},
				AutoApproved: true,
			}, nil
		},
	}

	e := echo.New()
	body := `{"name":"John Smith","room_number":"105","mobile_number":"9876543210","check_out_date":"2026-09-05T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/guests/register/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RegistrationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.Guest.ID)
	assert.Contains(t, resp.Message, "Welcome back")
}

func TestRegister_Handler_MissingFields(t *testing.T) {
	e := echo.New()
	body := `{"name":"John Smith"}`
	req := httptest.NewRequest(http.MethodPost, "/api/guests/register/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")

	h := NewGuestHandler(nil, nil, testSigner)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRegister_Handler_RoomOccupied(t *testing.T) {
	svc := &mockGuestService{
		registerFn: func(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, co time.Time) (*service.RegistrationOutcome, error) {
			return nil, service.ErrRoomOccupied
		},
	}

	e := echo.New()
	body := `{"name":"Jane Doe","room_number":"105","mobile_number":"1112223334","check_out_date":"2026-09-05T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/guests/register/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRegister_Handler_HotelNotFound(t *testing.T) {
	svc := &mockGuestService{
		registerFn: func(ctx context.Context, hotelID uint, name, roomNumber, mobileNumber string, co time.Time) (*service.RegistrationOutcome, error) {
			return nil, service.ErrHotelNotFound
		},
	}

	e := echo.New()
	body := `{"name":"John Smith","room_number":"105","mobile_number":"9876543210","check_out_date":"2026-09-05T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/guests/register/999", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("999")

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestVerifyHotel_Handler_Success(t *testing.T) {
	repo := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Hotel, error) {
			return &models.Hotel{ID: id, HotelName: "Sea View"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/verify-hotel/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")

	h := NewGuestHandler(nil, repo, testSigner)
	err := h.VerifyHotel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sea View")
}

func TestVerifyHotel_Handler_NotFound(t *testing.T) {
	repo := &mockHotelRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Hotel, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/verify-hotel/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("999")

	h := NewGuestHandler(nil, repo, testSigner)
	err := h.VerifyHotel(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetStatus_Handler_Success(t *testing.T) {
	svc := &mockGuestService{
		getFn: func(ctx context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id, Status: models.GuestRejected, RejectionReason: "wrong room"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/status/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("guestId")
	c.SetParamValues("1")

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.GetStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GuestStatusResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.GuestRejected, resp.Status)
	assert.Equal(t, "wrong room", resp.Guest.RejectionReason)
}

func TestListPending_Handler_WrongHotel(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/pending/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("2")
	c.Set(middleware.ContextHotelID, uint(1))

	h := NewGuestHandler(nil, nil, testSigner)
	err := h.ListPending(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestListPending_Handler_Success(t *testing.T) {
	svc := &mockGuestService{
		listPendingFn: func(ctx context.Context, hotelID uint) ([]models.Guest, error) {
			return []models.Guest{
				{ID: 1, Name: "JOHN SMITH", Status: models.GuestPending, HotelID: hotelID},
				{ID: 2, Name: "JANE DOE", Status: models.GuestPending, HotelID: hotelID},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/pending/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("hotelId")
	c.SetParamValues("1")
	c.Set(middleware.ContextHotelID, uint(1))

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.ListPending(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.GuestResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestApprove_Handler_Success(t *testing.T) {
	svc := &mockGuestService{
		approveFn: func(ctx context.Context, hotelID, guestID uint) (*models.Guest, error) {
			return &models.Guest{ID: guestID, Status: models.GuestApproved, HotelID: hotelID}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/guests/approve/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("guestId")
	c.SetParamValues("1")
	c.Set(middleware.ContextHotelID, uint(1))

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Approve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "approved")
}

func TestApprove_Handler_RoomOccupied(t *testing.T) {
	svc := &mockGuestService{
		approveFn: func(ctx context.Context, hotelID, guestID uint) (*models.Guest, error) {
			return nil, service.ErrRoomOccupied
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/guests/approve/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("guestId")
	c.SetParamValues("2")
	c.Set(middleware.ContextHotelID, uint(1))

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Approve(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReject_Handler_Success(t *testing.T) {
	var capturedReason string
	svc := &mockGuestService{
		rejectFn: func(ctx context.Context, hotelID, guestID uint, reason string) (*models.Guest, error) {
			capturedReason = reason
			return &models.Guest{ID: guestID, Status: models.GuestRejected, RejectionReason: reason}, nil
		},
	}

	e := echo.New()
	body := `{"reason":"room already assigned"}`
	req := httptest.NewRequest(http.MethodPost, "/api/guests/reject/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("guestId")
	c.SetParamValues("1")
	c.Set(middleware.ContextHotelID, uint(1))

	h := NewGuestHandler(svc, nil, testSigner)
	err := h.Reject(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "room already assigned", capturedReason)
}
