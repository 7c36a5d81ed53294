package handler

import (
	"errors"
	"net/http"
	"strconv"

	"guestdesk/internal/dto"
	"guestdesk/internal/middleware"
	"guestdesk/internal/models"
	"guestdesk/internal/service"
	"github.com/labstack/echo/v4"
)

type ComplaintHandler struct {
	svc service.ComplaintService
}

func NewComplaintHandler(svc service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

func (h *ComplaintHandler) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	g := e.Group("/api/complaints")

	// Staff
	g.GET("/hotel", h.ListHotelComplaints, auth.Staff)
	g.PATCH("/:complaintId/status", h.UpdateStatus, auth.Staff)
	g.POST("/:complaintId/staff-messages", h.AddStaffMessage, auth.Staff)
	g.DELETE("/:complaintId", h.Delete, auth.Staff)
	g.POST("/predefined", h.AddPredefined, auth.Staff)

	// Guest
	g.GET("/predefined/:hotelId", h.ListPredefined)
	g.POST("/submit", h.Submit, auth.Guest)
	g.GET("/guest", h.ListGuestComplaints, auth.Guest)
	g.POST("/:complaintId/messages", h.AddGuestMessage, auth.Guest)
}

func (h *ComplaintHandler) Submit(c echo.Context) error {
	guest := middleware.GuestFromContext(c)

	var req dto.SubmitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and description are required")
	}

	complaint, err := h.svc.Submit(c.Request().Context(), guest.ID, guest.HotelID, req.Title, req.Description, req.IsPredefined)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error submitting complaint")
	}
	return c.JSON(http.StatusCreated, dto.ToComplaintResponse(complaint))
}

func (h *ComplaintHandler) ListHotelComplaints(c echo.Context) error {
	complaints, err := h.svc.ListByHotel(c.Request().Context(), middleware.HotelID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching complaints")
	}
	return c.JSON(http.StatusOK, toComplaintResponses(complaints))
}

func (h *ComplaintHandler) ListGuestComplaints(c echo.Context) error {
	guest := middleware.GuestFromContext(c)
	complaints, err := h.svc.ListByGuest(c.Request().Context(), guest.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching complaints")
	}
	return c.JSON(http.StatusOK, toComplaintResponses(complaints))
}

func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.svc.UpdateStatus(c.Request().Context(), complaintID, middleware.HotelID(c), models.ComplaintStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error updating complaint")
		}
	}
	return c.JSON(http.StatusOK, dto.ToComplaintResponse(complaint))
}

func (h *ComplaintHandler) AddStaffMessage(c echo.Context) error {
	return h.addMessage(c, middleware.HotelID(c), true)
}

func (h *ComplaintHandler) AddGuestMessage(c echo.Context) error {
	guest := middleware.GuestFromContext(c)
	return h.addMessage(c, guest.ID, false)
}

func (h *ComplaintHandler) addMessage(c echo.Context, scopeID uint, staff bool) error {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		return err
	}

	var req dto.AddMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	complaint, err := h.svc.AddMessage(c.Request().Context(), complaintID, scopeID, staff, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrComplaintNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error adding message")
	}
	return c.JSON(http.StatusOK, dto.ToComplaintResponse(complaint))
}

func (h *ComplaintHandler) Delete(c echo.Context) error {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		return err
	}

	err = h.svc.Delete(c.Request().Context(), complaintID, middleware.HotelID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrComplaintNotResolved):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error deleting complaint")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Complaint deleted successfully"})
}

func (h *ComplaintHandler) AddPredefined(c echo.Context) error {
	var req dto.AddPredefinedComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	pc, err := h.svc.AddPredefined(c.Request().Context(), middleware.HotelID(c), req.Title)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error adding predefined complaint")
	}
	return c.JSON(http.StatusCreated, pc)
}

func (h *ComplaintHandler) ListPredefined(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	items, err := h.svc.ListPredefined(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching predefined complaints")
	}
	return c.JSON(http.StatusOK, items)
}

func parseComplaintID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("complaintId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid complaint id")
	}
	return uint(id), nil
}

func toComplaintResponses(complaints []models.Complaint) []dto.ComplaintResponse {
	resp := make([]dto.ComplaintResponse, len(complaints))
	for i := range complaints {
		resp[i] = dto.ToComplaintResponse(&complaints[i])
	}
	return resp
}
