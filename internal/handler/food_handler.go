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

type FoodHandler struct {
	foodSvc  service.FoodService
	orderSvc service.OrderService
}

func NewFoodHandler(foodSvc service.FoodService, orderSvc service.OrderService) *FoodHandler {
	return &FoodHandler{foodSvc: foodSvc, orderSvc: orderSvc}
}

func (h *FoodHandler) RegisterRoutes(e *echo.Echo, auth *middleware.Auth) {
	g := e.Group("/api/food")

	g.GET("/menu/:hotelId", h.Menu)

	// Staff menu management
	g.POST("", h.AddFood, auth.Staff)
	g.GET("/hotel/:hotelId", h.ListAll, auth.Staff)
	g.PATCH("/:foodId", h.UpdateFood, auth.Staff)
	g.DELETE("/:foodId", h.DeleteFood, auth.Staff)

	// Orders
	g.POST("/orders", h.PlaceOrder, auth.Guest)
	g.GET("/orders/active", h.ListGuestOrders, auth.Guest)
	g.GET("/orders/hotel/:hotelId", h.ListHotelOrders, auth.Staff)
	g.PATCH("/orders/:orderId/status", h.UpdateOrderStatus, auth.Staff)
}

// Menu is the public, available-items-only listing guests order from.
func (h *FoodHandler) Menu(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	foods, err := h.foodSvc.ListMenu(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching menu")
	}
	return c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) AddFood(c echo.Context) error {
	var req dto.CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name and price (>0) are required")
	}

	food, err := h.foodSvc.AddFood(c.Request().Context(), middleware.HotelID(c), req.Name, req.Price, req.ImageURL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error adding food item")
	}
	return c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) ListAll(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}
	if uint(hotelID) != middleware.HotelID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not authorized for this hotel")
	}

	foods, err := h.foodSvc.ListAll(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching food items")
	}
	return c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) UpdateFood(c echo.Context) error {
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	var req dto.UpdateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	food, err := h.foodSvc.UpdateFood(c.Request().Context(), middleware.HotelID(c), uint(foodID), req)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error updating food item")
	}
	return c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c echo.Context) error {
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	if err := h.foodSvc.DeleteFood(c.Request().Context(), middleware.HotelID(c), uint(foodID)); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error deleting food item")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Food item deleted successfully"})
}

func (h *FoodHandler) PlaceOrder(c echo.Context) error {
	guest := middleware.GuestFromContext(c)

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderSvc.PlaceOrder(c.Request().Context(), guest, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrFoodUnavailable):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error placing order")
		}
	}
	return c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *FoodHandler) ListGuestOrders(c echo.Context) error {
	guest := middleware.GuestFromContext(c)

	orders, err := h.orderSvc.ListByGuest(c.Request().Context(), guest)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching orders")
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *FoodHandler) ListHotelOrders(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}
	if uint(hotelID) != middleware.HotelID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not authorized for this hotel")
	}

	orders, err := h.orderSvc.ListByHotel(c.Request().Context(), uint(hotelID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error fetching orders")
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *FoodHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	order, err := h.orderSvc.UpdateStatus(c.Request().Context(), middleware.HotelID(c), uint(orderID), models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error updating order status")
		}
	}
	return c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func toOrderResponses(orders []models.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = dto.ToOrderResponse(&orders[i])
	}
	return resp
}
