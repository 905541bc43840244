package order

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/cart"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type checkoutRequest struct {
	IsASAP                    bool           `json:"is_asap"`
	DatetimeToPickup          time.Time      `json:"datetime_to_pickup"`
	Items                     []pricing.Item `json:"items"`
	TipPercentage             *int64         `json:"tip_percentage"`
	TipValue                  money.Cents    `json:"tip_value"`
	IncludeNapkinsAndUtensils bool           `json:"include_napkins_and_utensils"`
	DiscountID                *string        `json:"discount_id"`
	GiftCardCode              *string        `json:"gift_card_code"`
}

// POST /orders/checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	placed, err := h.service.Checkout(c.Request.Context(), userID, cart.OrderDetails{
		DatetimeToPickup:          req.DatetimeToPickup,
		Items:                     req.Items,
		TipPercentage:             req.TipPercentage,
		TipValue:                  req.TipValue,
		IncludeNapkinsAndUtensils: req.IncludeNapkinsAndUtensils,
		DiscountID:                req.DiscountID,
	}, req.IsASAP, req.GiftCardCode)

	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrInvalidPickupTime) {
			// The slot went away between render and submit.
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// GET /orders/history
func (h *Handler) History(c *gin.Context) {
	orders, err := h.service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

// GET /admin/orders?status=RECEIVED
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// PATCH /admin/orders/:id/status
func (h *Handler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
