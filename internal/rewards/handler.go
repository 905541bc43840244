package rewards

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/money"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /rewards/account
func (h *Handler) Account(c *gin.Context) {
	userID := c.GetString("userID")

	acct, err := h.service.Account(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rewards"})
		return
	}

	birthdayOK, err := h.service.BirthdayEligible(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rewards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points":                    acct.Points,
		"points_redeem_threshold":   RedeemThreshold,
		"birthday_reward_available": birthdayOK,
	})
}

// PUT /rewards/birthday
func (h *Handler) SetBirthday(c *gin.Context) {
	var req struct {
		Month int `json:"month"`
		Day   int `json:"day"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetBirthday(c.Request.Context(), c.GetString("userID"), req.Month, req.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// POST /rewards/redeem
func (h *Handler) RedeemPoints(c *gin.Context) {
	if err := h.service.SpendPoints(c.Request.Context(), c.GetString("userID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "redeemed"})
}

// GET /giftcards/:code
func (h *Handler) GiftCardBalance(c *gin.Context) {
	card, err := h.service.GiftCardBalance(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": card.Code, "balance": card.Balance, "active": card.Active})
}

// POST /admin/giftcards
func (h *Handler) IssueGiftCard(c *gin.Context) {
	var req struct {
		Amount money.Cents `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	card, err := h.service.IssueGiftCard(c.Request.Context(), req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}
