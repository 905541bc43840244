package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GET /discounts (public: the storefront shows which offers are live)
func (h *Handler) ListDiscounts(c *gin.Context) {
	discounts, err := h.repo.ListDiscounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load discounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"discounts": discounts})
}

// POST /admin/discounts
func (h *Handler) CreateDiscount(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	d, err := h.repo.CreateDiscount(c.Request.Context(), Discount{Name: req.Name})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// DELETE /admin/discounts/:id
func (h *Handler) DeactivateDiscount(c *gin.Context) {
	if err := h.repo.DeactivateDiscount(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
