package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /cart
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	details, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// PUT /cart. The client sends the whole aggregate every time.
func (h *Handler) Replace(c *gin.Context) {
	userID := c.GetString("userID")

	var details OrderDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.service.Replace(c.Request.Context(), userID, details)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
