package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// PUBLIC
// --------------------------------------------------

// GET /menu
func (h *Handler) PublicMenu(c *gin.Context) {
	grouped, err := h.service.PublicMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": grouped})
}

// GET /menu/customizations
func (h *Handler) Customizations(c *gin.Context) {
	cats, err := h.service.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customizations"})
		return
	}
	choices, err := h.service.Choices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customizations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats, "choices": choices})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

// GET /admin/menu/items
func (h *Handler) AllItems(c *gin.Context) {
	items, err := h.service.AllItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /admin/menu/items
func (h *Handler) CreateItem(c *gin.Context) {
	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.service.CreateItem(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /admin/menu/items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item.ID = c.Param("id")

	if err := h.service.UpdateItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// PATCH /admin/menu/items/:id/availability
func (h *Handler) SetAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// POST /admin/menu/items/:id/photo
func (h *Handler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer f.Close()

	url, err := h.service.UploadPhoto(
		c.Request.Context(),
		c.Param("id"),
		f,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// POST /admin/menu/choices
func (h *Handler) CreateChoice(c *gin.Context) {
	var ch pricing.CustomizationChoice
	if err := c.ShouldBindJSON(&ch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.service.CreateChoice(c.Request.Context(), ch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
