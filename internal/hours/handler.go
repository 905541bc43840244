package hours

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
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

// GET /hours
func (h *Handler) GetWeek(c *gin.Context) {
	week, err := h.service.Week(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": week})
}

// GET /hours/slots?date=2026-09-01
func (h *Handler) GetSlots(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", raw, Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.service.SlotsForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": raw, "slots": slots})
}

// GET /hours/holidays
func (h *Handler) GetHolidays(c *gin.Context) {
	holidays, err := h.service.Holidays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load holidays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": holidays})
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------

// PUT /admin/hours
func (h *Handler) ReplaceWeek(c *gin.Context) {
	var req struct {
		Hours []OperatingHours `json:"hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.ReplaceWeek(c.Request.Context(), req.Hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// POST /admin/hours/holidays
func (h *Handler) AddHoliday(c *gin.Context) {
	var req struct {
		Date              string `json:"date"`
		IsRecurringAnnual bool   `json:"is_recurring_annual"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	holiday, err := h.service.AddHoliday(c.Request.Context(), date, req.IsRecurringAnnual)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, holiday)
}

// DELETE /admin/hours/holidays/:id
func (h *Handler) RemoveHoliday(c *gin.Context) {
	if err := h.service.RemoveHoliday(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/hours/pause
func (h *Handler) PauseIntake(c *gin.Context) {
	var req struct {
		ResumeAt string `json:"resume_at"` // RFC 3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resumeAt, err := time.Parse(time.RFC3339, req.ResumeAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume_at must be RFC 3339"})
		return
	}

	if err := h.service.PauseIntakeUntil(c.Request.Context(), resumeAt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paused", "resume_at": req.ResumeAt})
}

// POST /admin/hours/resume
func (h *Handler) ResumeIntake(c *gin.Context) {
	if err := h.service.ResumeIntake(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resumed"})
}
