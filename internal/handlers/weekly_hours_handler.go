package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tapagenda/booking-api/internal/audit"
	"github.com/tapagenda/booking-api/internal/cache"
	"github.com/tapagenda/booking-api/internal/middleware"
	"github.com/tapagenda/booking-api/internal/models"
)

type WeeklyHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewWeeklyHoursHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	availability *cache.Availability,
) *WeeklyHoursHandler {
	return &WeeklyHoursHandler{db: db, audit: dispatcher, cache: availability}
}

type WeeklyDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsActive  bool   `json:"is_active"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type WeeklyHoursUpdateRequest struct {
	Days []WeeklyDayConfig `json:"days" binding:"required"`
}

func (h *WeeklyHoursHandler) Get(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var hours []models.WeeklyHour
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_weekly_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole week: existing rows are deleted and the
// submitted days reinserted, so a day left out of the payload ends up
// closed.
func (h *WeeklyHoursHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var req WeeklyHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_day_of_week"})
			return
		}
		seen[d.DayOfWeek] = true

		if d.IsActive && !validDayWindow(d.OpenTime, d.CloseTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day_window"})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", businessID).
			Delete(&models.WeeklyHour{}).Error; err != nil {
			return err
		}

		var toCreate []models.WeeklyHour
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WeeklyHour{
				BusinessID: businessID,
				DayOfWeek:  d.DayOfWeek,
				IsActive:   d.IsActive,
				OpenTime:   d.OpenTime,
				CloseTime:  d.CloseTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_weekly_hours"})
		return
	}

	// New hours change availability for every future date.
	h.cache.InvalidateAll(c.Request.Context(), businessID)

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "weekly_hours_replaced",
		Entity:     "weekly_hour",
		Metadata:   map[string]any{"days": len(req.Days)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validDayWindow requires "HH:MM" on both ends and open before close.
func validDayWindow(open, close string) bool {
	o, err := time.Parse("15:04", open)
	if err != nil {
		return false
	}
	cl, err := time.Parse("15:04", close)
	if err != nil {
		return false
	}
	return o.Before(cl)
}
