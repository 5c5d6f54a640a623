package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/models"
	ucScheduling "github.com/slotworks/team-scheduler/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	db        *gorm.DB
	replaceUC *ucScheduling.ReplaceWeeklyAvailability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	replaceUC *ucScheduling.ReplaceWeeklyAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:        db,
		replaceUC: replaceUC,
	}
}

type AvailabilityDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var week []models.Availability
	if err := h.db.
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {

		httperr.Internal(c, "failed_to_get_availability", "Failed to load availability.")
		return
	}

	c.JSON(http.StatusOK, week)
}

// Update replaces the whole week at once. "Copy to all days" in the
// UI is just seven identical entries through this same endpoint.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	days := make([]ucScheduling.DayInput, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, ucScheduling.DayInput{
			Weekday:   d.Weekday,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	week, err := h.replaceUC.Execute(c.Request.Context(), teamID, userID, days)
	if err != nil {
		if httperr.IsKind(err, httperr.KindValidation) {
			httperr.BadRequest(c, err.Error(), "Invalid weekly schedule.")
			return
		}
		httperr.Internal(c, "failed_to_save_availability", "Failed to save availability.")
		return
	}

	c.JSON(http.StatusOK, week)
}
