package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/timezone"
)

type TeamHandler struct {
	db *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

type UpdateTeamConfigRequest struct {
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	SlotDurationMin   *int    `json:"slot_duration_min"`
	Timezone          *string `json:"timezone"`
}

func (h *TeamHandler) GetMeTeam(c *gin.Context) {
	teamIDVal, _ := c.Get(middleware.ContextTeamID)
	teamID := teamIDVal.(uint)

	var team models.Team
	if err := h.db.First(&team, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_not_found", "Team not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_team", "Failed to load team.")
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) UpdateMeTeam(c *gin.Context) {
	teamIDVal, _ := c.Get(middleware.ContextTeamID)
	teamID := teamIDVal.(uint)

	var team models.Team
	if err := h.db.First(&team, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_not_found", "Team not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_team", "Failed to load team.")
		return
	}

	var req UpdateTeamConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive minutes.")
			return
		}
		team.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.SlotDurationMin != nil {
		if *req.SlotDurationMin != 30 && *req.SlotDurationMin != 60 {
			httperr.BadRequest(c, "invalid_slot_duration", "Slot duration must be 30 or 60 minutes.")
			return
		}
		team.SlotDurationMin = *req.SlotDurationMin
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		team.Timezone = *req.Timezone
	}

	if err := h.db.Save(&team).Error; err != nil {
		httperr.Internal(c, "failed_to_update_team", "Failed to save team settings.")
		return
	}

	c.JSON(http.StatusOK, team)
}
