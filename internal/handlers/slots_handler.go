package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/middleware"
	ucScheduling "github.com/slotworks/team-scheduler/internal/usecase/scheduling"
)

// SlotsHandler lets an authenticated contractor see their own free
// slots for a day, same computation the public widget uses.
type SlotsHandler struct {
	slotsUC    *ucScheduling.GetAvailableSlots
	teamLoader *TeamLoader
}

func NewSlotsHandler(
	slotsUC *ucScheduling.GetAvailableSlots,
	teamLoader *TeamLoader,
) *SlotsHandler {
	return &SlotsHandler{
		slotsUC:    slotsUC,
		teamLoader: teamLoader,
	}
}

func (h *SlotsHandler) List(c *gin.Context) {
	contractorID := c.MustGet(middleware.ContextUserID).(uint)
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	team, ok := h.teamLoader.load(c, teamID)
	if !ok {
		return
	}

	date, err := parseDateInTeam(team, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.slotsUC.Execute(
		c.Request.Context(),
		domain.SlotsInput{
			TeamID:       teamID,
			ContractorID: contractorID,
			Date:         date,
		},
	)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.NotFound(c, "contractor_not_found", "Contractor not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute available times.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
