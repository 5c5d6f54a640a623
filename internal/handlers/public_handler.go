package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
	ucScheduling "github.com/slotworks/team-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the embeddable booking widget. No JWT here;
// requests authenticate with the team's widget key so a page embed
// can call the API without a session.
type PublicHandler struct {
	teamLoader *TeamLoader
	slotsUC    *ucScheduling.GetAvailableSlots
	createUC   *ucScheduling.CreateBooking
}

func NewPublicHandler(
	teamLoader *TeamLoader,
	slotsUC *ucScheduling.GetAvailableSlots,
	createUC *ucScheduling.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		teamLoader: teamLoader,
		slotsUC:    slotsUC,
		createUC:   createUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicCreateBookingRequest struct {
	ContractorID uint `json:"contractor_id" binding:"required"`

	CustomerFirstName string `json:"customer_first_name" binding:"required"`
	CustomerLastName  string `json:"customer_last_name" binding:"required"`
	CustomerEmail     string `json:"customer_email"`

	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// WIDGET KEY
// ======================================================

func (h *PublicHandler) authorizeWidget(c *gin.Context, team *models.Team) bool {
	key := c.GetHeader("X-Widget-Key")
	if key == "" || key != team.WidgetKey {
		httperr.Forbidden(c, "invalid_widget_key", "Invalid widget key.")
		return false
	}
	return true
}

// ======================================================
// CONTRACTORS
// ======================================================

func (h *PublicHandler) ListContractors(c *gin.Context) {
	team, ok := h.teamLoader.loadBySlug(c, c.Param("slug"))
	if !ok {
		return
	}
	if !h.authorizeWidget(c, team) {
		return
	}

	var members []models.User
	if err := h.teamLoader.db.
		Where("team_id = ?", team.ID).
		Order("id ASC").
		Find(&members).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contractors", "Failed to list contractors.")
		return
	}

	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"id":         m.ID,
			"first_name": m.FirstName,
			"last_name":  m.LastName,
			"avatar_url": m.AvatarURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"team": gin.H{
			"id":       team.ID,
			"name":     team.Name,
			"slug":     team.Slug,
			"timezone": team.Timezone,
		},
		"contractors": out,
	})
}

// ======================================================
// AVAILABLE TIMES
// ======================================================

func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	team, ok := h.teamLoader.loadBySlug(c, c.Param("slug"))
	if !ok {
		return
	}
	if !h.authorizeWidget(c, team) {
		return
	}

	dateStr := c.Query("date")
	contractorIDStr := c.Query("contractor_id")

	if dateStr == "" || contractorIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and contractor are required.")
		return
	}

	contractorID, err := strconv.ParseUint(contractorIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_contractor_id", "Invalid contractor.")
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
			TeamID:       team.ID,
			ContractorID: uint(contractorID),
			Date:         date,
		},
	)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.BadRequest(c, "contractor_not_found", "Invalid contractor.")
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

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	team, ok := h.teamLoader.loadBySlug(c, c.Param("slug"))
	if !ok {
		return
	}
	if !h.authorizeWidget(c, team) {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTimeInTeam(team, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucScheduling.CreateBookingInput{
			TeamID:            team.ID,
			ContractorID:      req.ContractorID,
			CustomerFirstName: req.CustomerFirstName,
			CustomerLastName:  req.CustomerLastName,
			CustomerEmail:     req.CustomerEmail,
			Address:           req.Address,
			City:              req.City,
			State:             req.State,
			Description:       req.Description,
			Start:             start,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         b.ID,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
		"status":     b.Status,
	})
}
