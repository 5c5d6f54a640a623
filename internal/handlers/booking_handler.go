package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/httpresp"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/timezone"
	ucScheduling "github.com/slotworks/team-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC      *ucScheduling.CreateBooking
	cancelUC      *ucScheduling.CancelBooking
	listByDateUC  *ucScheduling.ListBookingsByDate
	listByMonthUC *ucScheduling.ListBookingsByMonth
	repo          domain.Repository
	teamLoader    *TeamLoader
}

func NewBookingHandler(
	createUC *ucScheduling.CreateBooking,
	cancelUC *ucScheduling.CancelBooking,
	listByDateUC *ucScheduling.ListBookingsByDate,
	listByMonthUC *ucScheduling.ListBookingsByMonth,
	repo domain.Repository,
	teamLoader *TeamLoader,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		repo:          repo,
		teamLoader:    teamLoader,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
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
// CREATE
// ======================================================

// Create books a slot for the authenticated contractor. The use case
// re-runs the conflict check inside the insert transaction, so a
// stale slot list here only costs the caller a 409 and a refresh.
func (h *BookingHandler) Create(c *gin.Context) {
	contractorID := c.MustGet(middleware.ContextUserID).(uint)
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	team, ok := h.teamLoader.load(c, teamID)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTimeInTeam(team, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucScheduling.CreateBookingInput{
		TeamID:            teamID,
		ContractorID:      contractorID,
		CustomerFirstName: req.CustomerFirstName,
		CustomerLastName:  req.CustomerLastName,
		CustomerEmail:     req.CustomerEmail,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Description:       req.Description,
		Start:             start,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
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

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), teamID, contractorID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	contractorID := c.MustGet(middleware.ContextUserID).(uint)
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), teamID, contractorID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ListForTeam is the owner's cross-contractor view over a date
// range. Defaults to the current week when no range is given.
func (h *BookingHandler) ListForTeam(c *gin.Context) {
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	team, ok := h.teamLoader.load(c, teamID)
	if !ok {
		return
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")

	var from, to time.Time
	var err error

	if fromStr == "" {
		now := timezone.NowIn(team.Timezone)
		from = now.AddDate(0, 0, -int(now.Weekday()))
		from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	} else {
		from, err = parseDateInTeam(team, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Invalid from date.")
			return
		}
	}

	if toStr == "" {
		to = from.AddDate(0, 0, 7)
	} else {
		to, err = parseDateInTeam(team, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Invalid to date.")
			return
		}
		to = to.AddDate(0, 0, 1)
	}

	if !from.Before(to) {
		httperr.BadRequest(c, "invalid_range", "From must be before to.")
		return
	}

	bookings, err := h.repo.ListBookingsForTeam(c.Request.Context(), teamID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(200, gin.H{"bookings": bookings})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	contractorID := c.MustGet(middleware.ContextUserID).(uint)
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), teamID, contractorID, uint(id))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsKind(err, httperr.KindValidation) {
			httperr.BadRequest(c, err.Error(), "Booking cannot be cancelled.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Failed to cancel booking.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingError translates use-case failures so callers can tell
// "someone just took this slot" (409, refresh and pick again) apart
// from "your input was invalid" (400).
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsKind(err, httperr.KindConflict):
		httperr.Conflict(c, err.Error(), "This slot was just taken. Pick another time.")
	case httperr.IsKind(err, httperr.KindValidation):
		httperr.BadRequest(c, err.Error(), "Invalid booking request.")
	case httperr.IsKind(err, httperr.KindNotFound):
		httperr.NotFound(c, err.Error(), "Not found.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}
