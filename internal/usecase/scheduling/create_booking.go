package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/slotworks/team-scheduler/internal/audit"
	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/notification"
	"github.com/slotworks/team-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	TeamID       uint
	ContractorID uint

	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string

	Address     string
	City        string
	State       string
	Description string

	Start time.Time
	// End is optional; zero means "one team slot after Start".
	End time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify *notification.Dispatcher
	audit  *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notify *notification.Dispatcher,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-validates the requested slot and commits it. The
// conflict check itself lives inside the repository transaction, so
// a stale slot list can never turn into a double-booking; losers of
// the race get a conflict error and re-fetch availability.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	team, err := uc.repo.GetTeamByID(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}

	contractor, err := uc.repo.GetContractor(ctx, in.TeamID, in.ContractorID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.CustomerFirstName) == "" ||
		strings.TrimSpace(in.CustomerLastName) == "" {
		return nil, httperr.ErrValidation("missing_customer_name")
	}

	start := in.Start
	end := in.End
	if end.IsZero() {
		duration := time.Duration(team.SlotDurationMin) * time.Minute
		if duration <= 0 {
			duration = time.Hour
		}
		end = start.Add(duration)
	}

	if !start.Before(end) {
		return nil, httperr.ErrValidation("invalid_interval")
	}

	now := timezone.NowIn(team.Timezone)
	minAllowed := now.Add(time.Duration(team.MinAdvanceMinutes) * time.Minute)
	if start.Before(minAllowed) {
		return nil, httperr.ErrValidation("too_soon")
	}

	if err := uc.assertWithinAvailability(ctx, in.ContractorID, start, end); err != nil {
		return nil, err
	}

	b := &models.Booking{
		TeamID:            in.TeamID,
		ContractorID:      in.ContractorID,
		CustomerFirstName: in.CustomerFirstName,
		CustomerLastName:  in.CustomerLastName,
		CustomerEmail:     in.CustomerEmail,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		Description:       in.Description,
		StartTime:         start,
		EndTime:           end,
		Status:            string(domain.StatusScheduled),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Notice{
		Recipient: contractor.Email,
		Booking:   b,
		Timezone:  team.Timezone,
	})

	uc.audit.Dispatch(audit.Event{
		TeamID:   in.TeamID,
		UserID:   &in.ContractorID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// assertWithinAvailability reads the weekly schedule straight from
// the store, never the cache; a commit must see the contractor's
// current hours.
func (uc *CreateBooking) assertWithinAvailability(
	ctx context.Context,
	contractorID uint,
	start time.Time,
	end time.Time,
) error {

	av, err := uc.repo.GetAvailability(ctx, contractorID, int(start.Weekday()))
	if err != nil {
		return err
	}
	if av == nil {
		return httperr.ErrValidation("outside_availability")
	}

	windowStart, windowEnd, ok := domain.DayWindow(start, av.StartTime, av.EndTime)
	if !ok {
		return httperr.ErrValidation("outside_availability")
	}

	if start.Before(windowStart) || end.After(windowEnd) {
		return httperr.ErrValidation("outside_availability")
	}

	return nil
}
