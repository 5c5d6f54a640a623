package scheduling

import (
	"context"

	"github.com/slotworks/team-scheduler/internal/audit"
	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	teamID uint,
	contractorID uint,
	bookingID uint,
) (*models.Booking, error) {

	team, err := uc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForContractor(ctx, bookingID, contractorID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(team.Timezone)
	b.Status = string(domain.StatusCancelled)
	b.CancelledAt = &now

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TeamID:   teamID,
		UserID:   &contractorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
