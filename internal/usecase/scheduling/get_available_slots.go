package scheduling

import (
	"context"
	"time"

	"github.com/slotworks/team-scheduler/internal/cache"
	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/models"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.SlotsInput,
) ([]domain.TimeSlot, error) {

	team, err := uc.repo.GetTeamByID(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetContractor(ctx, in.TeamID, in.ContractorID); err != nil {
		return nil, err
	}

	av, err := uc.weekdayAvailability(ctx, in.ContractorID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}
	if av == nil {
		// closed that day
		return []domain.TimeSlot{}, nil
	}

	windowStart, windowEnd, ok := domain.DayWindow(in.Date, av.StartTime, av.EndTime)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	duration := time.Duration(team.SlotDurationMin) * time.Minute
	if duration <= 0 {
		duration = time.Hour
	}

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		in.ContractorID,
		windowStart,
		windowEnd,
	)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(windowStart, windowEnd, duration)
	free := domain.FilterAvailable(slots, bookings)

	if free == nil {
		free = []domain.TimeSlot{}
	}
	return free, nil
}

// weekdayAvailability goes through the redis week cache before
// touching the store. Slot listing is read-heavy; commit-time checks
// never use this path.
func (uc *GetAvailableSlots) weekdayAvailability(
	ctx context.Context,
	contractorID uint,
	weekday int,
) (*models.Availability, error) {

	week, hit := uc.cache.GetWeek(ctx, contractorID)
	if !hit {
		var err error
		week, err = uc.repo.ListAvailability(ctx, contractorID)
		if err != nil {
			return nil, err
		}
		uc.cache.SetWeek(ctx, contractorID, week)
	}

	for i := range week {
		if week[i].Weekday == weekday {
			return &week[i], nil
		}
	}

	return nil, nil
}
