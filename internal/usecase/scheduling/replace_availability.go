package scheduling

import (
	"context"
	"time"

	"github.com/slotworks/team-scheduler/internal/audit"
	"github.com/slotworks/team-scheduler/internal/cache"
	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

type DayInput struct {
	Weekday   int
	StartTime string
	EndTime   string
}

type ReplaceWeeklyAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewReplaceWeeklyAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *ReplaceWeeklyAvailability {
	return &ReplaceWeeklyAvailability{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute swaps the full week wholesale. Exactly one entry per
// weekday 0-6 is required; anything less is rejected rather than
// default-filled, so a day never opens without the contractor saying
// so. The repository applies delete+insert in one transaction.
func (uc *ReplaceWeeklyAvailability) Execute(
	ctx context.Context,
	teamID uint,
	userID uint,
	days []DayInput,
) ([]models.Availability, error) {

	if len(days) != 7 {
		return nil, httperr.ErrValidation("exactly_seven_days_required")
	}

	var seen [7]bool
	entries := make([]models.Availability, 0, 7)

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, httperr.ErrValidation("invalid_weekday")
		}
		if seen[d.Weekday] {
			return nil, httperr.ErrValidation("duplicate_weekday")
		}
		seen[d.Weekday] = true

		start, err1 := time.Parse("15:04", d.StartTime)
		end, err2 := time.Parse("15:04", d.EndTime)
		if err1 != nil || err2 != nil {
			return nil, httperr.ErrValidation("invalid_time_format")
		}
		if !start.Before(end) {
			return nil, httperr.ErrValidation("invalid_time_range")
		}

		entries = append(entries, models.Availability{
			UserID:    userID,
			Weekday:   d.Weekday,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	week, err := uc.repo.ReplaceAvailability(ctx, userID, entries)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, userID)

	uc.audit.Dispatch(audit.Event{
		TeamID: teamID,
		UserID: &userID,
		Action: "availability_replaced",
		Entity: "availability",
	})

	return week, nil
}
