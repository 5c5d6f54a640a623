package handlers

import (
	"time"

	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/timezone"
)

// All instants are stored absolute; the team zone only matters when
// parsing customer-facing date/time strings and rendering responses.

func locationFromTeam(team *models.Team) *time.Location {
	if team != nil {
		return timezone.Location(team.Timezone)
	}
	return timezone.Location("")
}

func parseDateInTeam(team *models.Team, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromTeam(team),
	)
}

func parseDateTimeInTeam(
	team *models.Team,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromTeam(team),
	)
}
