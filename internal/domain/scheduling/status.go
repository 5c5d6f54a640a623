package scheduling

import "github.com/slotworks/team-scheduler/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// CanCancel defines whether a booking may still be cancelled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrValidation("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
