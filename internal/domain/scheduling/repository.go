package scheduling

import (
	"context"
	"time"

	"github.com/slotworks/team-scheduler/internal/models"
)

type Repository interface {
	// -------- Team / contractor --------
	GetTeamByID(
		ctx context.Context,
		id uint,
	) (*models.Team, error)

	GetContractor(
		ctx context.Context,
		teamID uint,
		contractorID uint,
	) (*models.User, error)

	// -------- Availability --------
	// GetAvailability returns (nil, nil) when the contractor has no
	// hours for that weekday.
	GetAvailability(
		ctx context.Context,
		userID uint,
		weekday int,
	) (*models.Availability, error)

	ListAvailability(
		ctx context.Context,
		userID uint,
	) ([]models.Availability, error)

	ReplaceAvailability(
		ctx context.Context,
		userID uint,
		entries []models.Availability,
	) ([]models.Availability, error)

	// -------- Booking (create / conflict) --------
	// CreateBooking runs the conflict check and the insert in one
	// transaction; a lost race surfaces as a conflict error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (reads) --------
	ListBookingsForDay(
		ctx context.Context,
		contractorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		contractorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForTeam(
		ctx context.Context,
		teamID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	GetBookingForContractor(
		ctx context.Context,
		bookingID uint,
		contractorID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
