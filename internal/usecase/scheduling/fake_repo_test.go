package scheduling

import (
	"context"
	"sync"
	"time"

	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

type fakeRepo struct {
	getTeamByID             func(ctx context.Context, id uint) (*models.Team, error)
	getContractor           func(ctx context.Context, teamID, contractorID uint) (*models.User, error)
	getAvailability         func(ctx context.Context, userID uint, weekday int) (*models.Availability, error)
	listAvailability        func(ctx context.Context, userID uint) ([]models.Availability, error)
	replaceAvailability     func(ctx context.Context, userID uint, entries []models.Availability) ([]models.Availability, error)
	createBooking           func(ctx context.Context, b *models.Booking) error
	listBookingsForDay      func(ctx context.Context, contractorID uint, start, end time.Time) ([]models.Booking, error)
	listBookingsForPeriod   func(ctx context.Context, contractorID uint, start, end time.Time) ([]models.Booking, error)
	listBookingsForTeam     func(ctx context.Context, teamID uint, start, end time.Time) ([]models.Booking, error)
	getBookingForContractor func(ctx context.Context, bookingID, contractorID uint) (*models.Booking, error)
	updateBooking           func(ctx context.Context, b *models.Booking) error
}

func (f *fakeRepo) GetTeamByID(ctx context.Context, id uint) (*models.Team, error) {
	if f.getTeamByID == nil {
		panic("GetTeamByID not configured")
	}
	return f.getTeamByID(ctx, id)
}

func (f *fakeRepo) GetContractor(ctx context.Context, teamID, contractorID uint) (*models.User, error) {
	if f.getContractor == nil {
		panic("GetContractor not configured")
	}
	return f.getContractor(ctx, teamID, contractorID)
}

func (f *fakeRepo) GetAvailability(ctx context.Context, userID uint, weekday int) (*models.Availability, error) {
	if f.getAvailability == nil {
		panic("GetAvailability not configured")
	}
	return f.getAvailability(ctx, userID, weekday)
}

func (f *fakeRepo) ListAvailability(ctx context.Context, userID uint) ([]models.Availability, error) {
	if f.listAvailability == nil {
		panic("ListAvailability not configured")
	}
	return f.listAvailability(ctx, userID)
}

func (f *fakeRepo) ReplaceAvailability(ctx context.Context, userID uint, entries []models.Availability) ([]models.Availability, error) {
	if f.replaceAvailability == nil {
		panic("ReplaceAvailability not configured")
	}
	return f.replaceAvailability(ctx, userID, entries)
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createBooking == nil {
		panic("CreateBooking not configured")
	}
	return f.createBooking(ctx, b)
}

func (f *fakeRepo) ListBookingsForDay(ctx context.Context, contractorID uint, start, end time.Time) ([]models.Booking, error) {
	if f.listBookingsForDay == nil {
		panic("ListBookingsForDay not configured")
	}
	return f.listBookingsForDay(ctx, contractorID, start, end)
}

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, contractorID uint, start, end time.Time) ([]models.Booking, error) {
	if f.listBookingsForPeriod == nil {
		panic("ListBookingsForPeriod not configured")
	}
	return f.listBookingsForPeriod(ctx, contractorID, start, end)
}

func (f *fakeRepo) ListBookingsForTeam(ctx context.Context, teamID uint, start, end time.Time) ([]models.Booking, error) {
	if f.listBookingsForTeam == nil {
		panic("ListBookingsForTeam not configured")
	}
	return f.listBookingsForTeam(ctx, teamID, start, end)
}

func (f *fakeRepo) GetBookingForContractor(ctx context.Context, bookingID, contractorID uint) (*models.Booking, error) {
	if f.getBookingForContractor == nil {
		panic("GetBookingForContractor not configured")
	}
	return f.getBookingForContractor(ctx, bookingID, contractorID)
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if f.updateBooking == nil {
		panic("UpdateBooking not configured")
	}
	return f.updateBooking(ctx, b)
}

var _ domain.Repository = (*fakeRepo)(nil)

// memBookingStore mimics the serialized commit path of the real
// repository: conflict check and insert happen under one lock, the
// way the SQL transaction holds the row locks.
type memBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	nextID   uint
}

func (s *memBookingStore) create(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.ContractorID != b.ContractorID {
			continue
		}
		if existing.Status != string(domain.StatusScheduled) {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrConflict("time_conflict")
		}
	}

	s.nextID++
	b.ID = s.nextID
	s.bookings = append(s.bookings, *b)
	return nil
}
