package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

func testTeam() *models.Team {
	return &models.Team{
		ID:              1,
		Name:            "Acme Field Services",
		Slug:            "acme",
		Timezone:        "UTC",
		SlotDurationMin: 60,
	}
}

func testContractor() *models.User {
	return &models.User{
		ID:        7,
		TeamID:    1,
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@example.com",
		Role:      "contractor",
	}
}

func openAllWeek(ctx context.Context, userID uint, weekday int) (*models.Availability, error) {
	return &models.Availability{
		UserID:    userID,
		Weekday:   weekday,
		StartTime: "09:00",
		EndTime:   "17:00",
	}, nil
}

func createBookingRepo(store *memBookingStore) *fakeRepo {
	return &fakeRepo{
		getTeamByID: func(ctx context.Context, id uint) (*models.Team, error) {
			return testTeam(), nil
		},
		getContractor: func(ctx context.Context, teamID, contractorID uint) (*models.User, error) {
			return testContractor(), nil
		},
		getAvailability: openAllWeek,
		createBooking: func(ctx context.Context, b *models.Booking) error {
			return store.create(b)
		},
	}
}

func futureMonday(hour int) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		TeamID:            1,
		ContractorID:      7,
		CustomerFirstName: "Dana",
		CustomerLastName:  "Whitfield",
		CustomerEmail:     "dana@example.com",
		Address:           "12 Oak St",
		City:              "Springfield",
		State:             "IL",
		Description:       "gutter repair",
		Start:             futureMonday(13),
	}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	store := &memBookingStore{}
	uc := NewCreateBooking(createBookingRepo(store), nil, nil)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, "scheduled", b.Status)
	assert.Equal(t, futureMonday(13), b.StartTime)
	assert.Equal(t, futureMonday(14), b.EndTime, "end defaults to one team slot after start")
}

func TestCreateBooking_MissingCustomerName(t *testing.T) {
	uc := NewCreateBooking(createBookingRepo(&memBookingStore{}), nil, nil)

	in := validInput()
	in.CustomerLastName = "   "

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.True(t, httperr.IsBusiness(err, "missing_customer_name"))
}

func TestCreateBooking_InvalidInterval(t *testing.T) {
	uc := NewCreateBooking(createBookingRepo(&memBookingStore{}), nil, nil)

	in := validInput()
	in.End = in.Start.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_interval"))
}

func TestCreateBooking_RejectsPastStart(t *testing.T) {
	uc := NewCreateBooking(createBookingRepo(&memBookingStore{}), nil, nil)

	in := validInput()
	in.Start = time.Now().UTC().Add(-2 * time.Hour)

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateBooking_ClosedDay(t *testing.T) {
	repo := createBookingRepo(&memBookingStore{})
	repo.getAvailability = func(ctx context.Context, userID uint, weekday int) (*models.Availability, error) {
		return nil, nil
	}
	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_availability"))
}

func TestCreateBooking_OutsideWindow(t *testing.T) {
	uc := NewCreateBooking(createBookingRepo(&memBookingStore{}), nil, nil)

	in := validInput()
	in.Start = futureMonday(18)

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_availability"))
}

func TestCreateBooking_ConflictSurfacesAsConflictKind(t *testing.T) {
	store := &memBookingStore{}
	uc := NewCreateBooking(createBookingRepo(store), nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestCreateBooking_AbuttingBookingsBothSucceed(t *testing.T) {
	store := &memBookingStore{}
	uc := NewCreateBooking(createBookingRepo(store), nil, nil)

	first := validInput()
	first.Start = futureMonday(9)

	second := validInput()
	second.Start = futureMonday(10)

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err, "a booking starting exactly when another ends is not a conflict")
}

func TestCreateBooking_ConcurrentCommitsOneWinner(t *testing.T) {
	store := &memBookingStore{}
	uc := NewCreateBooking(createBookingRepo(store), nil, nil)

	const writers = 8
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, httperr.IsKind(err, httperr.KindConflict),
			"losers must see a conflict, got %v", err)
	}

	assert.Equal(t, 1, successes, "exactly one concurrent commit may win the slot")
	assert.Len(t, store.bookings, 1)
}

func TestCreateBooking_DifferentContractorsCommitIndependently(t *testing.T) {
	store := &memBookingStore{}
	repo := createBookingRepo(store)
	repo.getContractor = func(ctx context.Context, teamID, contractorID uint) (*models.User, error) {
		c := testContractor()
		c.ID = contractorID
		return c, nil
	}
	uc := NewCreateBooking(repo, nil, nil)

	first := validInput()
	second := validInput()
	second.ContractorID = 8

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
}
