package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

func newMockRepo(t *testing.T) (*BookingGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewBookingGormRepository(gdb), mock
}

func at(h int) time.Time {
	return time.Date(2026, time.September, 7, h, 0, 0, 0, time.UTC)
}

func TestCreateBooking_InsertsWhenNoConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WithArgs(uint(7), at(14), at(13)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	b := &models.Booking{
		TeamID:            1,
		ContractorID:      7,
		CustomerFirstName: "Dana",
		CustomerLastName:  "Whitfield",
		StartTime:         at(13),
		EndTime:           at(14),
		Status:            "scheduled",
	}

	err := repo.CreateBooking(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, uint(42), b.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_RollsBackOnConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WithArgs(uint(7), at(14), at(13)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	b := &models.Booking{
		ContractorID: 7,
		StartTime:    at(13),
		EndTime:      at(14),
		Status:       "scheduled",
	}

	err := repo.CreateBooking(context.Background(), b)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailability_MissingDayIsClosedNotError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WithArgs(uint(7), 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "weekday", "start_time", "end_time"}))

	av, err := repo.GetAvailability(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Nil(t, av)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailability_ReturnsRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WithArgs(uint(7), 1, 1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "weekday", "start_time", "end_time"}).
				AddRow(3, 7, 1, "09:00", "17:00"),
		)

	av, err := repo.GetAvailability(context.Background(), 7, 1)
	require.NoError(t, err)
	require.NotNil(t, av)
	assert.Equal(t, "09:00", av.StartTime)
	assert.Equal(t, "17:00", av.EndTime)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAvailability_DeleteAndInsertInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "availabilities"`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectQuery(`INSERT INTO "availabilities"`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).
				AddRow(1).AddRow(2).AddRow(3).AddRow(4).AddRow(5).AddRow(6).AddRow(7),
		)
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WithArgs(uint(7)).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "weekday", "start_time", "end_time"}).
				AddRow(1, 7, 0, "09:00", "17:00").
				AddRow(2, 7, 1, "09:00", "17:00"),
		)

	entries := make([]models.Availability, 0, 7)
	for wd := 0; wd < 7; wd++ {
		entries = append(entries, models.Availability{
			UserID:    7,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	}

	week, err := repo.ReplaceAvailability(context.Background(), 7, entries)
	require.NoError(t, err)
	assert.Len(t, week, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsForDay_ScopedToContractorAndWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT "start_time","end_time" FROM "bookings"`).
		WithArgs(uint(7), at(17), at(9)).
		WillReturnRows(
			sqlmock.NewRows([]string{"start_time", "end_time"}).
				AddRow(at(13), at(14)),
		)

	bookings, err := repo.ListBookingsForDay(context.Background(), 7, at(9), at(17))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, at(13), bookings[0].StartTime)

	require.NoError(t, mock.ExpectationsWereMet())
}
