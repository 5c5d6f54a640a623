package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/slotworks/team-scheduler/internal/domain/scheduling"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Team / contractor
// --------------------------------------------------

func (r *BookingGormRepository) GetTeamByID(
	ctx context.Context,
	id uint,
) (*models.Team, error) {

	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("team_not_found")
		}
		return nil, err
	}
	return &team, nil
}

func (r *BookingGormRepository) GetContractor(
	ctx context.Context,
	teamID uint,
	contractorID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", contractorID, teamID).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("contractor_not_found")
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	userID uint,
	weekday int,
) (*models.Availability, error) {

	var av models.Availability
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weekday = ?", userID, weekday).
		First(&av).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no record = closed that day, not an error
			return nil, nil
		}
		return nil, err
	}

	return &av, nil
}

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
	userID uint,
) ([]models.Availability, error) {

	var week []models.Availability
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {
		return nil, err
	}

	return week, nil
}

// ReplaceAvailability swaps the whole weekly schedule in one
// transaction; readers never observe a partially edited week.
func (r *BookingGormRepository) ReplaceAvailability(
	ctx context.Context,
	userID uint,
	entries []models.Availability,
) ([]models.Availability, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListAvailability(ctx, userID)
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking serializes the read-then-write per contractor: the
// FOR UPDATE scan locks that contractor's scheduled bookings for the
// rest of the transaction, so two racing commits for overlapping
// intervals resolve to one insert and one conflict. The btree_gist
// exclusion constraint backs this up across anything the lock cannot
// see (23P01 maps to the same conflict code).
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"contractor_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
				b.ContractorID,
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict("time_conflict")
		}

		return tx.Create(b).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("time_conflict")
	}

	return err
}

// --------------------------------------------------
// Booking (reads)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	contractorID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"contractor_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			contractorID, end, start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	contractorID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Where(
			"contractor_id = ? AND start_time >= ? AND start_time < ?",
			contractorID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForTeam(
	ctx context.Context,
	teamID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Contractor").
		Where(
			"team_id = ? AND start_time >= ? AND start_time < ?",
			teamID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForContractor(
	ctx context.Context,
	bookingID uint,
	contractorID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND contractor_id = ?", bookingID, contractorID).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking_not_found")
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
