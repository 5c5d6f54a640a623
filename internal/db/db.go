package db

import (
	"log"
	"time"

	"github.com/slotworks/team-scheduler/internal/config"
	"github.com/slotworks/team-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Availability{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Database-level backstop for the commit-time conflict check:
	// two scheduled bookings for one contractor can never hold
	// overlapping [start, end) ranges, no matter how many API
	// processes race. 23P01 from this constraint is surfaced as a
	// booking conflict.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE bookings
        ADD CONSTRAINT bookings_no_overlap
        EXCLUDE USING gist (
            contractor_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status = 'scheduled')
    `)

	return db
}
