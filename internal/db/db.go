package db

import (
	"log"
	"time"

	"github.com/autoservehq/autoserve-api/internal/config"
	"github.com/autoservehq/autoserve-api/internal/models"
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
		&models.User{},
		&models.Business{},
		&models.Service{},
		&models.Vehicle{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The slot invariant lives in the database: at most one non-rejected
	// booking per provider/category/date/time. The application pre-check
	// only exists to return a friendly error, so the process must not
	// come up without the index.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot
        ON bookings (provider_id, service_category, appointment_date, appointment_time)
        WHERE status <> 'rejected'
    `).Error; err != nil {
		log.Fatalf("failed to create booking slot index: %v", err)
	}

	if err := db.Exec(`
        UPDATE businesses
        SET timezone = 'UTC'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		log.Fatalf("failed to backfill business timezones: %v", err)
	}

	return db
}
