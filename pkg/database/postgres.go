package database

import (
	"log"

	"github.com/itemshare/rental-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index backing the conflict scan: only WAITING/APPROVED
	// bookings can block a new interval
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_conflict
		ON bookings (item_id, start_date, end_date)
		WHERE status IN ('WAITING', 'APPROVED')
	`)

	return db
}
