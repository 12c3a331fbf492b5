package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "stayflow/backoffice/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AppSetting{},
		&models.Property{},
		&models.Room{},
		&models.Booking{},
		&models.GuestCheckIn{},
		&models.SyncLog{},
		&models.StaffAssignment{},
		&models.Message{},
	)
}
