package database

import (
	"fmt"
	"log"
	"strings"

	"hris-backend/internal/config"
	"hris-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to Postgres when DATABASE_URL is set and falls back to the
// embedded SQLite file otherwise, then runs the migrations. The handle is
// returned to the caller; nothing in this package keeps global state.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.DatabaseURL != "" {
		// Railway delivers "postgres://..."; pgx accepts both schemes but
		// normalize anyway so copy-pasted "postgresql://" URLs also work.
		dsn := strings.Replace(cfg.DatabaseURL, "postgresql://", "postgres://", 1)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Conexión a base de datos establecida. Migración completada.")
	return db, nil
}

// Migrate ensures every table exists. Idempotent; replaces the old
// create-on-first-write behavior so read paths never race table creation.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.DailyAttendance{},
		&models.TrainingAttendance{},
		&models.Employee{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("error en AutoMigrate: %w", err)
	}
	return nil
}
