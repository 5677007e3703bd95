package database

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kyamashita/study-tracker-api/internal/config"
	"github.com/kyamashita/study-tracker-api/internal/models"
)

var DB *gorm.DB

// Connect opens the SQLite database. The default DSN is ":memory:", so
// all data lives in process memory and is gone on restart; pointing
// DB_PATH at a file makes it durable instead.
func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Each pooled connection to ":memory:" would get its own empty
	// database, so the whole process must share a single connection.
	if cfg.DBPath == ":memory:" {
		sqlDB, err := DB.DB()
		if err != nil {
			return fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("Database connection established", "path", cfg.DBPath)
	return nil
}

func Migrate() error {
	log.Info("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Session{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
