package database

import (
	"fmt"
	"log"
	"time"

	"github.com/befit/api/internal/config"
	"github.com/befit/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 10

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		})
		if err == nil {
			sqlDB, _ := db.DB()
			if pingErr := sqlDB.Ping(); pingErr == nil {
				return db, nil
			}
		}

		log.Printf("Database connection attempt %d failed: %v", i, err)

		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.ExerciseType{},
		&model.TrainingSession{},
		&model.ExerciseExecution{},
	)
	if err != nil {
		return err
	}

	// Create unique index for users (provider, provider_id)
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_provider_provider_id ON users(provider, provider_id)")

	// Session listings and the statistics window both filter on owner and start time
	db.Exec("CREATE INDEX IF NOT EXISTS idx_training_sessions_user_start ON training_sessions(user_id, start_time)")

	return nil
}
