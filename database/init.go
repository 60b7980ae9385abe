package database

import (
	"context"

	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

// InitializeDatabase prepares the store for serving: it checks the store answers,
// creates missing tables and writes missing seed rows, in that order.
// Any error means the application must not start accepting requests.
func InitializeDatabase(ctx context.Context, db *gorm.DB, seed Seed) error {
	sqlDB, err := db.DB()
	if err != nil {
		return &ConnectionError{Driver: db.Dialector.Name(), Attempts: 1, Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &ConnectionError{Driver: db.Dialector.Name(), Attempts: 1, Err: err}
	}

	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}

	report, err := EnsureSeedData(ctx, db, seed)
	if err != nil {
		utils.ErrorLogger.Errorf("Seeding aborted: %v", err)
		return err
	}

	utils.InfoLogger.WithField("inserted", report.Total()).Info("Database initialized")
	return nil
}
