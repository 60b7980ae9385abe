package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-ai/database"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for DB_DRIVER.
func Dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite", "sqlite3":
		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	case "mysql", "mariadb":
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// sqliteDSN makes transactions take the write lock at BEGIN unless the DSN picks a mode.
// With deferred transactions two starting processes can both see a table missing and
// the second writer fails with "database is locked" instead of waiting.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_txlock=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_txlock=immediate"
	}
	return dsn + "?_txlock=immediate"
}

// InitDB opens the store described by cfg. The returned handle is owned by the caller.
func InitDB(ctx context.Context, cfg DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, &database.ConnectionError{Driver: cfg.Driver, Attempts: 1, Err: err}
	}

	db, err := OpenDialector(ctx, dialector, cfg)
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is a separate database
	if dialector.Name() == "sqlite" && strings.Contains(cfg.DSN, ":memory:") {
		sqlDB, _ := db.DB()
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// OpenDialector opens and pings the store, retrying both steps up to
// cfg.ConnectAttempts times with a linearly growing pause.
func OpenDialector(ctx context.Context, dialector gorm.Dialector, cfg DatabaseConfig) (*gorm.DB, error) {
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	gormConfig := &gorm.Config{
		DisableAutomaticPing: true,
		Logger: logger.New(utils.ErrorLogger, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var db *gorm.DB
	err := withRetry(ctx, attempts, cfg.ConnectBackoff, "open", func() error {
		var err error
		db, err = gorm.Open(dialector, gormConfig)
		return err
	})
	if err != nil {
		return nil, &database.ConnectionError{Driver: dialector.Name(), Attempts: attempts, Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &database.ConnectionError{Driver: dialector.Name(), Attempts: 1, Err: err}
	}

	err = withRetry(ctx, attempts, cfg.ConnectBackoff, "ping", func() error {
		return sqlDB.PingContext(ctx)
	})
	if err != nil {
		sqlDB.Close()
		return nil, &database.ConnectionError{Driver: dialector.Name(), Attempts: attempts, Err: err}
	}

	utils.InfoLogger.Printf("Connected to %s store", dialector.Name())
	return db, nil
}

func withRetry(ctx context.Context, attempts int, backoff time.Duration, what string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		utils.ErrorLogger.Errorf("Database %s attempt %d/%d failed: %v", what, attempt, attempts, err)
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}
	return err
}
