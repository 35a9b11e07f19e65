package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ConnectOptions controls connection retries and pool sizing
type ConnectOptions struct {
	MaxRetries      int
	RetryDelay      time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConnectOptions waits about a minute for the database to come up
func DefaultConnectOptions() ConnectOptions {
	return ConnectOptions{
		MaxRetries:      30,
		RetryDelay:      2 * time.Second,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Connect opens a PostgreSQL pool, retrying until the server answers a ping
func Connect(dsn string, opts ConnectOptions, logger *zap.Logger) (*sql.DB, error) {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	var err error
	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				db.SetMaxOpenConns(opts.MaxOpenConns)
				db.SetMaxIdleConns(opts.MaxIdleConns)
				db.SetConnMaxLifetime(opts.ConnMaxLifetime)
				return db, nil
			}
			db.Close()
		}

		logger.Warn("Database not reachable",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", opts.MaxRetries),
			zap.Error(err),
		)
		if attempt < opts.MaxRetries {
			time.Sleep(opts.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

// Migrate applies every pending migration from source (e.g. "file://migrations")
func Migrate(db *sql.DB, source string, logger *zap.Logger) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
