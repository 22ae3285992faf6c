package db

import (
	"fmt"
	"log/slog"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cyberguard/internal/model"
)

// NewMySQL returns a connected GORM DB instance. Sessions always run in UTC.
func NewMySQL(dsn string) (*gorm.DB, error) {
	dsn, err := utcDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// utcDSN pins both the session time zone and the driver's time location to
// UTC, so CURRENT_TIMESTAMP defaults read back as the instants they were written at.
func utcDSN(dsn string) (string, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["time_zone"] = "'+00:00'"
	cfg.Loc = time.UTC
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Models lists every persisted type in creation order.
func Models() []interface{} {
	return []interface{}{
		&model.UserProfile{},
		&model.PasswordCheck{},
		&model.PhishingSubmission{},
		&model.MalwareSubmission{},
		&model.PhishingLog{},
	}
}

// Migrate creates or updates the schema. With reset it drops every table first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		slog.Warn("reset requested, dropping all tables")
		tables := Models()
		for i := len(tables) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(tables[i]); err != nil {
				slog.Warn("drop table failed (may not exist)", "error", err)
			}
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
