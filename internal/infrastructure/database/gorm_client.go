package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quotation_desk/internal/config"
)

var ErrPrimaryDisabled = errors.New("primary store disabled")

// ConnectPrimary opens the relational store selected by primary.driver.
// "postgres" is the hosted deployment; "sqlite" is for local use and tests.
func ConnectPrimary(cfg config.PrimaryConfig, log *zap.Logger) (*gorm.DB, error) {
	if !cfg.Enabled() {
		return nil, ErrPrimaryDisabled
	}

	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported primary driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open primary store: %w", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("primary store ping failed: %w", err)
	}
	if log != nil {
		log.Info("[db][primary] connected", zap.String("driver", db.Dialector.Name()))
	}
	return db, nil
}
