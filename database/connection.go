package database

import (
	"context"
	"log/slog"

	"github.com/mytheresa/go-feature-showcase/config"
	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
)

// Open connects to the configured database, migrates the schema and,
// when requested, seeds demo data.
func Open(ctx context.Context, conf config.Database, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(conf)
	if err != nil {
		return nil, err
	}

	level := logger.Silent
	if conf.LogQueries {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(log).LogMode(level),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if conf.Driver == config.DriverSQLite {
		// Every connection to ":memory:" is a distinct database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		sqlDB.SetMaxOpenConns(1)

		if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	if conf.Seed {
		if err := Seed(ctx, db); err != nil {
			return nil, err
		}
	}

	log.InfoContext(ctx, "database ready", slog.String("driver", conf.Driver), slog.Bool("seeded", conf.Seed))

	return db, nil
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return errors.Wrap(err, "could not migrate schema")
	}
	return nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(sqlDB.Close())
}

func newDialector(conf config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverSQLite:
		return gormlite.Open(conf.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(conf.DSN), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", conf.Driver)
	}
}
