package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/balkashynov/healthclub/internal/config"
	"github.com/balkashynov/healthclub/internal/logger"
	"github.com/balkashynov/healthclub/internal/models"
)

// Store owns the database handle. Every operation opens its own
// transaction or statement scope; nothing is shared between calls.
type Store struct {
	db      *gorm.DB
	dialect string
	log     *logger.Logger
}

// Open connects to the configured database and brings the schema up to date
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Discard()
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		if !isMemoryPath(cfg.Path) {
			// Ensure the directory exists
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormLog := gormlogger.Default.LogMode(gormlogger.Silent) // Quiet by default
	if cfg.LogQueries {
		gormLog = gormlogger.Default.LogMode(gormlogger.Info)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// One connection: writers serialize and :memory: stays a single database
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}

	s := &Store{db: gdb, dialect: cfg.Driver, log: log}

	if err := s.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("database ready", "driver", cfg.Driver)
	return s, nil
}

// migrate creates/updates the tables, then the index, view and trigger gorm
// cannot express
func (s *Store) migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Member{},
		&models.Trainer{},
		&models.Room{},
		&models.ClassSession{},
		&models.PTSession{},
		&models.HealthMetric{},
		&models.Invoice{},
	)
	if err != nil {
		return err
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return installGuards(ctx, sqlDB, s.dialect)
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialect is the configured driver name
func (s *Store) Dialect() string {
	return s.dialect
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}

// sqliteDSN enables foreign keys and pins the text format times are stored
// in, one julianday() can parse
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}
