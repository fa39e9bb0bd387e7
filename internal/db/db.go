package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pagestreak/pagestreak/internal/models"
)

// Store wraps the sqlite database. It is constructed once at startup and
// passed to everything that needs persistence.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens (or creates) the database at path and runs migrations.
// An empty path resolves to ~/.pagestreak/pagestreak.db. Use ":memory:"
// for an ephemeral database in tests.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if path == "" {
		var err error
		path, err = defaultDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create pagestreak directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: gdb, log: log}

	// Schema migration happens exactly once, here, so query paths never
	// have to repair a missing table.
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("database ready", zap.String("path", path))
	return store, nil
}

// defaultDatabasePath returns the path to the SQLite database file
func defaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pagestreak", "pagestreak.db"), nil
}

func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Book{},
		&models.ReadingSession{},
		&models.Preferences{},
		&models.AppUsage{},
		&models.Reminder{},
	)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
