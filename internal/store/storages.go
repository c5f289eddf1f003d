package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserRepository       UserRepository
	CollectionRepository CollectionRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories on an already migrated
// connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		CollectionRepository: NewCollectionRepository(db, logger),
		db:                   db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
