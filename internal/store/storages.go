package store

import (
	"context"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
)

// Storages aggregates every storage-layer dependency the services need.
type Storages struct {
	Persistence       Persistence
	ContactRepository ContactRepository
}

// NewStorages wires the storage layer for the configured driver.
//
// The file driver (also the default for an empty driver) persists the portal
// state as a JSON file and keeps contact messages in memory. The sqlite and
// postgres drivers put both behind the relational database named by the DSN.
// The memory driver holds everything in process memory and exists for tests.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case "", config.DriverFile:
		return &Storages{
			Persistence:       NewFilePersistence(cfg.StatePath),
			ContactRepository: NewMemoryContactRepository(),
		}, nil

	case config.DriverMemory:
		return &Storages{
			Persistence:       NewMemoryPersistence(),
			ContactRepository: NewMemoryContactRepository(),
		}, nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting sqlite storage: %w", err)
		}
		return &Storages{
			Persistence:       NewSQLPersistence(db, log),
			ContactRepository: NewContactRepository(db, log),
		}, nil

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting postgres storage: %w", err)
		}
		return &Storages{
			Persistence:       NewSQLPersistence(db, log),
			ContactRepository: NewContactRepository(db, log),
		}, nil

	default:
		return nil, config.ErrInvalidStorageConfigs
	}
}
