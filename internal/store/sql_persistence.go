package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/logger"
)

// stateKey is the fixed key the serialized portal state lives under in the
// portal_state table. The table is a single-row key/value surface; the key
// exists so that future state blobs can live alongside without a schema
// change.
const stateKey = "portal"

// sqlPersistence is the SQL-backed implementation of [Persistence]. It works
// against both SQLite and PostgreSQL through the placeholder format and error
// classificator carried by [DB].
type sqlPersistence struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLPersistence constructs a [Persistence] storing the portal state blob
// in the portal_state table of db.
func NewSQLPersistence(db *DB, log *logger.Logger) Persistence {
	log.Debug().Msg("creating sql persistence")
	return &sqlPersistence{db: db, logger: log}
}

func (p *sqlPersistence) Load(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.builder.
		Select("payload").
		From("portal_state").
		Where("key = ?", stateKey).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// The payload column is TEXT so that the same schema works on both
	// SQLite and PostgreSQL; the blob is JSON and therefore valid text.
	var payload string
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		log.Err(err).Str("func", "*sqlPersistence.Load").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(payload), nil
}

func (p *sqlPersistence) Save(ctx context.Context, data []byte) error {
	query, args, err := p.db.builder.
		Insert("portal_state").
		Columns("key", "payload").
		Values(stateKey, string(data)).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
