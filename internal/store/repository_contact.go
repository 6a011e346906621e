package store

import (
	"context"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
// It handles contact-form submissions against the "contact_messages" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewContactRepository(db *DB, log *logger.Logger) ContactRepository {
	log.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: log,
	}
}

// SaveMessage persists a new contact message and returns it unchanged.
//
// Error handling:
//   - Unique violation on the message id → [ErrContactAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *contactRepository) SaveMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(message.TableName()).
		Columns("id", "name", "email", "subject", "body", "created_at").
		Values(message.ID, message.Name, message.Email, message.Subject, message.Body, message.CreatedAt).
		ToSql()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*contactRepository.SaveMessage").Msg("error: insert failed")

		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.ContactMessage{}, ErrContactAlreadyExists
		}
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return message, nil
}

// ListMessages retrieves every stored contact message ordered by creation
// time.
func (r *contactRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", "email", "subject", "body", "created_at").
		From(models.ContactMessage{}.TableName()).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListMessages").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var message models.ContactMessage
		if err = rows.Scan(&message.ID, &message.Name, &message.Email, &message.Subject, &message.Body, &message.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListMessages").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return messages, nil
}
