package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/store"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/internal/validators"
	"github.com/mlevashov/clientdesk/models"
)

// contactService is the concrete implementation of ContactService. It
// validates contact-form submissions, stamps them with an id and creation
// time, and delegates persistence to a ContactRepository.
type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	idGenerator       *utils.UUIDGenerator
	logger            *logger.Logger

	now func() time.Time
}

// NewContactService constructs a ContactService backed by the given
// repository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validators.NewContactValidator(),
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
		now:               time.Now,
	}
}

// SubmitMessage validates and stores a contact-form submission.
//
// Name, email and body are required; the email must contain an "@". The id
// and creation time are always assigned server-side, regardless of what the
// payload carried.
//
// Returns the stored message or:
//   - ErrInvalidDataProvided if a required field is missing or the email is
//     malformed.
//   - A wrapped storage error if the repository call fails.
func (s *contactService) SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Subject = strings.TrimSpace(message.Subject)
	message.Body = strings.TrimSpace(message.Body)

	if err := s.validator.Validate(ctx, message); err != nil {
		log.Error().Err(err).Str("func", "*contactService.SubmitMessage").Msg("invalid contact message provided")
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	message.ID = s.idGenerator.Generate()
	message.CreatedAt = s.now()

	saved, err := s.contactRepository.SaveMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("func", "*contactService.SubmitMessage").Msg("contact message save failed")
		return models.ContactMessage{}, fmt.Errorf("contact message save failed: %w", err)
	}

	return saved, nil
}

// ListMessages returns every stored submission ordered by creation time.
func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.contactRepository.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact message listing failed: %w", err)
	}
	return messages, nil
}
