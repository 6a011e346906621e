package store

import (
	"context"
	"sync"

	"github.com/mlevashov/clientdesk/models"
)

// MemoryPersistence keeps the portal state blob in process memory. It backs
// the "memory" storage driver and is the persistence of choice in tests.
type MemoryPersistence struct {
	mu   sync.Mutex
	data []byte

	// SaveErr and LoadErr, when set, are returned by the corresponding
	// operation. Used by tests to exercise the best-effort persistence policy.
	SaveErr error
	LoadErr error
}

// NewMemoryPersistence constructs an empty in-memory [Persistence].
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

func (m *MemoryPersistence) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.data == nil {
		return nil, ErrStateNotFound
	}

	data := make([]byte, len(m.data))
	copy(data, m.data)
	return data, nil
}

func (m *MemoryPersistence) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

// memoryContactRepository is the in-memory [ContactRepository] used with the
// file and memory drivers, where no relational database is available.
type memoryContactRepository struct {
	mu       sync.RWMutex
	messages []models.ContactMessage
	byID     map[string]struct{}
}

// NewMemoryContactRepository constructs an empty in-memory
// [ContactRepository].
func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{byID: make(map[string]struct{})}
}

func (r *memoryContactRepository) SaveMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[message.ID]; exists {
		return models.ContactMessage{}, ErrContactAlreadyExists
	}

	r.byID[message.ID] = struct{}{}
	r.messages = append(r.messages, message)
	return message, nil
}

func (r *memoryContactRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]models.ContactMessage, len(r.messages))
	copy(messages, r.messages)
	return messages, nil
}
