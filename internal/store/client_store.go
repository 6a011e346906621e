package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/models"
)

// firstLoginNote is the default note seeded into the login history of a
// client created implicitly by its own first login.
const firstLoginNote = "first login"

// portalState is the persisted shape of the store: the full client record set
// plus a reserved, always-empty "users" section kept for forward
// compatibility of the on-disk format.
type portalState struct {
	Clients map[string]*models.Client `json:"clients"`
	Users   map[string]any            `json:"users"`
}

// ClientStore owns the persisted client record set and the single in-memory
// session slot, and performs the access-control check gating every sensitive
// read and write.
//
// Concurrency: all operations run to completion under one mutex, so every
// caller observes a fully committed state. The session is a single slot — a
// second Login silently replaces the first without requiring a Logout.
//
// Durability: every mutation of the record set is re-serialized and handed to
// the Persistence sink. A sink failure is logged and otherwise swallowed; the
// in-memory state stays authoritative for the rest of the process lifetime.
type ClientStore struct {
	logger      *logger.Logger
	persistence Persistence

	mu      sync.RWMutex
	records map[string]*models.Client
	order   []string
	session *models.Session

	now func() time.Time
}

// NewClientStore constructs a ClientStore on top of the given persistence
// sink and primes it from previously saved state.
//
// A missing, unreadable, or malformed saved state yields an empty record set
// rather than an error. The session always starts nil regardless of what was
// persisted before.
func NewClientStore(ctx context.Context, persistence Persistence, log *logger.Logger) *ClientStore {
	s := &ClientStore{
		logger:      log,
		persistence: persistence,
		records:     make(map[string]*models.Client),
		order:       make([]string, 0),
		now:         time.Now,
	}

	data, err := persistence.Load(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("no usable portal state, starting empty")
		return s
	}

	var state portalState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warn().Err(err).Msg("malformed portal state, starting empty")
		return s
	}

	for id, client := range state.Clients {
		if client == nil || id == "" {
			continue
		}
		s.records[id] = client
		s.order = append(s.order, id)
	}
	// The persisted shape is a JSON object, which carries no ordering, so the
	// record iteration order is re-established deterministically on load.
	sort.Strings(s.order)

	return s
}

// Login authenticates or self-registers the identity described by payload.
//
// For an existing client the stored record is authoritative: the session
// takes its name and role from the record, not the payload (the payload name
// is still written into the appended login entry's "by" field — a preserved
// asymmetry of the contract). A password-protected record rejects the attempt
// with ErrPasswordRequired or ErrInvalidCredentials.
//
// An unknown id self-registers: the new record takes the payload's name and
// role (defaulting to "client"), gets a password only if one was supplied,
// and its login history is seeded with a single entry noting the first login.
//
// Side effects only; on success the session slot is replaced.
func (s *ClientStore) Login(ctx context.Context, payload models.LoginRequest) error {
	if payload.ID == "" || payload.Name == "" {
		return ErrInvalidLoginPayload
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[payload.ID]; ok {
		if existing.PasswordHash != nil {
			if payload.Password == "" {
				return ErrPasswordRequired
			}
			if hashPassword(payload.Password) != *existing.PasswordHash {
				return ErrInvalidCredentials
			}
		}

		existing.LoginEntries = append(existing.LoginEntries, models.LoginEntry{
			Time: s.now(),
			By:   payload.Name,
			Note: payload.Note,
		})
		s.persist(ctx)

		role := existing.Role
		if role == "" {
			role = models.RoleClient
		}
		s.session = &models.Session{ID: existing.ID, Name: existing.Name, Role: role}

		return nil
	}

	role := payload.Role
	if role == "" {
		role = models.RoleClient
	}

	var passwordHash *string
	if payload.Password != "" {
		hash := hashPassword(payload.Password)
		passwordHash = &hash
	}

	note := payload.Note
	if note == nil {
		first := firstLoginNote
		note = &first
	}

	client := &models.Client{
		ID:           payload.ID,
		Name:         payload.Name,
		Role:         role,
		PasswordHash: passwordHash,
		Profile:      map[string]any{},
		LoginEntries: []models.LoginEntry{{Time: s.now(), By: payload.Name, Note: note}},
		Meta:         map[string]any{},
	}

	s.records[client.ID] = client
	s.order = append(s.order, client.ID)
	s.persist(ctx)

	s.session = &models.Session{ID: client.ID, Name: client.Name, Role: client.Role}

	return nil
}

// Logout unconditionally clears the session slot. It never fails and leaves
// the persisted records untouched.
func (s *ClientStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Session returns a copy of the current session identity, or nil when nobody
// is logged in.
func (s *ClientStore) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// AddClient stores a new client record. Admin only.
//
// Role defaults to "client"; profile, meta, and the login history default to
// empty. The active session is left untouched.
func (s *ClientStore) AddClient(ctx context.Context, req models.NewClientRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAdmin() {
		return ErrUnauthorized
	}

	if req.ID == "" || req.Name == "" {
		return ErrInvalidClient
	}

	if _, exists := s.records[req.ID]; exists {
		return ErrClientAlreadyExists
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	var passwordHash *string
	if req.Password != "" {
		hash := hashPassword(req.Password)
		passwordHash = &hash
	}

	client := &models.Client{
		ID:           req.ID,
		Name:         req.Name,
		Role:         role,
		PasswordHash: passwordHash,
		Profile:      cloneBag(req.Profile),
		LoginEntries: cloneEntries(req.LoginEntries),
		Meta:         cloneBag(req.Meta),
	}

	s.records[client.ID] = client
	s.order = append(s.order, client.ID)
	s.persist(ctx)

	return nil
}

// GetClients lists every stored client in insertion order.
//
// An admin session receives full copies of every record; any other caller —
// including one with no session at all — receives only id and name. The
// operation never fails.
func (s *ClientStore) GetClients(ctx context.Context) []models.ClientView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin := s.session.IsAdmin()
	views := make([]models.ClientView, 0, len(s.order))

	for _, id := range s.order {
		client := s.records[id]
		if admin {
			views = append(views, models.ClientView{
				ID:           client.ID,
				Name:         client.Name,
				Role:         client.Role,
				PasswordHash: clonePasswordHash(client.PasswordHash),
				Profile:      cloneBag(client.Profile),
				LoginEntries: cloneEntries(client.LoginEntries),
				Meta:         cloneBag(client.Meta),
			})
			continue
		}

		views = append(views, models.ClientView{ID: client.ID, Name: client.Name})
	}

	return views
}

// GetLoginEntries returns a copy of the login history of the given client.
// Admin only. An unknown id yields an empty history, not an error.
func (s *ClientStore) GetLoginEntries(ctx context.Context, clientID string) ([]models.LoginEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.IsAdmin() {
		return nil, ErrUnauthorized
	}

	client, ok := s.records[clientID]
	if !ok {
		return []models.LoginEntry{}, nil
	}

	return cloneEntries(client.LoginEntries), nil
}

// UpdateClientProfile shallow-merges updates into the target client's
// profile: keys in updates overwrite same-named keys, all other existing keys
// are preserved. Admin only.
func (s *ClientStore) UpdateClientProfile(ctx context.Context, clientID string, updates map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAdmin() {
		return ErrUnauthorized
	}

	client, ok := s.records[clientID]
	if !ok {
		return ErrClientNotFound
	}

	if client.Profile == nil {
		client.Profile = make(map[string]any, len(updates))
	}
	for key, value := range updates {
		client.Profile[key] = value
	}
	s.persist(ctx)

	return nil
}

// persist re-serializes the full record set and hands it to the persistence
// sink. Failures are logged and swallowed: durability is best-effort and a
// storage fault must never reject the operation that triggered it.
// Callers must hold the write lock.
func (s *ClientStore) persist(ctx context.Context) {
	state := portalState{Clients: s.records, Users: map[string]any{}}

	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn().Err(err).Msg("portal state serialization failed, skipping save")
		return
	}

	if err := s.persistence.Save(ctx, data); err != nil {
		s.logger.Warn().Err(err).Msg("portal state save failed, in-memory state stays authoritative")
	}
}

// hashPassword applies the credential transform used both at creation and at
// login time: base64 over the UTF-8 bytes of the plaintext. The transform is
// deterministic and fully reversible — it is an encoding, not a cryptographic
// hash — and must stay this way for compatibility with persisted records.
func hashPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

func clonePasswordHash(hash *string) *string {
	if hash == nil {
		return nil
	}
	h := *hash
	return &h
}

func cloneBag(bag map[string]any) map[string]any {
	clone := make(map[string]any, len(bag))
	for key, value := range bag {
		clone[key] = value
	}
	return clone
}

func cloneEntries(entries []models.LoginEntry) []models.LoginEntry {
	clone := make([]models.LoginEntry, len(entries))
	copy(clone, entries)
	return clone
}
