package store

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"go.uber.org/zap"
)

// CredentialVerifier decides whether a username/password pair is valid.
// The default implementation checks one static pair; a real verifier can be
// substituted without touching the session state machine.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single fixed pair.
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Verify(username, password string) bool {
	return username == c.Username && password == c.Password
}

// SessionState is the persisted session snapshot. IsAuthenticated is true
// iff Identity is non-nil.
type SessionState[T any] struct {
	Identity        *T      `json:"identity"`
	IsAuthenticated bool    `json:"isAuthenticated"`
	Error           *string `json:"error"`
}

// SessionStore is a two-state (anonymous/authenticated) session container.
// The identity populated on a successful login comes from a fixture
// provider, mirroring the single built-in account of each portal.
type SessionStore[T any] struct {
	mu         sync.Mutex
	storageKey string
	verifier   CredentialVerifier
	fixture    func() T
	invalidMsg string
	state      SessionState[T]
	db         *statestore.Store
	bus        EventBus.Bus
}

func NewSessionStore[T any](
	storageKey string,
	verifier CredentialVerifier,
	fixture func() T,
	invalidMsg string,
	db *statestore.Store,
	bus EventBus.Bus,
) *SessionStore[T] {
	s := &SessionStore[T]{
		storageKey: storageKey,
		verifier:   verifier,
		fixture:    fixture,
		invalidMsg: invalidMsg,
		db:         db,
		bus:        bus,
	}
	if db != nil {
		if _, err := db.Load(storageKey, &s.state); err != nil {
			zap.L().Warn("session state restore failed", zap.String("key", storageKey), zap.Error(err))
		}
	}
	return s
}

// Login verifies the credentials. On a match the identity is set and any
// previous error cleared; on a mismatch the fixed invalid-credentials
// message is stored and the identity left untouched.
func (s *SessionStore[T]) Login(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.verifier.Verify(username, password) {
		identity := s.fixture()
		s.state.Identity = &identity
		s.state.IsAuthenticated = true
		s.state.Error = nil
		s.commit()
		return true
	}

	msg := s.invalidMsg
	s.state.Error = &msg
	s.commit()
	return false
}

// Logout clears identity and error unconditionally.
func (s *SessionStore[T]) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Identity = nil
	s.state.IsAuthenticated = false
	s.state.Error = nil
	s.commit()
}

// ClearError clears the error message in either state.
func (s *SessionStore[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = nil
	s.commit()
}

// Update applies a typed partial update to the identity. It reports false
// without calling apply while anonymous: merging onto a missing identity is
// explicitly guarded.
func (s *SessionStore[T]) Update(apply func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Identity == nil {
		return false
	}
	apply(s.state.Identity)
	s.commit()
	return true
}

// State returns a read snapshot of the session.
func (s *SessionStore[T]) State() SessionState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	if s.state.Identity != nil {
		identity := *s.state.Identity
		snap.Identity = &identity
	}
	if s.state.Error != nil {
		msg := *s.state.Error
		snap.Error = &msg
	}
	return snap
}

// Authenticated reports whether an identity is present.
func (s *SessionStore[T]) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

func (s *SessionStore[T]) commit() {
	persist(s.db, s.storageKey, s.state)
	publish(s.bus, TopicSessionChanged, s.storageKey, s.state.IsAuthenticated)
}

// AdminSessionStore holds the back-office operator session.
type AdminSessionStore = SessionStore[domain.AdminIdentity]

// StudentSessionStore holds the student-portal session.
type StudentSessionStore = SessionStore[domain.StudentIdentity]

// NewAdminSessionStore builds the admin session container with its built-in
// account and credential pair.
func NewAdminSessionStore(db *statestore.Store, bus EventBus.Bus) *AdminSessionStore {
	return NewSessionStore(
		StorageKeyAdmin,
		StaticCredentials{Username: AdminUsername, Password: AdminPassword},
		AdminFixture,
		"Nome de usuário ou senha inválidos",
		db, bus,
	)
}

// NewStudentSessionStore builds the student session container with its
// built-in account and credential pair.
func NewStudentSessionStore(db *statestore.Store, bus EventBus.Bus) *StudentSessionStore {
	return NewSessionStore(
		StorageKeyStudent,
		StaticCredentials{Username: StudentUsername, Password: StudentPassword},
		StudentFixture,
		"Usuário ou senha inválidos",
		db, bus,
	)
}
