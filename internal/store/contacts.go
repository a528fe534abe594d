package store

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"go.uber.org/zap"
)

// ErrInvalidStatus is returned when a status transition names a value outside
// the novo / em andamento / resolvido enum.
var ErrInvalidStatus = errors.New("invalid contact status")

func validStatus(status string) bool {
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusInProgress, domain.ContactStatusResolved:
		return true
	}
	return false
}

// ContactStore owns the inbound contact-form submissions.
type ContactStore struct {
	mu    sync.Mutex
	state domain.ContactState
	db    *statestore.Store
	bus   EventBus.Bus
}

func NewContactStore(db *statestore.Store, bus EventBus.Bus) *ContactStore {
	s := &ContactStore{db: db, bus: bus}
	if db != nil {
		if _, err := db.Load(StorageKeyContact, &s.state); err != nil {
			zap.L().Warn("contact state restore failed", zap.Error(err))
		}
	}
	return s
}

// Add stores a submission. Creation is atomic: a missing id gets a fresh
// UUID, a missing date the current UTC timestamp and a missing status starts
// at novo. Caller-supplied values are honored so snapshots round-trip.
func (s *ContactStore) Add(msg domain.ContactMessage) (domain.ContactMessage, error) {
	if msg.Status == "" {
		msg.Status = domain.ContactStatusNew
	} else if !validStatus(msg.Status) {
		return domain.ContactMessage{}, errors.Wrap(ErrInvalidStatus, msg.Status)
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Date == "" {
		msg.Date = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	s.state.Contacts = append(s.state.Contacts, msg)
	s.commit()
	s.mu.Unlock()

	publish(s.bus, TopicContactAdded, msg)
	return msg, nil
}

// UpdateStatus sets the status of the matching record. Unknown ids change
// nothing and commit nothing; unknown statuses are rejected.
func (s *ContactStore) UpdateStatus(id, status string) error {
	if !validStatus(status) {
		return errors.Wrap(ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Contacts {
		if s.state.Contacts[i].ID == id {
			s.state.Contacts[i].Status = status
			s.commit()
			return nil
		}
	}
	return nil
}

// Delete removes the matching record. Absent ids are a no-op.
func (s *ContactStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := s.state.Contacts[:0]
	for _, c := range s.state.Contacts {
		if c.ID != id {
			contacts = append(contacts, c)
		}
	}
	s.state.Contacts = contacts
	s.commit()
}

// Clear empties the inbox.
func (s *ContactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Contacts = nil
	s.commit()
}

// List returns a copy of all records in insertion order. Any display
// ordering (most recent first) is a presentation concern.
func (s *ContactStore) List() []domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := make([]domain.ContactMessage, len(s.state.Contacts))
	copy(contacts, s.state.Contacts)
	return contacts
}

// Get returns the record with the given id.
func (s *ContactStore) Get(id string) (domain.ContactMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.ContactMessage{}, false
}

// CountByStatus returns how many records carry the given status; an empty
// status counts everything.
func (s *ContactStore) CountByStatus(status string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" {
		return len(s.state.Contacts)
	}
	var n int
	for _, c := range s.state.Contacts {
		if c.Status == status {
			n++
		}
	}
	return n
}

// PurgeResolvedBefore removes resolved records created before the cutoff and
// returns how many were dropped. Used by the retention job.
func (s *ContactStore) PurgeResolvedBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := s.state.Contacts[:0]
	var dropped int
	for _, c := range s.state.Contacts {
		created, err := time.Parse(time.RFC3339, c.Date)
		if c.Status == domain.ContactStatusResolved && err == nil && created.Before(cutoff) {
			dropped++
			continue
		}
		contacts = append(contacts, c)
	}
	s.state.Contacts = contacts
	if dropped > 0 {
		s.commit()
	}
	return dropped
}

func (s *ContactStore) commit() {
	persist(s.db, StorageKeyContact, s.state)
	publish(s.bus, TopicContactsChanged, len(s.state.Contacts))
}
