package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
)

func TestAddGeneratesIdentityAndDefaults(t *testing.T) {
	inbox := NewContactStore(nil, nil)

	msg, err := inbox.Add(domain.ContactMessage{
		Name:    "Ana",
		Email:   "ana@exemplo.com",
		Subject: "Planos",
		Message: "Olá",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, domain.ContactStatusNew, msg.Status)

	created, perr := time.Parse(time.RFC3339, msg.Date)
	require.NoError(t, perr)
	assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)

	list := inbox.List()
	require.Len(t, list, 1)
	assert.Equal(t, msg, list[0])
}

func TestAddHonorsSuppliedFields(t *testing.T) {
	inbox := NewContactStore(nil, nil)

	msg, err := inbox.Add(domain.ContactMessage{
		ID:     "fixed-id",
		Date:   "2023-05-15T10:30:00Z",
		Status: domain.ContactStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", msg.ID)
	assert.Equal(t, "2023-05-15T10:30:00Z", msg.Date)
	assert.Equal(t, domain.ContactStatusResolved, msg.Status)
}

func TestAddRejectsUnknownStatus(t *testing.T) {
	inbox := NewContactStore(nil, nil)

	_, err := inbox.Add(domain.ContactMessage{Status: "arquivado"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, inbox.List())
}

func TestUpdateStatus(t *testing.T) {
	inbox := NewContactStore(nil, nil)
	msg, err := inbox.Add(domain.ContactMessage{ID: "a"})
	require.NoError(t, err)
	require.Equal(t, domain.ContactStatusNew, msg.Status)

	require.NoError(t, inbox.UpdateStatus("a", domain.ContactStatusResolved))

	list := inbox.List()
	require.Len(t, list, 1)
	assert.Equal(t, domain.ContactStatusResolved, list[0].Status)
}

func TestUpdateStatusUnknownIdIsNoop(t *testing.T) {
	inbox := NewContactStore(nil, nil)
	_, err := inbox.Add(domain.ContactMessage{ID: "a"})
	require.NoError(t, err)

	require.NoError(t, inbox.UpdateStatus("missing", domain.ContactStatusResolved))
	assert.Equal(t, domain.ContactStatusNew, inbox.List()[0].Status)
}

func TestUpdateStatusUnknownIdPublishesNothing(t *testing.T) {
	bus := EventBus.New()
	inbox := NewContactStore(nil, bus)
	_, err := inbox.Add(domain.ContactMessage{ID: "a"})
	require.NoError(t, err)

	var changes int
	require.NoError(t, bus.Subscribe(TopicContactsChanged, func(int) { changes++ }))

	require.NoError(t, inbox.UpdateStatus("missing", domain.ContactStatusResolved))
	assert.Zero(t, changes)

	require.NoError(t, inbox.UpdateStatus("a", domain.ContactStatusResolved))
	assert.Equal(t, 1, changes)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	inbox := NewContactStore(nil, nil)
	_, err := inbox.Add(domain.ContactMessage{ID: "a"})
	require.NoError(t, err)

	err = inbox.UpdateStatus("a", "pendente")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.ContactStatusNew, inbox.List()[0].Status)
}

func TestDeleteAndClear(t *testing.T) {
	inbox := NewContactStore(nil, nil)
	_, _ = inbox.Add(domain.ContactMessage{ID: "a"})
	_, _ = inbox.Add(domain.ContactMessage{ID: "b"})

	inbox.Delete("a")
	require.Len(t, inbox.List(), 1)
	assert.Equal(t, "b", inbox.List()[0].ID)

	inbox.Delete("missing") // no-op
	require.Len(t, inbox.List(), 1)

	inbox.Clear()
	assert.Empty(t, inbox.List())
}

func TestCountByStatus(t *testing.T) {
	inbox := NewContactStore(nil, nil)
	for _, fixture := range ContactFixtures() {
		_, err := inbox.Add(fixture)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, inbox.CountByStatus(""))
	assert.Equal(t, 1, inbox.CountByStatus(domain.ContactStatusNew))
	assert.Equal(t, 1, inbox.CountByStatus(domain.ContactStatusInProgress))
	assert.Equal(t, 1, inbox.CountByStatus(domain.ContactStatusResolved))
}

func TestContactPersistenceRoundTrip(t *testing.T) {
	db, err := statestore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	inbox := NewContactStore(db, nil)
	_, err = inbox.Add(domain.ContactMessage{Name: "Ana", Email: "ana@exemplo.com"})
	require.NoError(t, err)
	require.NoError(t, inbox.UpdateStatus(inbox.List()[0].ID, domain.ContactStatusInProgress))

	restored := NewContactStore(db, nil)
	assert.Equal(t, inbox.List(), restored.List())
}
