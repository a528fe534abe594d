// Package store holds the application state containers: shopping cart,
// contact inbox and the admin/student sessions. Each container owns one
// named snapshot, persists it write-through to the statestore on every
// mutation and publishes a change event for interested views.
package store

import (
	"github.com/asaskevich/EventBus"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"go.uber.org/zap"
)

// Storage keys, one per container. The names match the legacy browser
// localStorage layout so exported snapshots stay interchangeable.
const (
	StorageKeyCart    = "cart-storage"
	StorageKeyContact = "contact-storage"
	StorageKeyAdmin   = "admin-storage"
	StorageKeyStudent = "student-storage"
)

// Event topics published on the application bus.
const (
	TopicCartChanged     = "store.cart.changed"
	TopicContactAdded    = "store.contact.added"
	TopicContactsChanged = "store.contacts.changed"
	TopicSessionChanged  = "store.session.changed"
)

// persist is the shared write-through: failures are logged and swallowed,
// callers must not depend on write success.
func persist(db *statestore.Store, key string, v interface{}) {
	if db == nil {
		return
	}
	if err := db.Save(key, v); err != nil {
		zap.L().Warn("state persist failed", zap.String("key", key), zap.Error(err))
	}
}

func publish(bus EventBus.Bus, topic string, args ...interface{}) {
	if bus == nil {
		return
	}
	bus.Publish(topic, args...)
}
