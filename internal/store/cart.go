package store

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"go.uber.org/zap"
)

// CartStore owns the shopping cart line items. Mutators never fail from the
// caller's perspective: there is no validation, no stock check and no
// inventory authority behind the cart.
type CartStore struct {
	mu    sync.Mutex
	state domain.CartState
	db    *statestore.Store
	bus   EventBus.Bus
}

func NewCartStore(db *statestore.Store, bus EventBus.Bus) *CartStore {
	s := &CartStore{db: db, bus: bus}
	if db != nil {
		if _, err := db.Load(StorageKeyCart, &s.state); err != nil {
			zap.L().Warn("cart state restore failed", zap.Error(err))
		}
	}
	return s
}

// AddItem appends the item with quantity 1, or increments the quantity of an
// existing line with the same identity. Differing fields on the incoming
// item are ignored for existing lines.
func (s *CartStore) AddItem(item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	for i := range s.state.Items {
		if s.state.Items[i].Key() == key {
			s.state.Items[i].Quantity++
			s.commit()
			return
		}
	}
	item.Quantity = 1
	s.state.Items = append(s.state.Items, item)
	s.commit()
}

// RemoveItem deletes the line with the given identity. Absent ids are a
// no-op and leave the persisted state untouched.
func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeLocked(id) {
		s.commit()
	}
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or below removes the line instead; a non-positive quantity is never stored.
// Unknown ids change nothing and commit nothing.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		if s.removeLocked(id) {
			s.commit()
		}
		return
	}
	for i := range s.state.Items {
		if s.state.Items[i].Key() == id {
			s.state.Items[i].Quantity = quantity
			s.commit()
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = nil
	s.commit()
}

// Items returns a copy of the current line items.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

// Total returns the sum of price x quantity over all lines. Malformed
// prices count as zero.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.state.Items {
		total += ParsePrice(item.Price) * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.state.Items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) removeLocked(id string) bool {
	items := s.state.Items[:0]
	for _, item := range s.state.Items {
		if item.Key() != id {
			items = append(items, item)
		}
	}
	removed := len(items) != len(s.state.Items)
	s.state.Items = items
	return removed
}

func (s *CartStore) commit() {
	persist(s.db, StorageKeyCart, s.state)
	publish(s.bus, TopicCartChanged, len(s.state.Items))
}
