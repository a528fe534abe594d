package store

import (
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/statestore"
)

func wheyItem() domain.CartItem {
	return domain.CartItem{
		ID:    "1",
		Name:  "Whey Protein Isolado",
		Price: domain.Price("R$ 149,90"),
		Image: "/images/whey.jpg",
	}
}

func TestAddItemIncrementsExisting(t *testing.T) {
	cart := NewCartStore(nil, nil)

	for i := 0; i < 3; i++ {
		cart.AddItem(wheyItem())
	}

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestAddItemIgnoresDifferingFieldsOnIncrement(t *testing.T) {
	cart := NewCartStore(nil, nil)
	cart.AddItem(wheyItem())

	changed := wheyItem()
	changed.Name = "Outro Nome"
	changed.Price = domain.Price("999")
	cart.AddItem(changed)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Whey Protein Isolado", items[0].Name)
	assert.Equal(t, domain.Price("R$ 149,90"), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemIdentityFallsBackToName(t *testing.T) {
	cart := NewCartStore(nil, nil)
	item := domain.CartItem{Name: "Toalha PowerFit", Price: domain.Price("25")}

	cart.AddItem(item)
	cart.AddItem(item)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	cart.RemoveItem("Toalha PowerFit")
	assert.Empty(t, cart.Items())
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		cart := NewCartStore(nil, nil)
		item := wheyItem()
		cart.AddItem(item)
		cart.AddItem(item)
		cart.AddItem(item)

		cart.UpdateQuantity("1", qty)
		assert.Empty(t, cart.Items(), "quantity %d must remove the item", qty)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	cart := NewCartStore(nil, nil)
	cart.AddItem(wheyItem())

	cart.UpdateQuantity("1", 7)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)

	// unknown identity is a no-op
	cart.UpdateQuantity("missing", 4)
	assert.Equal(t, 7, cart.Items()[0].Quantity)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	cart := NewCartStore(nil, nil)
	cart.AddItem(wheyItem())

	cart.RemoveItem("missing")
	assert.Len(t, cart.Items(), 1)
}

func TestNoopMutationsPublishNothing(t *testing.T) {
	bus := EventBus.New()
	cart := NewCartStore(nil, bus)
	cart.AddItem(wheyItem())

	var changes int
	require.NoError(t, bus.Subscribe(TopicCartChanged, func(int) { changes++ }))

	cart.RemoveItem("missing")
	cart.UpdateQuantity("missing", 4)
	cart.UpdateQuantity("missing", 0)
	assert.Zero(t, changes)

	cart.UpdateQuantity("1", 5)
	assert.Equal(t, 1, changes)
	cart.RemoveItem("1")
	assert.Equal(t, 2, changes)
}

func TestClear(t *testing.T) {
	cart := NewCartStore(nil, nil)
	cart.AddItem(wheyItem())
	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
	assert.Zero(t, cart.Total())
}

func TestTotalWithCurrencyString(t *testing.T) {
	cart := NewCartStore(nil, nil)
	item := domain.CartItem{ID: "1", Name: "Whey", Price: domain.Price("R$ 10,00")}

	cart.AddItem(item)
	cart.AddItem(item)

	assert.Equal(t, 2, cart.ItemCount())
	assert.InDelta(t, 20.0, cart.Total(), 1e-9)
}

func TestTotalCommutative(t *testing.T) {
	a := domain.CartItem{ID: "a", Price: domain.Price("10")}
	b := domain.CartItem{ID: "b", Price: domain.Price("R$ 5,50")}
	c := domain.CartItem{ID: "c", Price: domain.Price("2.25")}

	cart1 := NewCartStore(nil, nil)
	cart1.AddItem(a)
	cart1.AddItem(b)
	cart1.AddItem(c)

	cart2 := NewCartStore(nil, nil)
	cart2.AddItem(c)
	cart2.AddItem(a)
	cart2.AddItem(b)

	assert.InDelta(t, cart1.Total(), cart2.Total(), 1e-9)
	assert.InDelta(t, 17.75, cart1.Total(), 1e-9)
}

func TestTotalMalformedPriceCountsAsZero(t *testing.T) {
	cart := NewCartStore(nil, nil)
	cart.AddItem(domain.CartItem{ID: "1", Price: domain.Price("sob consulta")})
	cart.AddItem(domain.CartItem{ID: "2", Price: domain.Price("10")})

	assert.InDelta(t, 10.0, cart.Total(), 1e-9)
}

func TestCartPersistenceKeepsOddPriceStrings(t *testing.T) {
	db, err := statestore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	cart := NewCartStore(db, nil)
	cart.AddItem(domain.CartItem{ID: "1", Name: "Whey", Price: domain.Price("NaN")})
	cart.AddItem(domain.CartItem{ID: "2", Name: "Creatina", Price: domain.Price("007")})
	cart.AddItem(domain.CartItem{ID: "3", Name: "Toalha", Price: domain.Price("1_000")})

	restored := NewCartStore(db, nil)
	items := restored.Items()
	require.Len(t, items, 3)
	assert.Equal(t, domain.Price("NaN"), items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, domain.Price("007"), items[1].Price)
	assert.Equal(t, domain.Price("1_000"), items[2].Price)
	assert.Equal(t, cart.Items(), items)
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	db, err := statestore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	cart := NewCartStore(db, nil)
	cart.AddItem(wheyItem())
	cart.AddItem(domain.CartItem{ID: "2", Name: "Creatina", Price: domain.Price("89.9")})
	cart.UpdateQuantity("2", 3)

	restored := NewCartStore(db, nil)
	assert.Equal(t, cart.Items(), restored.Items())
	assert.Equal(t, cart.ItemCount(), restored.ItemCount())
	assert.InDelta(t, cart.Total(), restored.Total(), 1e-9)
}
