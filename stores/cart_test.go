package stores_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qr-dine/models"
	"qr-dine/stores"
	"qr-dine/stores/mocks"
)

func menuItem(id string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: "item-" + id, Price: price, Category: "Mains"}
}

func TestCartAddItemMergesSameID(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)

	cart.AddItem(menuItem("x", 100), 2)
	cart.AddItem(menuItem("x", 100), 3)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartNeverHoldsDuplicateLines(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)

	cart.AddItem(menuItem("a", 10), 1)
	cart.AddItem(menuItem("b", 20), 2)
	cart.AddItem(menuItem("a", 10), 1)
	cart.UpdateQuantity("b", 7)
	cart.AddItem(menuItem("b", 20), 1)

	seen := map[string]bool{}
	for _, line := range cart.Lines() {
		assert.False(t, seen[line.ID], "duplicate line for %s", line.ID)
		seen[line.ID] = true
		assert.Greater(t, line.Quantity, 0)
	}
}

func TestCartAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)

	cart.AddItem(menuItem("x", 10), 0)
	cart.AddItem(menuItem("x", 10), -3)

	assert.Empty(t, cart.Lines())
}

func TestCartUpdateQuantityRemovesAtZero(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.AddItem(menuItem("x", 10), 2)

	cart.UpdateQuantity("x", 0)

	assert.Empty(t, cart.Lines())
}

func TestCartUpdateQuantityClampsNegative(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.AddItem(menuItem("x", 10), 2)

	cart.UpdateQuantity("x", -5)

	assert.Empty(t, cart.Lines())
}

func TestCartUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.AddItem(menuItem("x", 10), 2)

	cart.UpdateQuantity("nope", 4)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.AddItem(menuItem("a", 10), 1)
	cart.AddItem(menuItem("b", 20), 1)

	cart.RemoveItem("a")
	cart.RemoveItem("a") // second removal is a no-op

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].ID)
}

func TestCartTotalMatchesFromScratchRecomputation(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.AddItem(menuItem("a", 12.5), 2)
	cart.AddItem(menuItem("b", 3), 4)
	cart.UpdateQuantity("a", 3)
	cart.RemoveItem("b")
	cart.AddItem(menuItem("c", 7.25), 1)

	var expected float64
	for _, line := range cart.Lines() {
		expected += line.Price * float64(line.Quantity)
	}

	assert.Equal(t, expected, cart.Total())
	assert.Equal(t, expected, cart.Total()) // pure derivation, no drift
}

func TestCartClearKeepsTableNumber(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)
	cart.SetTableNumber(3)
	cart.AddItem(menuItem("a", 100), 2)

	cart.ClearCart()

	assert.Empty(t, cart.Lines())
	assert.Equal(t, 3, cart.TableNumber())
	assert.Equal(t, float64(0), cart.Total())
}

func TestCartSetTableNumberLastWriterWins(t *testing.T) {
	cart := stores.NewCartStore("s1", nil)

	cart.SetTableNumber(3)
	cart.SetTableNumber(9)

	assert.Equal(t, 9, cart.TableNumber())
}

func TestCartRestoresPersistedSnapshot(t *testing.T) {
	persister := new(mocks.CartPersister)
	snap := models.CartSnapshot{
		Lines:       []models.CartLine{{ID: "a", Name: "item-a", Price: 10, Quantity: 2}},
		TableNumber: 4,
	}
	persister.On("LoadCart", mock.Anything, "s1").Return(snap, nil)
	persister.On("SaveCart", mock.Anything, "s1", mock.Anything).Return(nil)

	cart := stores.NewCartStore("s1", persister)

	assert.Equal(t, 4, cart.TableNumber())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartPersisterFailureNeverFailsOperations(t *testing.T) {
	persister := new(mocks.CartPersister)
	persister.On("LoadCart", mock.Anything, "s1").Return(models.CartSnapshot{}, errors.New("no snapshot"))
	persister.On("SaveCart", mock.Anything, "s1", mock.Anything).Return(errors.New("redis down"))

	cart := stores.NewCartStore("s1", persister)
	cart.AddItem(menuItem("a", 10), 1)
	cart.SetTableNumber(2)

	assert.Equal(t, 1, cart.ItemCount())
	assert.Equal(t, 2, cart.TableNumber())
	persister.AssertCalled(t, "SaveCart", mock.Anything, "s1", mock.Anything)
}

func TestCartWritesThroughSnapshot(t *testing.T) {
	persister := new(mocks.CartPersister)
	persister.On("LoadCart", mock.Anything, "s1").Return(models.CartSnapshot{}, errors.New("no snapshot"))

	var last models.CartSnapshot
	persister.On("SaveCart", mock.Anything, "s1", mock.Anything).
		Run(func(args mock.Arguments) {
			last = args.Get(2).(models.CartSnapshot)
		}).Return(nil)

	cart := stores.NewCartStore("s1", persister)
	cart.AddItem(menuItem("a", 10), 2)
	cart.SetTableNumber(5)

	assert.Equal(t, 5, last.TableNumber)
	assert.Len(t, last.Lines, 1)
	assert.Equal(t, 2, last.Lines[0].Quantity)
}
