package stores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qr-dine/stores"
)

func TestAddTableMintsIDAndQRPayload(t *testing.T) {
	store := stores.NewTableStore()

	table, err := store.AddTable(5)

	assert.NoError(t, err)
	assert.NotEmpty(t, table.ID)
	assert.Equal(t, 5, table.Number)
	assert.Equal(t, "5", table.QRCode)
}

func TestAddTableRejectsDuplicateNumber(t *testing.T) {
	store := stores.NewTableStore()

	_, err := store.AddTable(5)
	assert.NoError(t, err)

	_, err = store.AddTable(5)
	assert.ErrorIs(t, err, stores.ErrDuplicateTable)
	assert.Len(t, store.Tables(), 1)
}

func TestAddTableRejectsNonPositiveNumber(t *testing.T) {
	store := stores.NewTableStore()

	_, err := store.AddTable(0)
	assert.ErrorIs(t, err, stores.ErrInvalidTableNumber)

	_, err = store.AddTable(-3)
	assert.ErrorIs(t, err, stores.ErrInvalidTableNumber)

	assert.Empty(t, store.Tables())
}

func TestRemoveTable(t *testing.T) {
	store := stores.NewTableStore()

	a, _ := store.AddTable(1)
	b, _ := store.AddTable(2)

	store.RemoveTable(a.ID)
	store.RemoveTable("unknown-id") // no-op

	tables := store.Tables()
	assert.Len(t, tables, 1)
	assert.Equal(t, b.ID, tables[0].ID)
}

func TestRemovedNumberCanBeReadded(t *testing.T) {
	store := stores.NewTableStore()

	first, _ := store.AddTable(7)
	store.RemoveTable(first.ID)

	second, err := store.AddTable(7)

	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetTableByNumber(t *testing.T) {
	store := stores.NewTableStore()
	added, _ := store.AddTable(4)

	found, ok := store.GetTableByNumber(4)
	assert.True(t, ok)
	assert.Equal(t, added.ID, found.ID)

	_, ok = store.GetTableByNumber(99)
	assert.False(t, ok)
}
