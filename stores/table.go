package stores

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"qr-dine/models"
)

// TableStore is the local catalog of tables used to mint per-table menu
// links. Tables live only in this registry; historical orders keep whatever
// table number they were tagged with.
type TableStore struct {
	mu     sync.Mutex
	tables []models.Table
}

func NewTableStore(seed ...models.Table) *TableStore {
	return &TableStore{tables: seed}
}

// AddTable rejects non-positive and duplicate numbers. Accepted tables get a
// fresh unique id and a QR payload equal to the stringified number.
func (s *TableStore) AddTable(number int) (models.Table, error) {
	if number <= 0 {
		return models.Table{}, ErrInvalidTableNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range s.tables {
		if table.Number == number {
			return models.Table{}, ErrDuplicateTable
		}
	}

	table := models.Table{
		ID:     uuid.NewString(),
		Number: number,
		QRCode: strconv.Itoa(number),
	}
	s.tables = append(s.tables, table)
	return table, nil
}

// RemoveTable deletes by id. Removing an unknown id is a no-op.
func (s *TableStore) RemoveTable(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tables[:0]
	for _, table := range s.tables {
		if table.ID != id {
			kept = append(kept, table)
		}
	}
	s.tables = kept
}

func (s *TableStore) GetTableByNumber(number int) (models.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range s.tables {
		if table.Number == number {
			return table, true
		}
	}
	return models.Table{}, false
}

func (s *TableStore) Tables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out
}
