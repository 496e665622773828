package stores

import (
	"context"
	"log"
	"sync"

	"qr-dine/models"
)

// CartPersister snapshots a session cart into durable storage so it survives
// page reloads. Implementations are best-effort: a persister failure never
// fails a cart operation.
type CartPersister interface {
	SaveCart(ctx context.Context, sessionID string, snap models.CartSnapshot) error
	LoadCart(ctx context.Context, sessionID string) (models.CartSnapshot, error)
}

// CartStore holds the pending order for one table session. All operations
// are total functions over local state; nothing here touches the network
// except the write-through snapshot.
type CartStore struct {
	mu          sync.Mutex
	sessionID   string
	lines       []models.CartLine
	tableNumber int
	persister   CartPersister
}

// NewCartStore restores the session's previous snapshot when a persister is
// supplied and a snapshot exists; otherwise the cart starts empty.
func NewCartStore(sessionID string, persister CartPersister) *CartStore {
	s := &CartStore{sessionID: sessionID, persister: persister}

	if persister != nil {
		if snap, err := persister.LoadCart(context.Background(), sessionID); err == nil {
			s.lines = snap.Lines
			s.tableNumber = snap.TableNumber
		}
	}

	return s
}

// AddItem merges into the existing line for the same menu item id, otherwise
// appends a new line. Quantities below 1 are ignored.
func (s *CartStore) AddItem(item models.MenuItem, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Image:       item.Image,
		Category:    item.Category,
		Quantity:    quantity,
	})
	s.persistLocked()
}

func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persistLocked()
}

// UpdateQuantity sets the line's quantity to max(0, quantity); a line at 0 is
// removed. No-op when the id is not in the cart.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID == id {
			line.Quantity = quantity
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persistLocked()
}

// ClearCart empties all lines but keeps the table number.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistLocked()
}

// SetTableNumber overwrites the table number unconditionally.
func (s *CartStore) SetTableNumber(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tableNumber = n
	s.persistLocked()
}

func (s *CartStore) TableNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableNumber
}

// Total is derived on every read, never stored.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, line := range s.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *CartStore) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return models.CartSnapshot{Lines: lines, TableNumber: s.tableNumber}
}

func (s *CartStore) persistLocked() {
	if s.persister == nil {
		return
	}

	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	snap := models.CartSnapshot{Lines: lines, TableNumber: s.tableNumber}

	if err := s.persister.SaveCart(context.Background(), s.sessionID, snap); err != nil {
		log.Println("Failed to persist cart snapshot:", err)
	}
}
