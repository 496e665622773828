package stores

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"qr-dine/models"
	"qr-dine/realtime"
)

type OrderRepository interface {
	// ListOrders returns all orders newest-first by creation timestamp.
	ListOrders(ctx context.Context) ([]models.Order, error)
	InsertOrder(ctx context.Context, tableNumber int, items []models.CartLine, total float64) (models.Order, error)
	// UpdateOrderStatus applies the change only when the order currently
	// holds a status the transition is legal from; otherwise it reports
	// ErrOrderNotFound.
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
}

// OrderNotifier is told about successfully submitted orders. Satisfied by
// models.EmailService.
type OrderNotifier interface {
	SendOrderPlacedEmail(order models.Order) error
}

// OrderStore submits orders and keeps a local order list consistent with the
// change feed. The local list is populated exclusively by FetchOrders; writes
// never update it optimistically, so the feed-driven refresh is the single
// source of truth and duplicate-entry races cannot occur.
type OrderStore struct {
	mu        sync.Mutex
	repo      OrderRepository
	feed      realtime.Feed
	notifier  OrderNotifier
	orders    []models.Order
	isLoading bool
	errMsg    string
	sub       realtime.Subscription

	fetchSeq atomic.Uint64
}

func NewOrderStore(repo OrderRepository, feed realtime.Feed, notifier OrderNotifier) *OrderStore {
	return &OrderStore{repo: repo, feed: feed, notifier: notifier}
}

// StartRealtimeSubscription opens the orders change-feed subscription. At
// most one subscription is held; calling again while active is a no-op.
// Every event, whatever its payload, triggers a full refetch.
func (s *OrderStore) StartRealtimeSubscription(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return nil
	}
	if s.feed == nil {
		log.Println("No change feed configured; order list will not auto-refresh")
		return nil
	}

	sub, err := s.feed.Subscribe(ctx, realtime.OrdersChannel, func(string) {
		if err := s.FetchOrders(context.Background()); err != nil {
			log.Println("Feed-triggered order refetch failed:", err)
		}
	})
	if err != nil {
		return err
	}

	s.sub = sub
	return nil
}

// StopRealtimeSubscription releases the channel. Stopping when already
// stopped is a no-op.
func (s *OrderStore) StopRealtimeSubscription() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub == nil {
		return
	}
	if err := s.sub.Close(); err != nil {
		log.Println("Failed to close order subscription:", err)
	}
	s.sub = nil
}

// FetchOrders replaces the local order list wholesale. A response that is no
// longer the newest in flight is discarded so stale data can never overwrite
// newer data.
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	token := s.fetchSeq.Add(1)
	s.beginOp()

	orders, err := s.repo.ListOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.fetchSeq.Load() {
		return nil
	}
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.orders = orders
	return nil
}

// AddOrder submits a new order with status Pending and returns the id the
// remote store assigned. Validation failures happen before any remote call.
// The local list is not touched here; the change feed drives the refresh.
func (s *OrderStore) AddOrder(ctx context.Context, tableNumber int, lines []models.CartLine, total float64) (string, error) {
	if tableNumber <= 0 {
		return "", ErrTableNumberRequired
	}
	if len(lines) == 0 {
		return "", ErrEmptyOrder
	}

	s.beginOp()

	order, err := s.repo.InsertOrder(ctx, tableNumber, lines, total)
	if err != nil {
		s.failOp(err)
		return "", err
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()

	if s.notifier != nil {
		go func() {
			if err := s.notifier.SendOrderPlacedEmail(order); err != nil {
				log.Println("Failed to send order notification:", err)
			}
		}()
	}

	return order.ID, nil
}

// UpdateOrderStatus gates the transition against the locally cached status
// before submitting, so a move out of Served or Cancelled is never sent.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return ErrUnknownStatus
	}

	if current, ok := s.GetOrderByID(id); ok {
		if !models.ValidStatusTransition(current.Status, status) {
			return ErrIllegalTransition
		}
	}

	s.beginOp()

	if _, err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		s.failOp(err)
		return err
	}

	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
	return nil
}

// GetOrderByID is a pure lookup against the local cache; it never triggers a
// fetch and may be stale before the first FetchOrders resolves.
func (s *OrderStore) GetOrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *OrderStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *OrderStore) beginOp() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *OrderStore) failOp(err error) {
	s.mu.Lock()
	s.isLoading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
}
