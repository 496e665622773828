package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qr-dine/models"
	"qr-dine/realtime"
	"qr-dine/stores"
)

type OrderRepository struct {
	db        *pgxpool.Pool
	publisher realtime.Publisher
}

// NewOrderRepository wires the orders table to the change feed: every
// successful mutation is announced on the orders channel, which is what the
// dashboard's subscription reacts to.
func NewOrderRepository(db *pgxpool.Pool, publisher realtime.Publisher) *OrderRepository {
	return &OrderRepository{db: db, publisher: publisher}
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, table_number, items, status, total_amount, created_at
	          FROM orders ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.TableNumber, &order.Items, &order.Status, &order.TotalAmount, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) InsertOrder(ctx context.Context, tableNumber int, items []models.CartLine, total float64) (models.Order, error) {
	query := `INSERT INTO orders (table_number, items, status, total_amount)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, table_number, items, status, total_amount, created_at`

	var order models.Order
	err := r.db.QueryRow(ctx, query, tableNumber, items, models.OrderStatusPending, total).
		Scan(&order.ID, &order.TableNumber, &order.Items, &order.Status, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}

	r.publish(ctx, order.ID)
	return order, nil
}

// UpdateOrderStatus guards the transition server-side: the row is updated
// only when its current status legally precedes the target, so a request
// against a Served or Cancelled order updates nothing and fails.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	froms := models.LegalFromStates(status)
	fromStates := make([]string, len(froms))
	for i, from := range froms {
		fromStates[i] = string(from)
	}

	query := `UPDATE orders SET status=$1 WHERE id=$2 AND status = ANY($3)
	          RETURNING id, table_number, items, status, total_amount, created_at`

	var order models.Order
	err := r.db.QueryRow(ctx, query, status, id, fromStates).
		Scan(&order.ID, &order.TableNumber, &order.Items, &order.Status, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, stores.ErrOrderNotFound
		}
		return models.Order{}, err
	}

	r.publish(ctx, order.ID)
	return order, nil
}

func (r *OrderRepository) publish(ctx context.Context, orderID string) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, realtime.OrdersChannel, orderID); err != nil {
		log.Println("Failed to publish order change event:", err)
	}
}
