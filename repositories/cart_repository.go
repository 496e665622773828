package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"qr-dine/models"
)

// Cart snapshots expire after three days of inactivity; an abandoned table
// session should not pin Redis memory forever.
const cartSnapshotTTL = 72 * time.Hour

// CartRepository keeps per-session cart snapshots in Redis, standing in for
// the browser-local storage the cart would otherwise live in.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func (r *CartRepository) SaveCart(ctx context.Context, sessionID string, snap models.CartSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(sessionID), data, cartSnapshotTTL).Err()
}

func (r *CartRepository) LoadCart(ctx context.Context, sessionID string) (models.CartSnapshot, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		return models.CartSnapshot{}, err
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.CartSnapshot{}, err
	}
	return snap, nil
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
