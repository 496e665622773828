package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qr-dine/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.OrderStatus
		to   models.OrderStatus
		want bool
	}{
		{"pending to preparing", models.OrderStatusPending, models.OrderStatusPreparing, true},
		{"pending to cancelled", models.OrderStatusPending, models.OrderStatusCancelled, true},
		{"pending to served skips preparing", models.OrderStatusPending, models.OrderStatusServed, false},
		{"preparing to served", models.OrderStatusPreparing, models.OrderStatusServed, true},
		{"preparing to cancelled", models.OrderStatusPreparing, models.OrderStatusCancelled, true},
		{"preparing back to pending", models.OrderStatusPreparing, models.OrderStatusPending, false},
		{"served is terminal", models.OrderStatusServed, models.OrderStatusPreparing, false},
		{"served to cancelled", models.OrderStatusServed, models.OrderStatusCancelled, false},
		{"cancelled is terminal", models.OrderStatusCancelled, models.OrderStatusPending, false},
		{"cancelled to served", models.OrderStatusCancelled, models.OrderStatusServed, false},
		{"no self transition", models.OrderStatusPending, models.OrderStatusPending, false},
		{"unknown from", models.OrderStatus("Delivered"), models.OrderStatusServed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ValidStatusTransition(tt.from, tt.to))
		})
	}
}

func TestLegalFromStates(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderStatusPending},
		models.LegalFromStates(models.OrderStatusPreparing))

	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderStatusPreparing},
		models.LegalFromStates(models.OrderStatusServed))

	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusPreparing},
		models.LegalFromStates(models.OrderStatusCancelled))

	assert.Empty(t, models.LegalFromStates(models.OrderStatusPending))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusServed,
		models.OrderStatusCancelled,
	} {
		assert.True(t, models.ValidOrderStatus(s), string(s))
	}

	assert.False(t, models.ValidOrderStatus("Delivered"))
	assert.False(t, models.ValidOrderStatus(""))
	assert.False(t, models.ValidOrderStatus("pending"))
}
