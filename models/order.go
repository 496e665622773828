package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"table_number"`
	Items       []CartLine  `json:"items"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusServed, OrderStatusCancelled},
}

// ValidStatusTransition reports whether an order may move from one status to
// another. Served and Cancelled are terminal; Served is reachable only
// through Preparing.
func ValidStatusTransition(from, to OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LegalFromStates lists the statuses an order must currently hold for a move
// to the target status to be accepted. Used to guard the UPDATE server-side.
func LegalFromStates(to OrderStatus) []OrderStatus {
	froms := []OrderStatus{}
	for from, nexts := range legalTransitions {
		for _, next := range nexts {
			if next == to {
				froms = append(froms, from)
			}
		}
	}
	return froms
}

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}
