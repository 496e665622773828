package stores

import "errors"

var (
	ErrTableNumberRequired = errors.New("table number is not set")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrIllegalTransition   = errors.New("illegal order status transition")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTableNumber  = errors.New("table number must be positive")
	ErrDuplicateTable      = errors.New("table number already exists")
	ErrNotFound            = errors.New("not found")
	ErrNoImageStorage      = errors.New("image storage is not configured")
)
