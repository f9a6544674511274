package orders

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotOpen       = errors.New("order is not open")
	ErrUnknownPaymentType = errors.New("unknown payment type")
	ErrUnknownProduct     = errors.New("unknown product in order")
	ErrNoItems            = errors.New("order has no items")
)
