package book

import "errors"

var (
	ErrNilOrder    = errors.New("nil order")
	ErrDuplicateID = errors.New("duplicate order id")
	ErrNotFound    = errors.New("order not found")
	ErrNotResting  = errors.New("order not resting at its price level")
)
