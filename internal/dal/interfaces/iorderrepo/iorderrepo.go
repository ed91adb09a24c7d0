package iorderrepo

import (
	"context"

	"github.com/corray333/order-capture/internal/service/models/order"
)

// IOrderRepository is an interface for the order repository.
type IOrderRepository interface {
	// Insert appends a single order and returns its assigned id
	Insert(ctx context.Context, ord order.Order) (int64, error)

	// List returns all stored orders, newest first
	List(ctx context.Context) ([]order.Order, error)
}
