package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corray333/order-capture/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/order-capture/internal/service/models/order"
	"github.com/corray333/order-capture/internal/service/models/pricing"
)

// OrderService is a service for capturing and listing orders.
type OrderService struct {
	orderRepo iorderrepo.IOrderRepository
}

// CreatedOrder is the outcome of an accepted submission.
type CreatedOrder struct {
	OrderID        int64
	Subtotal       float64
	TotalWithVAT   float64
	FormattedTotal string
	Message        string
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// CreateOrder runs the capture pipeline for one submission:
// normalize and validate, price the items, persist the order, and
// build the confirmation. The created_at timestamp is assigned here,
// at persistence time.
func (s *OrderService) CreateOrder(ctx context.Context, sub order.Submission) (*CreatedOrder, error) {
	sub.Normalize()

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	quote, err := pricing.Compute(sub.Items)
	if err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(quote.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize order items: %w", err)
	}

	ord := order.Order{
		OrderCode:    sub.OrderCode,
		FullName:     sub.FullName,
		Email:        sub.Email,
		Address:      sub.Address,
		Phone:        sub.Phone,
		ItemsJSON:    string(itemsJSON),
		Subtotal:     quote.Subtotal,
		TotalWithVAT: quote.TotalWithVAT,
		VATRate:      pricing.VATRate,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	id, err := s.orderRepo.Insert(ctx, ord)
	if err != nil {
		return nil, err
	}

	formattedTotal := quote.FormattedTotal()

	return &CreatedOrder{
		OrderID:        id,
		Subtotal:       quote.Subtotal,
		TotalWithVAT:   quote.TotalWithVAT,
		FormattedTotal: formattedTotal,
		Message: fmt.Sprintf(
			"Order saved (ID: %d, Code: %s). Subtotal: € %.2f. %s",
			id, sub.OrderCode, quote.Subtotal, formattedTotal,
		),
	}, nil
}

// GetOrders retrieves all stored orders, newest first.
func (s *OrderService) GetOrders(ctx context.Context) ([]order.Order, error) {
	return s.orderRepo.List(ctx)
}
