package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/corray333/order-capture/internal/service/models/order"
	"github.com/corray333/order-capture/internal/service/models/orderitem"
	"github.com/corray333/order-capture/internal/service/models/pricing"
	"github.com/corray333/order-capture/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, sub order.Submission) (*ordersvc.CreatedOrder, error)
}

// itemInCreateOrderRequest represents an item in a create order request.
type itemInCreateOrderRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	OrderCode string                     `json:"order_code"`
	FullName  string                     `json:"full_name"`
	Email     string                     `json:"email"`
	Address   string                     `json:"address"`
	Phone     string                     `json:"phone"`
	Items     []itemInCreateOrderRequest `json:"items"`
}

// toModel converts createOrderRequest to order.Submission.
func (r *createOrderRequest) toModel() order.Submission {
	items := make([]orderitem.OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = orderitem.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	return order.Submission{
		OrderCode: r.OrderCode,
		FullName:  r.FullName,
		Email:     r.Email,
		Address:   r.Address,
		Phone:     r.Phone,
		Items:     items,
	}
}

// createOrderResponse represents a create order response.
type createOrderResponse struct {
	Success        bool   `json:"success"`
	OrderID        int64  `json:"order_id,omitempty"`
	FormattedTotal string `json:"formatted_total,omitempty"`
	Message        string `json:"message"`
}

// CreateOrder handles the order submission request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, createOrderResponse{
			Success: false,
			Message: "Invalid JSON body.",
		})
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		status, message := rejectionFromError(err)
		writeResponse(w, status, createOrderResponse{
			Success: false,
			Message: message,
		})
		slog.Error("Error creating order", "error", err)

		return
	}

	writeResponse(w, http.StatusOK, createOrderResponse{
		Success:        true,
		OrderID:        created.OrderID,
		FormattedTotal: created.FormattedTotal,
		Message:        created.Message,
	})
}

// rejectionFromError maps pipeline errors to an HTTP status and the
// message shown to the client. Anything unrecognized is a storage or
// serialization failure and surfaces as a server error with the
// underlying cause for diagnostics.
func rejectionFromError(err error) (int, string) {
	switch {
	case errors.Is(err, order.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields (order_code, full_name, email, items)."
	case errors.Is(err, order.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email address."
	case errors.Is(err, pricing.ErrNoValidItems):
		return http.StatusBadRequest, "No valid items to process."
	default:
		return http.StatusInternalServerError, "Server error: " + err.Error()
	}
}

func writeResponse(w http.ResponseWriter, status int, resp createOrderResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}
