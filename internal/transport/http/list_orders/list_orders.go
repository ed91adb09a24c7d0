package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/order-capture/internal/service/models/order"
)

type service interface {
	GetOrders(ctx context.Context) ([]order.Order, error)
}

// ListOrders handles the stored-orders listing request. The rows come
// back newest first; items_json stays embedded as the serialized
// string it was stored as.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.GetOrders(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if encErr := json.NewEncoder(w).Encode(map[string]string{
			"error": "Failed to load orders: " + err.Error(),
		}); encErr != nil {
			slog.Error("Error sending error response for list orders", "error", encErr)
		}
		slog.Error("Error getting orders", "error", err)

		return
	}

	if orders == nil {
		orders = []order.Order{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		slog.Error("Error sending response for list orders", "error", err)
	}
}
