package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	createorder "github.com/corray333/order-capture/internal/transport/http/create_order"
	listorders "github.com/corray333/order-capture/internal/transport/http/list_orders"
	"github.com/corray333/order-capture/internal/service/models/order"
	"github.com/corray333/order-capture/internal/service/services/ordersvc"
	"github.com/corray333/order-capture/pkg/http/middleware/trace"
	"github.com/corray333/order-capture/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

type service interface {
	CreateOrder(ctx context.Context, sub order.Submission) (*ordersvc.CreatedOrder, error)
	GetOrders(ctx context.Context) ([]order.Order, error)
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
// The form assets are served from the configured static directory;
// any verb on /orders other than GET and POST gets the canonical 405.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.MethodNotAllowed(methodNotAllowed)

	h.router.Post("/orders", h.createOrder)
	h.router.Get("/orders", h.getOrders)
	h.router.Get("/health", health)

	// GET-only so unsupported verbs on /orders still fall through to
	// the MethodNotAllowed handler instead of the file server.
	staticDir := viper.GetString("server.http.static_dir")
	if staticDir != "" {
		h.router.Get("/*", http.FileServer(http.Dir(staticDir)).ServeHTTP)
	}
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) getOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.service)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	if _, err := w.Write([]byte(`{"success":false,"message":"Method not allowed. Use POST."}`)); err != nil {
		slog.Error("Error writing method not allowed response", "error", err)
	}
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		slog.Error("Error writing health response", "error", err)
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
