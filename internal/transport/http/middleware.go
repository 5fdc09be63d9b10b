package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
)

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger    hclog.Logger
	Validator *domain.Validation
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, validator *domain.Validation) *Middleware {
	return &Middleware{
		Logger:    logger,
		Validator: validator,
	}
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// ProductValidationMiddleware validates the product payload in the
// request and adds it to the context
func (m *Middleware) ProductValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.CreateProduct
		err := json.NewDecoder(r.Body).Decode(&product)
		if err != nil {
			m.Logger.Error("Error decoding product", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid product data")
			return
		}

		errs := m.Validator.Validate(&product)
		if len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errs)
			return
		}

		// Add the validated product to the context
		ctx := context.WithValue(r.Context(), ContextKeyProduct, &product)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OrderValidationMiddleware validates the order payload in the request
// and adds it to the context. An order with no items passes validation
// here; the service rejects it separately.
func (m *Middleware) OrderValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var order domain.CreateOrder
		err := json.NewDecoder(r.Body).Decode(&order)
		if err != nil {
			m.Logger.Error("Error decoding order", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid order data")
			return
		}

		errs := m.Validator.Validate(&order)
		if len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errs)
			return
		}

		// Add the validated order to the context
		ctx := context.WithValue(r.Context(), ContextKeyOrder, &order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
