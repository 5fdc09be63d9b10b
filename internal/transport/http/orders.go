package http

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
	logger       hclog.Logger
}

func NewOrderHandler(os service.OrderService, log hclog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: os,
		logger:       log,
	}
}

// CreateOrder handles POST /orders. The payload has already been decoded
// and validated by the middleware.
//
// swagger:route POST /orders orders createOrder
//
// Places an order and returns it with its derived number and total.
//
// Responses:
//
//	201: orderResponse
//	400: errorResponse
//	422: validationErrorsResponse
//	500: errorResponse
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated order from the context
	in, ok := r.Context().Value(ContextKeyOrder).(*domain.CreateOrder)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), in)
	if err != nil {
		if err == domain.ErrEmptyOrder {
			writeError(w, http.StatusBadRequest, "Order must contain at least one item")
			return
		}
		if err == domain.ErrStoreUnconfigured {
			writeError(w, http.StatusInternalServerError, "Database not configured")
			return
		}

		h.logger.Error("Error creating order", "error", err)
		writeError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders
//
// swagger:route GET /orders orders listOrders
//
// Returns recent orders, newest first.
//
// Responses:
//
//	200: ordersResponse
//	500: errorResponse
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context(), parseLimit(r))
	if err != nil {
		if err == domain.ErrStoreUnconfigured {
			writeError(w, http.StatusInternalServerError, "Database not configured")
			return
		}

		h.logger.Error("Error listing orders", "error", err)
		writeError(w, http.StatusInternalServerError, "Error listing orders")
		return
	}

	writeJSON(w, http.StatusOK, &ordersResponse{Orders: orders})
}

type ordersResponse struct {
	// recent orders, newest first
	Orders []*domain.OrderSummary `json:"orders"`
}
