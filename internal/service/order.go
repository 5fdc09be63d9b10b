package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/repository"
)

// DefaultOrderLimit caps order listings when the client does not ask for
// a specific page size.
const DefaultOrderLimit int64 = 20

// OrderService exposes the order log use cases to the transport layer.
type OrderService interface {
	CreateOrder(ctx context.Context, in *domain.CreateOrder) (*domain.Order, error)
	ListOrders(ctx context.Context, limit int64) ([]*domain.OrderSummary, error)
}

// NewOrderService wires the order use cases to a repository.
func NewOrderService(repo repository.OrderRepository, logger hclog.Logger) OrderService {
	return &orderService{repo: repo, logger: logger, now: time.Now}
}

type orderService struct {
	repo   repository.OrderRepository
	logger hclog.Logger

	// now is swapped in tests to pin order numbers and timestamps.
	now func() time.Time
}

// CreateOrder derives the server-side fields (number, total, status,
// timestamp) from a validated request, persists the order and returns it
// with its assigned id. An order without items is refused.
func (s *orderService) CreateOrder(ctx context.Context, in *domain.CreateOrder) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := s.now().UTC()
	order := &domain.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		ShippingAddress: in.ShippingAddress,
		Items:           in.Items,
		TotalAmount:     domain.OrderTotal(in.Items),
		OrderNumber:     domain.OrderNumber(now),
		Status:          domain.OrderStatusPending,
		CreatedAt:       now,
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Unable to create order", "error", err)
		return nil, err
	}
	order.ID = id

	s.logger.Debug("Created order", "id", id, "order_number", order.OrderNumber, "total", order.TotalAmount)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit int64) ([]*domain.OrderSummary, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}

	s.logger.Debug("Listing orders", "limit", limit)

	orders, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("Unable to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}
