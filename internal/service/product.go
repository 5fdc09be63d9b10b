package service

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/repository"
)

// DefaultProductLimit caps catalog listings when the client does not ask
// for a specific page size.
const DefaultProductLimit int64 = 50

// ProductService exposes the catalog use cases to the transport layer.
type ProductService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, in *domain.CreateProduct) (string, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	SeedProducts(ctx context.Context) (int, error)
}

// NewProductService wires the catalog use cases to a repository.
func NewProductService(repo repository.ProductRepository, logger hclog.Logger) ProductService {
	return &productService{repo: repo, logger: logger}
}

type productService struct {
	repo   repository.ProductRepository
	logger hclog.Logger
}

func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultProductLimit
	}

	s.logger.Debug("Listing products", "query", filter.Query, "category", filter.Category, "limit", filter.Limit)

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Unable to list products", "error", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, in *domain.CreateProduct) (string, error) {
	id, err := s.repo.Insert(ctx, in)
	if err != nil {
		s.logger.Error("Unable to create product", "title", in.Title, "error", err)
		return "", err
	}

	s.logger.Debug("Created product", "id", id, "title", in.Title)
	return id, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrProductNotFound || err == domain.ErrInvalidID {
			return nil, err
		}
		s.logger.Error("Unable to get product", "id", id, "error", err)
		return nil, err
	}
	return product, nil
}
