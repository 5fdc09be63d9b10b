package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/storage"
)

// NewMemoryProductRepository returns an in-memory ProductRepository used
// by tests and local development without a database. It stores raw
// documents so the same mapping rules apply as with the real store.
func NewMemoryProductRepository(codec storage.IDCodec) ProductRepository {
	return &memoryProductRepository{codec: codec}
}

type memoryProductRepository struct {
	mu    sync.RWMutex
	docs  []bson.M
	codec storage.IDCodec
}

func (r *memoryProductRepository) List(_ context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []*domain.Product{}
	for _, doc := range r.docs {
		if filter.Limit > 0 && int64(len(products)) >= filter.Limit {
			break
		}
		p := storage.ProductFromDocument(doc)
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *memoryProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	oid, err := r.codec.Parse(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.docs {
		if stored, ok := doc["_id"].(primitive.ObjectID); ok && stored == oid {
			return storage.ProductFromDocument(doc), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) Insert(_ context.Context, in *domain.CreateProduct) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := storage.ProductDocument(in)
	oid := primitive.NewObjectID()
	doc["_id"] = oid
	r.docs = append(r.docs, doc)
	return r.codec.Format(oid), nil
}

func (r *memoryProductRepository) ExistsByTitle(_ context.Context, title string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.docs {
		if t, ok := doc["title"].(string); ok && t == title {
			return true, nil
		}
	}
	return false, nil
}

// NewMemoryOrderRepository returns an in-memory OrderRepository with the
// same listing semantics as the store-backed one.
func NewMemoryOrderRepository(codec storage.IDCodec) OrderRepository {
	return &memoryOrderRepository{codec: codec}
}

type memoryOrderRepository struct {
	mu    sync.RWMutex
	docs  []bson.M
	codec storage.IDCodec
}

func (r *memoryOrderRepository) Create(_ context.Context, o *domain.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := storage.OrderDocument(o)
	oid := primitive.NewObjectID()
	doc["_id"] = oid
	r.docs = append(r.docs, doc)
	return r.codec.Format(oid), nil
}

func (r *memoryOrderRepository) List(_ context.Context, limit int64) ([]*domain.OrderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*domain.OrderSummary, 0, len(r.docs))
	for _, doc := range r.docs {
		orders = append(orders, storage.OrderSummaryFromDocument(doc))
	}

	// Newest first, matching the created_at sort on the real store.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if limit > 0 && int64(len(orders)) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}
