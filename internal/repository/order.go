package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/storage"
)

// OrderRepository is the persistence boundary for the order log.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (string, error)
	List(ctx context.Context, limit int64) ([]*domain.OrderSummary, error)
}

// NewMongoOrderRepository returns an OrderRepository backed by the
// document store.
func NewMongoOrderRepository(store *storage.Store, codec storage.IDCodec) OrderRepository {
	return &mongoOrderRepository{store: store, codec: codec}
}

type mongoOrderRepository struct {
	store *storage.Store
	codec storage.IDCodec
}

func (r *mongoOrderRepository) Create(ctx context.Context, o *domain.Order) (string, error) {
	col, err := r.store.Collection(storage.OrderCollection)
	if err != nil {
		return "", err
	}

	res, err := col.InsertOne(ctx, storage.OrderDocument(o))
	if err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return r.codec.Format(oid), nil
}

func (r *mongoOrderRepository) List(ctx context.Context, limit int64) ([]*domain.OrderSummary, error) {
	col, err := r.store.Collection(storage.OrderCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}

	orders := make([]*domain.OrderSummary, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, storage.OrderSummaryFromDocument(doc))
	}
	return orders, nil
}
