package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/storage"
)

// ProductRepository is the persistence boundary for catalog products.
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, in *domain.CreateProduct) (string, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// NewMongoProductRepository returns a ProductRepository backed by the
// document store.
func NewMongoProductRepository(store *storage.Store, codec storage.IDCodec) ProductRepository {
	return &mongoProductRepository{store: store, codec: codec}
}

type mongoProductRepository struct {
	store *storage.Store
	codec storage.IDCodec
}

func (r *mongoProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	col, err := r.store.Collection(storage.ProductCollection)
	if err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.Query != "" {
		// QuoteMeta keeps the search a literal substring match even when
		// the input contains regex metacharacters.
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Query), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetLimit(filter.Limit)
	cur, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("finding products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	products := make([]*domain.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, storage.ProductFromDocument(doc))
	}
	return products, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	// Parse before touching the store so a malformed id is reported as
	// such even when the database is down.
	oid, err := r.codec.Parse(id)
	if err != nil {
		return nil, err
	}

	col, err := r.store.Collection(storage.ProductCollection)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding product %s: %w", id, err)
	}
	return storage.ProductFromDocument(doc), nil
}

func (r *mongoProductRepository) Insert(ctx context.Context, in *domain.CreateProduct) (string, error) {
	col, err := r.store.Collection(storage.ProductCollection)
	if err != nil {
		return "", err
	}

	res, err := col.InsertOne(ctx, storage.ProductDocument(in))
	if err != nil {
		return "", fmt.Errorf("inserting product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return r.codec.Format(oid), nil
}

func (r *mongoProductRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	col, err := r.store.Collection(storage.ProductCollection)
	if err != nil {
		return false, err
	}

	err = col.FindOne(ctx, bson.M{"title": title}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking product title: %w", err)
	}
	return true, nil
}
