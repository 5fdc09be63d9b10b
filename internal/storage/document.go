package storage

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercekit/shop-api/internal/domain"
)

// Collection names in the document store.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// ProductDocument maps a validated create request to the document that is
// persisted. Omitted stock defaults to available.
func ProductDocument(in *domain.CreateProduct) bson.M {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	doc := bson.M{
		"title":    in.Title,
		"price":    in.Price,
		"category": in.Category,
		"in_stock": inStock,
		"rating":   in.Rating,
	}
	if in.Description != nil {
		doc["description"] = *in.Description
	}
	if in.Image != nil {
		doc["image"] = *in.Image
	}
	return doc
}

// ProductFromDocument maps a stored document to the response shape.
// Documents written by older tooling may miss fields or hold loosely
// typed numbers, so every field falls back to a serving default rather
// than failing the whole read.
func ProductFromDocument(doc bson.M) *domain.Product {
	return &domain.Product{
		ID:          asID(doc["_id"]),
		Title:       asString(doc["title"], ""),
		Description: asOptionalString(doc["description"]),
		Price:       asFloat(doc["price"], 0),
		Category:    asString(doc["category"], "General"),
		InStock:     asBool(doc["in_stock"], true),
		Image:       asOptionalString(doc["image"]),
		Rating:      asFloat(doc["rating"], 0.0),
	}
}

// OrderDocument maps a composed order to its persisted form. Items are
// rebuilt field by field so the document layout stays independent of the
// request schema.
func OrderDocument(o *domain.Order) bson.M {
	items := make([]bson.M, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, bson.M{
			"product_id": it.ProductID,
			"title":      it.Title,
			"quantity":   it.Quantity,
			"price":      it.Price,
		})
	}

	return bson.M{
		"customer_name":    o.CustomerName,
		"customer_email":   o.CustomerEmail,
		"shipping_address": o.ShippingAddress,
		"items":            items,
		"total_amount":     o.TotalAmount,
		"order_number":     o.OrderNumber,
		"status":           o.Status,
		"created_at":       o.CreatedAt,
	}
}

// OrderSummaryFromDocument maps a stored order to the compact listing
// shape, applying the same serving defaults as product reads.
func OrderSummaryFromDocument(doc bson.M) *domain.OrderSummary {
	return &domain.OrderSummary{
		ID:          asID(doc["_id"]),
		OrderNumber: asString(doc["order_number"], ""),
		TotalAmount: asFloat(doc["total_amount"], 0),
		Status:      asString(doc["status"], ""),
		CreatedAt:   asTime(doc["created_at"]),
	}
}

func asID(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func asString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func asOptionalString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// asFloat tolerates the numeric types the driver may decode depending on
// how the value was originally written.
func asFloat(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

func asBool(v interface{}, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	}
	return time.Time{}
}
