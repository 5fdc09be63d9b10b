// Package classification of Shop API
//
// # Documentation for Shop API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/service"
)

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors as a list of field and message pairs
// swagger:response validationErrorsResponse
type validationErrorsResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body domain.ValidationErrors
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// Matching catalog products
	// in: body
	Body []domain.Product
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// Identifier of a newly created product
// swagger:response productCreatedResponse
type productCreatedResponseWrapper struct {
	// The assigned identifier
	// in: body
	Body idResponse
}

// How many sample products were inserted
// swagger:response seedResponse
type seedResponseWrapper struct {
	// Count of inserted products
	// in: body
	Body seedResponse
}

// Data structure representing a placed order
// swagger:response orderResponse
type orderResponseWrapper struct {
	// The stored order with its derived fields
	// in: body
	Body domain.Order
}

// A list of recent orders
// swagger:response ordersResponse
type ordersResponseWrapper struct {
	// Recent orders, newest first
	// in: body
	Body ordersResponse
}

// A short status message
// swagger:response messageResponse
type messageResponseWrapper struct {
	// The message
	// in: body
	Body messageResponse
}

// State of the document store
// swagger:response storeReportResponse
type storeReportResponseWrapper struct {
	// The probe outcome
	// in: body
	Body service.StoreReport
}

// swagger:parameters getProduct
type productIDParamsWrapper struct {
	// The identifier of the product
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters listProducts
type productListParamsWrapper struct {
	// Title substring to search for, case insensitive
	// in: query
	Q string `json:"q"`
	// Exact category to filter on
	// in: query
	Category string `json:"category"`
	// Maximum number of products to return
	// in: query
	Limit int64 `json:"limit"`
}

// swagger:parameters listOrders
type orderListParamsWrapper struct {
	// Maximum number of orders to return
	// in: query
	Limit int64 `json:"limit"`
}

// swagger:parameters createProduct
type productBodyParamsWrapper struct {
	// Product to add to the catalog
	// in: body
	// required: true
	Body domain.CreateProduct
}

// swagger:parameters createOrder
type orderBodyParamsWrapper struct {
	// Order to place
	// in: body
	// required: true
	Body domain.CreateOrder
}
