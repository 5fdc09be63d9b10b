package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		logger:         log,
	}
}

// ListProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns catalog products, filtered by title substring and category.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Limit:    parseLimit(r),
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		h.storeError(w, err, "Error listing products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /products. The payload has already been
// decoded and validated by the middleware.
//
// swagger:route POST /products products createProduct
//
// Adds a product to the catalog.
//
// Responses:
//
//	201: productCreatedResponse
//	422: validationErrorsResponse
//	500: errorResponse
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated product from the context
	in, ok := r.Context().Value(ContextKeyProduct).(*domain.CreateProduct)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	id, err := h.productService.CreateProduct(r.Context(), in)
	if err != nil {
		h.storeError(w, err, "Error creating product")
		return
	}

	writeJSON(w, http.StatusCreated, &idResponse{ID: id})
}

// GetProductByID handles GET /products/{id}
//
// swagger:route GET /products/{id} products getProduct
//
// Returns a product by its identifier.
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		if err == domain.ErrInvalidID {
			writeError(w, http.StatusBadRequest, "Invalid product id")
			return
		}
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.storeError(w, err, "Error getting product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// SeedProducts handles POST /seed
//
// swagger:route POST /seed system seedProducts
//
// Installs the sample catalog, skipping titles that already exist.
//
// Responses:
//
//	200: seedResponse
//	500: errorResponse
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.productService.SeedProducts(r.Context())
	if err != nil {
		h.storeError(w, err, "Error seeding products")
		return
	}

	writeJSON(w, http.StatusOK, &seedResponse{Inserted: inserted})
}

// storeError maps persistence failures onto 500 replies, keeping the
// unconfigured store distinguishable for callers.
func (h *ProductHandler) storeError(w http.ResponseWriter, err error, message string) {
	if err == domain.ErrStoreUnconfigured {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}
	h.logger.Error(message, "error", err)
	writeError(w, http.StatusInternalServerError, message)
}

// parseLimit reads the limit query parameter. Absent or unusable values
// return zero so the service applies its default.
func parseLimit(r *http.Request) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

type idResponse struct {
	// the identifier assigned to the created product
	ID string `json:"id"`
}

type seedResponse struct {
	// how many sample products were inserted on this call
	Inserted int `json:"inserted"`
}
