package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/repository"
	"github.com/commercekit/shop-api/internal/service"
	"github.com/commercekit/shop-api/internal/storage"
)

// newMemoryRouter wires the full HTTP surface over in-memory
// repositories, so handler behavior is tested through real routing,
// middleware and services.
func newMemoryRouter() http.Handler {
	logger := hclog.NewNullLogger()
	codec := storage.NewIDCodec()
	store := storage.Connect(context.Background(), storage.Config{}, logger)

	productRepo := repository.NewMemoryProductRepository(codec)
	orderRepo := repository.NewMemoryOrderRepository(codec)

	ps := service.NewProductService(productRepo, logger)
	osvc := service.NewOrderService(orderRepo, logger)
	d := service.NewDiagnostics(store, logger)

	ph := NewProductHandler(ps, logger)
	oh := NewOrderHandler(osvc, logger)
	sh := NewSystemHandler(d, logger)

	return NewRouter(ph, oh, sh, domain.NewValidation(), logger)
}

// newUnconfiguredRouter wires the surface over the real store-backed
// repositories with no store configuration, the state a deployment is in
// before its environment is set up.
func newUnconfiguredRouter() http.Handler {
	logger := hclog.NewNullLogger()
	codec := storage.NewIDCodec()
	store := storage.Connect(context.Background(), storage.Config{}, logger)

	ps := service.NewProductService(repository.NewMongoProductRepository(store, codec), logger)
	osvc := service.NewOrderService(repository.NewMongoOrderRepository(store, codec), logger)
	d := service.NewDiagnostics(store, logger)

	ph := NewProductHandler(ps, logger)
	oh := NewOrderHandler(osvc, logger)
	sh := NewSystemHandler(d, logger)

	return NewRouter(ph, oh, sh, domain.NewValidation(), logger)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestRootBanner(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "GET", "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "E-Commerce API is running", body["message"])
}

func TestCreateProductAndGetIt(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/products",
		`{"title":"Wireless Headphones","description":"Noise-cancelling","price":99.99,"category":"Electronics","in_stock":true,"rating":4.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created["id"])

	rec = doRequest(t, router, "GET", "/products/"+created["id"], "")
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	decodeBody(t, rec, &p)
	assert.Equal(t, created["id"], p.ID)
	assert.Equal(t, "Wireless Headphones", p.Title)
	assert.Equal(t, 99.99, p.Price)
	assert.Equal(t, "Electronics", p.Category)
	assert.True(t, p.InStock)
	assert.Equal(t, 4.5, p.Rating)
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/products", `{"title":"Pen","category":"Stationery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, "GET", "/products/"+created["id"], "")
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	decodeBody(t, rec, &p)
	assert.True(t, p.InStock)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Image)
	assert.Equal(t, float64(0), p.Price)
	assert.Equal(t, float64(0), p.Rating)
}

func TestCreateProductValidationErrors(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/products", `{"price":-5}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errs []map[string]string
	decodeBody(t, rec, &errs)
	require.Len(t, errs, 3)
	assert.Equal(t, "Title", errs[0]["field"])
	assert.Equal(t, "Price", errs[1]["field"])
	assert.Equal(t, "Category", errs[2]["field"])
	assert.Contains(t, errs[0]["message"], "required")
}

func TestCreateProductMalformedJSON(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/products", `{"title":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid product data", body["message"])
}

func TestGetProductInvalidID(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "GET", "/products/not-an-object-id", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid product id", body["message"])
}

func TestGetProductNotFound(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "GET", "/products/"+primitive.NewObjectID().Hex(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Product not found", body["message"])
}

func TestListProductsFilters(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("All products", func(t *testing.T) {
		rec := doRequest(t, router, "GET", "/products", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		decodeBody(t, rec, &products)
		assert.Len(t, products, 4)
	})

	t.Run("Query is case insensitive", func(t *testing.T) {
		rec := doRequest(t, router, "GET", "/products?q=WIRELESS", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		decodeBody(t, rec, &products)
		require.Len(t, products, 1)
		assert.Equal(t, "Wireless Headphones", products[0].Title)
	})

	t.Run("Category filter", func(t *testing.T) {
		rec := doRequest(t, router, "GET", "/products?category=Wearables", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		decodeBody(t, rec, &products)
		require.Len(t, products, 1)
		assert.Equal(t, "Smart Watch", products[0].Title)
	})

	t.Run("Limit caps the result", func(t *testing.T) {
		rec := doRequest(t, router, "GET", "/products?limit=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		decodeBody(t, rec, &products)
		assert.Len(t, products, 2)
	})

	t.Run("No match is an empty list, not an error", func(t *testing.T) {
		rec := doRequest(t, router, "GET", "/products?q=quadcopter", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestSeedIsIdempotent(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int
	decodeBody(t, rec, &body)
	assert.Equal(t, 4, body["inserted"])

	rec = doRequest(t, router, "POST", "/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, 0, body["inserted"])
}

func TestCreateOrderFlow(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/orders",
		`{"customer_name":"Jane Doe","customer_email":"jane@example.com","shipping_address":"1 Main St",
		  "items":[{"product_id":"p1","title":"Wireless Headphones","quantity":2,"price":99.99},
		           {"product_id":"p2","title":"Backpack","quantity":1,"price":59.99}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]interface{}
	decodeBody(t, rec, &payload)

	assert.NotEmpty(t, payload["id"])
	assert.Equal(t, "pending", payload["status"])
	assert.InDelta(t, 259.97, payload["total_amount"].(float64), 0.0001)
	assert.NotEmpty(t, payload["created_at"])

	number, ok := payload["order_number"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(number, "ORD-"))
	assert.Len(t, number, len("ORD-")+14)

	items, ok := payload["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)

	// Contact details are stored but never serialized back
	assert.NotContains(t, payload, "customer_name")
	assert.NotContains(t, payload, "customer_email")
	assert.NotContains(t, payload, "shipping_address")
}

func TestCreateOrderEmptyItems(t *testing.T) {
	router := newMemoryRouter()

	for _, body := range []string{
		`{"customer_name":"Jane Doe","customer_email":"jane@example.com","shipping_address":"1 Main St","items":[]}`,
		`{"customer_name":"Jane Doe","customer_email":"jane@example.com","shipping_address":"1 Main St"}`,
	} {
		rec := doRequest(t, router, "POST", "/orders", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var reply map[string]string
		decodeBody(t, rec, &reply)
		assert.Equal(t, "Order must contain at least one item", reply["message"])
	}
}

func TestCreateOrderValidationErrors(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/orders",
		`{"customer_name":"Jane Doe","customer_email":"nope","shipping_address":"1 Main St",
		  "items":[{"product_id":"p1","title":"Pen","quantity":1,"price":1}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errs []map[string]string
	decodeBody(t, rec, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "CustomerEmail", errs[0]["field"])
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	router := newMemoryRouter()

	rec := doRequest(t, router, "POST", "/orders", `{"customer_name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid order data", body["message"])
}

func TestListOrders(t *testing.T) {
	router := newMemoryRouter()

	order := `{"customer_name":"Jane Doe","customer_email":"jane@example.com","shipping_address":"1 Main St",
	           "items":[{"product_id":"p1","title":"Pen","quantity":1,"price":2.5}]}`
	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, "POST", "/orders", order)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, "GET", "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []domain.OrderSummary `json:"orders"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Orders, 2)
	assert.NotEmpty(t, body.Orders[0].ID)
	assert.InDelta(t, 2.5, body.Orders[0].TotalAmount, 0.0001)

	rec = doRequest(t, router, "GET", "/orders?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Len(t, body.Orders, 1)
}

func TestUnconfiguredStoreRefusesDataRequests(t *testing.T) {
	router := newUnconfiguredRouter()

	testCases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"List products", "GET", "/products", ""},
		{"Get product", "GET", "/products/" + primitive.NewObjectID().Hex(), ""},
		{"Create product", "POST", "/products", `{"title":"Pen","category":"Stationery"}`},
		{"List orders", "GET", "/orders", ""},
		{"Create order", "POST", "/orders",
			`{"customer_name":"Jane Doe","customer_email":"jane@example.com","shipping_address":"1 Main St",
			  "items":[{"product_id":"p1","title":"Pen","quantity":1,"price":1}]}`},
		{"Seed", "POST", "/seed", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.target, tc.body)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]string
			decodeBody(t, rec, &body)
			assert.Equal(t, "Database not configured", body["message"])
		})
	}
}

func TestUnconfiguredStoreStillServesBannerAndDiagnostics(t *testing.T) {
	router := newUnconfiguredRouter()

	rec := doRequest(t, router, "GET", "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, "GET", "/test", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report service.StoreReport
	decodeBody(t, rec, &report)
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "❌ Not Available", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
}

func TestInvalidIDBeatsUnconfiguredStore(t *testing.T) {
	// A malformed id is reported as such even when no store is behind
	// the repository.
	router := newUnconfiguredRouter()

	rec := doRequest(t, router, "GET", "/products/not-an-object-id", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid product id", body["message"])
}
