package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/domain"
)

func NewRouter(
	ph *ProductHandler,
	oh *OrderHandler,
	sh *SystemHandler,
	validator *domain.Validation,
	logger hclog.Logger,
) http.Handler {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger, validator)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Public routes (no request body to validate)
	router.HandleFunc("/", sh.Root).Methods("GET")
	router.HandleFunc("/test", sh.TestStore).Methods("GET")
	router.HandleFunc("/products", ph.ListProducts).Methods("GET")
	// No pattern on {id}: a malformed identifier must reach the handler
	// and come back as 400, not fall through to a routing 404
	router.HandleFunc("/products/{id}", ph.GetProductByID).Methods("GET")
	router.HandleFunc("/orders", oh.ListOrders).Methods("GET")
	router.HandleFunc("/seed", ph.SeedProducts).Methods("POST")

	// Routes requiring validation middleware (for request body validation)
	router.Handle("/products",
		mw.ProductValidationMiddleware(http.HandlerFunc(ph.CreateProduct))).Methods("POST")
	router.Handle("/orders",
		mw.OrderValidationMiddleware(http.HandlerFunc(oh.CreateOrder))).Methods("POST")

	// Swagger UI and specification routes
	// Determine the absolute path to the swagger.yaml file
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // Navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml") // .../swagger.yaml

	// Serve the swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// Allow browser clients from any origin, mirroring the permissive
	// defaults the storefront expects
	corsHandler := gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return corsHandler(router)
}
