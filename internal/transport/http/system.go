package http

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/service"
)

type SystemHandler struct {
	diagnostics *service.Diagnostics
	logger      hclog.Logger
}

func NewSystemHandler(d *service.Diagnostics, log hclog.Logger) *SystemHandler {
	return &SystemHandler{
		diagnostics: d,
		logger:      log,
	}
}

// Root handles GET /
//
// swagger:route GET / system root
//
// Liveness banner.
//
// Responses:
//
//	200: messageResponse
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &messageResponse{Message: "E-Commerce API is running"})
}

// TestStore handles GET /test. The probe never fails the request;
// problems are reported inside the body.
//
// swagger:route GET /test system testStore
//
// Probes the document store and reports its state.
//
// Responses:
//
//	200: storeReportResponse
func (h *SystemHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagnostics.Report(r.Context()))
}

type messageResponse struct {
	// a short status message
	Message string `json:"message"`
}
