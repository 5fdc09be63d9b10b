package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/commercekit/shop-api/internal/storage"
)

const (
	// maxReportedCollections caps the collection listing in a report.
	maxReportedCollections = 10
	// diagnosticErrorLimit truncates raw driver errors before they are
	// echoed to a client.
	diagnosticErrorLimit = 50
	// diagnosticTimeout bounds the connectivity probe so an unreachable
	// server cannot stall the endpoint.
	diagnosticTimeout = 5 * time.Second
)

// StoreReport describes the state of the document store as seen by a
// live connectivity probe.
//
// swagger:model
type StoreReport struct {
	// liveness of the API process itself
	Backend string `json:"backend"`

	// whether connection settings were provided
	Database string `json:"database"`

	// whether a connection string is configured
	DatabaseURL string `json:"database_url"`

	// whether a database name is configured
	DatabaseName string `json:"database_name"`

	// outcome of the connectivity probe
	ConnectionStatus string `json:"connection_status"`

	// collections visible in the database, capped at ten
	Collections []string `json:"collections,omitempty"`
}

// Diagnostics probes the document store for the test endpoint.
type Diagnostics struct {
	store  *storage.Store
	logger hclog.Logger
}

// NewDiagnostics builds a Diagnostics over the given store.
func NewDiagnostics(store *storage.Store, logger hclog.Logger) *Diagnostics {
	return &Diagnostics{store: store, logger: logger}
}

// Report probes the store and always returns a report; failures are
// folded into the status strings rather than surfaced as errors.
func (d *Diagnostics) Report(ctx context.Context) *StoreReport {
	cfg := d.store.Config()

	report := &StoreReport{
		Backend:      "✅ Running",
		DatabaseURL:  presence(cfg.URL),
		DatabaseName: presence(cfg.Name),
	}

	if !d.store.Configured() {
		report.Database = "❌ Not Available"
		report.ConnectionStatus = "Not Connected"
		return report
	}

	if !d.store.Initialized() {
		report.Database = "⚠️  Available but not initialized"
		report.ConnectionStatus = "Not Connected"
		return report
	}

	// A database handle exists, so the store counts as connected even
	// when the probe below fails.
	report.ConnectionStatus = "Connected"

	probeCtx, cancel := context.WithTimeout(ctx, diagnosticTimeout)
	defer cancel()

	names, err := d.store.ListCollectionNames(probeCtx)
	if err != nil {
		d.logger.Error("Store probe failed", "error", err)
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), diagnosticErrorLimit)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Database = "✅ Connected & Working"
	report.Collections = names
	return report
}

func presence(v string) string {
	if v == "" {
		return "❌ Not Set"
	}
	return "✅ Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
