package storage

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/commercekit/shop-api/internal/domain"
)

const connectTimeout = 10 * time.Second

// Config carries the document store connection settings. Either field may
// be empty, which leaves the store unconfigured.
type Config struct {
	URL  string
	Name string
}

// Store owns the single long-lived MongoDB client shared by every
// request; concurrent use is safe because the driver's client is. A Store
// is always usable: without connection settings it is "unconfigured" and
// collection access fails fast with domain.ErrStoreUnconfigured instead
// of hanging or crashing the process.
type Store struct {
	log    hclog.Logger
	cfg    Config
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the Store. Missing configuration or an unreachable
// server is logged, not fatal: the service still starts and the
// diagnostics endpoint reports the degraded state.
func Connect(ctx context.Context, cfg Config, log hclog.Logger) *Store {
	s := &Store{log: log, cfg: cfg}

	if cfg.URL == "" || cfg.Name == "" {
		log.Warn("Database not configured, data endpoints will refuse requests",
			"url_set", cfg.URL != "", "name_set", cfg.Name != "")
		return s
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		log.Error("Unable to create MongoDB client", "error", err)
		return s
	}

	s.client = client
	s.db = client.Database(cfg.Name)

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Error("MongoDB is not reachable", "error", err)
		return s
	}

	log.Info("Connected to MongoDB", "database", cfg.Name)
	return s
}

// Collection returns a handle on the named collection, or
// domain.ErrStoreUnconfigured when the store was never initialized.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnconfigured
	}
	return s.db.Collection(name), nil
}

// ListCollectionNames reports the collections present in the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnconfigured
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Ping checks live connectivity to the server.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return domain.ErrStoreUnconfigured
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Configured reports whether connection settings were provided,
// regardless of whether the server turned out to be reachable.
func (s *Store) Configured() bool {
	return s.cfg.URL != "" && s.cfg.Name != ""
}

// Initialized reports whether a database handle exists. It does not imply
// the server is reachable.
func (s *Store) Initialized() bool {
	return s.db != nil
}

// Config returns the settings the store was built with.
func (s *Store) Config() Config {
	return s.cfg
}

// Disconnect releases the client during shutdown.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
