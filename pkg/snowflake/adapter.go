// Package snowflake provides the Snowflake warehouse adapter: metadata
// listing, relation-cache maintenance, per-model warehouse switching,
// and seed column quoting. It registers itself with the adapter
// registry under the name "snowflake".
package snowflake

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/snowflakedb/gosnowflake"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
	"github.com/leapstack-labs/leapsql-snowflake/pkg/cache"
)

func init() {
	adapter.Register("snowflake", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}

// Adapter implements the adapter.Adapter interface for Snowflake.
type Adapter struct {
	adapter.BaseSQLAdapter

	cache *cache.Cache
}

// New creates a new Snowflake adapter instance with an empty relation
// cache. If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
		cache:          cache.New(logger),
	}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return "snowflake"
}

// Connect establishes a connection to Snowflake.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return fmt.Errorf("failed to build snowflake DSN: %w", err)
	}

	a.Logger.Debug("connecting to snowflake",
		slog.String("account", cfg.Account),
		slog.String("database", cfg.Database),
		slog.String("warehouse", cfg.Warehouse))

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return fmt.Errorf("failed to open snowflake connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping snowflake: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// buildDSN constructs a Snowflake connection string from the adapter
// config using the driver's own DSN builder.
func buildDSN(cfg adapter.Config) (string, error) {
	sfCfg := &gosnowflake.Config{
		Account:       cfg.Account,
		User:          cfg.Username,
		Password:      cfg.Password,
		Database:      cfg.Database,
		Schema:        cfg.Schema,
		Warehouse:     cfg.Warehouse,
		Role:          cfg.Role,
		Authenticator: gosnowflake.AuthTypeSnowflake,
		Application:   "leapsql",
	}
	if len(cfg.Options) > 0 {
		sfCfg.Params = make(map[string]*string, len(cfg.Options))
		for k, v := range cfg.Options {
			sfCfg.Params[k] = &v
		}
	}
	return gosnowflake.DSN(sfCfg)
}

// Cache returns the adapter's relation cache. The engine mirrors its
// DDL into it during a run: Add after create, Drop after drop, Rename
// after rename.
func (a *Adapter) Cache() *cache.Cache {
	return a.cache
}

// SetRelationsCache populates the relation cache for every schema the
// manifest will touch, one listing query per database. When clear is
// true the previous contents are discarded atomically with the reload,
// so concurrent readers never observe the cache between states.
func (a *Adapter) SetRelationsCache(ctx context.Context, manifest adapter.Manifest, clear bool) error {
	return a.cache.BulkPopulate(ctx, manifest.CacheSchemas(), a.ListAllObjects, clear)
}

// DateFunction returns the SQL expression for the current timestamp.
func (a *Adapter) DateFunction() string {
	return "CURRENT_TIMESTAMP()"
}

// TimestampAddSQL renders a DATEADD expression.
func (a *Adapter) TimestampAddSQL(addTo string, number int, interval string) string {
	return fmt.Sprintf("DATEADD(%s, %d, %s)", interval, number, addTo)
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
