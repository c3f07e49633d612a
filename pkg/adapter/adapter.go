// Package adapter defines the contract between the transformation
// engine and warehouse adapter plugins: connection management, metadata
// listing, relation-cache maintenance, and per-model execution hooks.
//
// Concrete implementations live in sibling packages (pkg/snowflake) and
// register themselves with this package's registry in their init
// functions.
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// Config holds the connection settings for a warehouse target.
type Config struct {
	// Type selects the registered adapter implementation.
	Type string

	// Account is the account identifier (e.g. "myorg-myaccount").
	Account string

	// Username and Password authenticate the session.
	Username string
	Password string

	// Database and Schema are the session defaults.
	Database string
	Schema   string

	// Warehouse is the default compute warehouse for the session.
	Warehouse string

	// Role is the role to assume. Optional.
	Role string

	// Quoting is the project-level identifier quoting configuration.
	Quoting relation.Quoting

	// Options contains additional driver-specific connection options.
	Options map[string]string
}

// Column describes one column of a relation.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// Rows wraps sql.Rows to provide a consistent interface across adapters.
type Rows struct {
	*sql.Rows
}

// Manifest enumerates the schemas a run will touch. The engine's build
// manifest satisfies this; the adapter only needs the schema set to
// pre-populate its relation cache.
type Manifest interface {
	// CacheSchemas returns the normalized (database, schema) pairs that
	// must be cache-resident before the run starts.
	CacheSchemas() []relation.SchemaKey
}

// Adapter is the interface every warehouse adapter implements.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// ListSchemas returns the names of the schemas in a database.
	ListSchemas(ctx context.Context, database string) ([]string, error)

	// ListRelationsWithoutCaching lists the relations in one schema
	// directly from the warehouse, bypassing the relation cache. A
	// schema that does not exist yields an empty result, not an error.
	ListRelationsWithoutCaching(ctx context.Context, schemaRelation relation.Relation) ([]relation.Relation, error)

	// ColumnsInRelation describes the columns of a relation. A relation
	// that does not exist, or that the session's role cannot see,
	// yields an empty result rather than an error.
	ColumnsInRelation(ctx context.Context, rel relation.Relation) ([]Column, error)

	// SetRelationsCache repopulates the adapter's relation cache for
	// every schema in the manifest. When clear is true the previous
	// contents are discarded in the same atomic step.
	SetRelationsCache(ctx context.Context, manifest Manifest, clear bool) error

	// PreModelHook runs before a model executes. The model's raw config
	// mapping is passed through from the engine untouched. The returned
	// string is opaque saved state handed back to PostModelHook.
	PreModelHook(ctx context.Context, modelConfig map[string]any) (string, error)

	// PostModelHook runs after a model executes, whether or not the
	// model succeeded. saved is the value PreModelHook returned.
	PostModelHook(ctx context.Context, modelConfig map[string]any, saved string) error

	// QuoteSeedColumn renders a seed column name according to the
	// seed's quote_columns config, which may be a bool or absent (nil).
	QuoteSeedColumn(column string, quote any) (string, error)
}
