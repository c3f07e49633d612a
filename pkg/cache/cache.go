// Package cache maintains the adapter's in-process index of relations
// known to exist in the warehouse. During a run the engine consults the
// cache for existence checks instead of issuing metadata queries, and
// keeps it current by mirroring every create, drop, and rename it
// performs. Contents are a snapshot: the cache never re-queries the
// warehouse on its own, and staleness between explicit repopulations is
// accepted.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// ListAllObjectsFunc lists every object in a database. BulkPopulate
// calls it once per distinct database rather than once per schema.
type ListAllObjectsFunc func(ctx context.Context, database string) ([]relation.Relation, error)

// ConsistencyError reports a cache mutation that contradicts what the
// cache knows, such as renaming a relation it never tracked. It always
// indicates a tracking bug in the caller and is never swallowed.
type ConsistencyError struct {
	Op  string
	Key relation.Key
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("relation cache inconsistency during %s: %s.%s.%s is not tracked",
		e.Op, e.Key.Database, e.Key.Schema, e.Key.Identifier)
}

// Cache is a concurrency-safe directory of relations keyed by
// normalized name, scoped by the set of schemas it has been told about.
// Schemas are tracked even when empty, so "known but empty" is
// distinguishable from "never queried".
//
// One Cache is created per adapter session and discarded with it; it is
// the only mutable state shared between run workers.
type Cache struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	relations map[relation.Key]relation.Relation
	schemas   map[relation.SchemaKey]struct{}
}

// New creates an empty cache. If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		logger:    logger,
		relations: make(map[relation.Key]relation.Relation),
		schemas:   make(map[relation.SchemaKey]struct{}),
	}
}

// Clear removes all tracked relations and known-schema markers.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.relations = make(map[relation.Key]relation.Relation)
	c.schemas = make(map[relation.SchemaKey]struct{})
}

// Add inserts or overwrites the relation at its normalized key and
// marks its schema as known. Adding the same relation twice is a no-op
// beyond the overwrite.
func (c *Cache) Add(rel relation.Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(rel)
}

// addLocked requires c.mu to be held exclusively.
func (c *Cache) addLocked(rel relation.Relation) {
	key := rel.Key()
	c.relations[key] = rel
	// A relation cannot be tracked without its schema being known.
	c.schemas[rel.SchemaKey()] = struct{}{}
}

// Drop removes the relation at its key if present. Dropping a relation
// the cache never tracked is a no-op: upstream "drop if exists"
// semantics make that a normal occurrence.
func (c *Cache) Drop(rel relation.Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.relations, rel.Key())
}

// Rename atomically moves the entry at old's key to new's key. The
// descriptor stored at the new key is the caller-supplied new relation,
// including its kind and quote policy. Renaming a relation the cache
// does not track returns a ConsistencyError.
func (c *Cache) Rename(old, new relation.Relation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	oldKey := old.Key()
	if _, ok := c.relations[oldKey]; !ok {
		return &ConsistencyError{Op: "rename", Key: oldKey}
	}
	delete(c.relations, oldKey)
	c.addLocked(new)
	return nil
}

// IsSchemaKnown reports whether the schema has been loaded or marked at
// least once. A schema can be known and still hold zero relations.
func (c *Cache) IsSchemaKnown(key relation.SchemaKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.schemas[key]
	return ok
}

// RelationsInSchema returns the relations tracked under the given
// normalized (database, schema) pair. An unknown schema and a known but
// empty schema both yield an empty slice; callers that need the
// distinction consult IsSchemaKnown.
func (c *Cache) RelationsInSchema(key relation.SchemaKey) []relation.Relation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var rels []relation.Relation
	for k, rel := range c.relations {
		if k.Database == key.Database && k.Schema == key.Schema {
			rels = append(rels, rel)
		}
	}
	return rels
}

// Len returns the number of tracked relations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.relations)
}

// BulkPopulate loads the requested schemas into the cache using one
// lister call per distinct database, not one per schema. Objects
// returned for schemas outside the requested set are discarded. Every
// requested schema is marked known afterwards, including schemas the
// lister returned no objects for.
//
// The listing round trips run before the lock is taken (concurrently,
// one goroutine per database) so the lock is held only for the
// in-memory merge. The merge itself, plus the optional clear, is one
// critical section: a concurrent reader sees either the previous state
// or the fully loaded one, never a partial mix.
func (c *Cache) BulkPopulate(ctx context.Context, schemas []relation.SchemaKey, list ListAllObjectsFunc, clear bool) error {
	want := make(map[relation.SchemaKey]struct{}, len(schemas))
	databases := make(map[string]struct{})
	for _, key := range schemas {
		want[key] = struct{}{}
		databases[key.Database] = struct{}{}
	}

	var (
		listedMu sync.Mutex
		listed   []relation.Relation
	)
	g, gctx := errgroup.WithContext(ctx)
	for database := range databases {
		g.Go(func() error {
			rels, err := list(gctx, database)
			if err != nil {
				return err
			}
			listedMu.Lock()
			listed = append(listed, rels...)
			listedMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if clear {
		c.relations = make(map[relation.Key]relation.Relation)
		c.schemas = make(map[relation.SchemaKey]struct{})
	}
	added := 0
	for _, rel := range listed {
		if _, ok := want[rel.SchemaKey()]; ok {
			c.addLocked(rel)
			added++
		}
	}
	for key := range want {
		c.schemas[key] = struct{}{}
	}

	c.logger.Debug("relation cache populated",
		slog.Int("schemas", len(want)),
		slog.Int("relations", added))
	return nil
}
