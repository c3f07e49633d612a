// Package relation models named Snowflake objects (tables, views,
// materialized views, external tables) and the identifier case-folding
// rules the adapter applies before any lookup or comparison.
//
// Snowflake folds unquoted identifiers to upper case and takes quoted
// identifiers literally. Every keyed structure in this module works on
// names normalized under those rules, so "orders" and ORDERS resolve to
// the same object unless the user asked for quoting.
package relation

import "strings"

// Type is the semantic kind of a relation.
type Type string

// Relation type constants.
const (
	Unknown          Type = ""
	Table            Type = "table"
	View             Type = "view"
	CTE              Type = "cte"
	MaterializedView Type = "materialized_view"
	External         Type = "external"
)

// ParseType maps a kind string reported by the warehouse to a relation
// type. Snowflake reports kinds the engine has no materialization for
// (stages, sequences, streams); those map to External rather than
// failing, so one exotic object in a schema cannot break cache loads.
func ParseType(kind string) Type {
	switch strings.ToLower(kind) {
	case "table", "base table":
		return Table
	case "view":
		return View
	case "cte":
		return CTE
	case "materialized view", "materialized_view", "materializedview":
		return MaterializedView
	case "external table", "external":
		return External
	default:
		return External
	}
}

// QuotePolicy controls, per name part, whether rendered SQL preserves
// literal case (quoted) or is emitted unquoted and left to the engine's
// case folding.
type QuotePolicy struct {
	Database   bool
	Schema     bool
	Identifier bool
}

// Relation describes one database object. The zero value of any name
// part means the part is absent (Snowflake identifiers cannot be
// empty). Type and QuotePolicy are carried for rendering but are not
// part of a relation's identity; see Key.
type Relation struct {
	Database   string
	Schema     string
	Identifier string
	Type       Type
	Quote      QuotePolicy
}

// Key identifies a relation by its normalized name triple. Two
// relations with the same Key refer to the same database object even if
// their kinds or quote policies differ.
type Key struct {
	Database   string
	Schema     string
	Identifier string
}

// SchemaKey identifies a (database, schema) pair by normalized name.
type SchemaKey struct {
	Database string
	Schema   string
}

// Key returns the relation's identity under its own quote policy:
// unquoted parts are folded to upper case, quoted parts are literal.
func (r Relation) Key() Key {
	q := Quoting(r.Quote)
	db, sch, id := q.Normalize(r.Database, r.Schema, r.Identifier)
	return Key{Database: db, Schema: sch, Identifier: id}
}

// SchemaKey returns the normalized (database, schema) pair the relation
// lives in.
func (r Relation) SchemaKey() SchemaKey {
	k := r.Key()
	return SchemaKey{Database: k.Database, Schema: k.Schema}
}

// Render returns the dotted SQL name of the relation, quoting each
// present part according to the quote policy. Absent parts are skipped,
// so a schema-only relation renders as "DB"."SCHEMA".
func (r Relation) Render() string {
	parts := make([]string, 0, 3)
	for _, p := range []struct {
		value string
		quote bool
	}{
		{r.Database, r.Quote.Database},
		{r.Schema, r.Quote.Schema},
		{r.Identifier, r.Quote.Identifier},
	} {
		if p.value == "" {
			continue
		}
		if p.quote {
			parts = append(parts, QuoteIdentifier(p.value))
		} else {
			parts = append(parts, p.value)
		}
	}
	return strings.Join(parts, ".")
}

// WithoutIdentifier returns a copy of the relation scoped to its schema
// only, used when a statement targets the schema rather than the object.
func (r Relation) WithoutIdentifier() Relation {
	r.Identifier = ""
	return r
}

// QuoteIdentifier wraps an identifier in double quotes, escaping any
// embedded quote characters.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
