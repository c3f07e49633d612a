package snowflake

// listing.go - metadata queries: schemas, relations, columns

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// listedQuotePolicy is the quote policy applied to every relation read
// back from the warehouse: SHOW reports canonical names, so they are
// rendered quoted and case-preserved from then on.
var listedQuotePolicy = relation.QuotePolicy{Database: true, Schema: true, Identifier: true}

// ListSchemas returns the names of the schemas in a database, in the
// order the warehouse reports them.
func (a *Adapter) ListSchemas(ctx context.Context, database string) ([]string, error) {
	rows, err := a.Query(ctx, "SHOW TERSE SCHEMAS IN DATABASE "+database)
	if err != nil {
		return nil, fmt.Errorf("database error while listing schemas in database %q: %w", database, err)
	}
	defer func() { _ = rows.Close() }()

	records, err := scanShowOutput(rows)
	if err != nil {
		return nil, fmt.Errorf("database error while listing schemas in database %q: %w", database, err)
	}

	schemas := make([]string, 0, len(records))
	for _, rec := range records {
		schemas = append(schemas, rec["name"])
	}
	return schemas, nil
}

// ListRelationsWithoutCaching lists the relations in one schema
// directly from the warehouse. A schema that does not exist yields an
// empty result: target schemas are routinely declared in configuration
// before anything has been created in them.
func (a *Adapter) ListRelationsWithoutCaching(ctx context.Context, schemaRelation relation.Relation) ([]relation.Relation, error) {
	scope := schemaRelation.WithoutIdentifier().Render()
	rows, err := a.Query(ctx, "SHOW TERSE OBJECTS IN "+scope)
	if err != nil {
		if isObjectNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error while listing relations in %s: %w", scope, err)
	}
	defer func() { _ = rows.Close() }()

	records, err := scanShowOutput(rows)
	if err != nil {
		return nil, fmt.Errorf("database error while listing relations in %s: %w", scope, err)
	}
	return relationsFromRecords(records), nil
}

// ListAllObjects lists every object across every schema of a database.
// The relation cache uses this for bulk population, one query per
// database instead of one per schema. Unlike the per-schema listing, a
// missing database is a hard error and is not suppressed.
func (a *Adapter) ListAllObjects(ctx context.Context, database string) ([]relation.Relation, error) {
	rows, err := a.Query(ctx, "SHOW TERSE OBJECTS IN DATABASE "+database)
	if err != nil {
		return nil, fmt.Errorf("database error while listing objects in database %q: %w", database, err)
	}
	defer func() { _ = rows.Close() }()

	records, err := scanShowOutput(rows)
	if err != nil {
		return nil, fmt.Errorf("database error while listing objects in database %q: %w", database, err)
	}
	return relationsFromRecords(records), nil
}

// ColumnsInRelation describes the columns of a relation. A relation
// that does not exist, or that the session's role cannot see, yields an
// empty result rather than an error.
func (a *Adapter) ColumnsInRelation(ctx context.Context, rel relation.Relation) ([]adapter.Column, error) {
	rows, err := a.Query(ctx, "DESCRIBE TABLE "+rel.Render())
	if err != nil {
		if isObjectNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error while describing %s: %w", rel.Render(), err)
	}
	defer func() { _ = rows.Close() }()

	records, err := scanShowOutput(rows)
	if err != nil {
		return nil, fmt.Errorf("database error while describing %s: %w", rel.Render(), err)
	}

	columns := make([]adapter.Column, 0, len(records))
	for _, rec := range records {
		columns = append(columns, adapter.Column{
			Name:     rec["name"],
			Type:     rec["type"],
			Nullable: strings.EqualFold(rec["null?"], "Y"),
		})
	}
	return columns, nil
}

// relationsFromRecords maps SHOW TERSE OBJECTS output rows into
// relation descriptors.
func relationsFromRecords(records []map[string]string) []relation.Relation {
	rels := make([]relation.Relation, 0, len(records))
	for _, rec := range records {
		rels = append(rels, relation.Relation{
			Database:   rec["database_name"],
			Schema:     rec["schema_name"],
			Identifier: rec["name"],
			Type:       relation.ParseType(rec["kind"]),
			Quote:      listedQuotePolicy,
		})
	}
	return rels
}

// scanShowOutput reads every row into name-indexed string maps. The
// column set of SHOW and DESCRIBE output varies across warehouse
// versions, so values are located by column name rather than position.
func scanShowOutput(rows *adapter.Rows) ([]map[string]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var records []map[string]string
	for rows.Next() {
		raw := make([]any, len(cols))
		for i := range raw {
			raw[i] = new(any)
		}
		if err := rows.Scan(raw...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}

		rec := make(map[string]string, len(cols))
		for i, col := range cols {
			rec[strings.ToLower(col)] = valueToString(*(raw[i].(*any)))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return records, nil
}

// valueToString renders a scanned value as a string; NULL becomes "".
func valueToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
