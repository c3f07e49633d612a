package relation

import "strings"

// Quoting holds the project-level quoting configuration: one flag per
// name part. A part whose flag is false is subject to Snowflake's case
// folding; a part whose flag is true keeps its literal case.
type Quoting struct {
	Database   bool `koanf:"database" mapstructure:"database"`
	Schema     bool `koanf:"schema" mapstructure:"schema"`
	Identifier bool `koanf:"identifier" mapstructure:"identifier"`
}

// Normalize applies the warehouse's case-folding rules to a name
// triple. Parts whose quoting flag is false are upper-cased, the same
// fold the engine applies to unquoted identifiers; quoted parts pass
// through untouched. Absent parts (empty strings) stay absent.
//
// Normalize is pure and idempotent: normalizing an already-normalized
// triple is a no-op.
func (q Quoting) Normalize(database, schema, identifier string) (db, sch, id string) {
	db, sch, id = database, schema, identifier
	if db != "" && !q.Database {
		db = strings.ToUpper(db)
	}
	if sch != "" && !q.Schema {
		sch = strings.ToUpper(sch)
	}
	if id != "" && !q.Identifier {
		id = strings.ToUpper(id)
	}
	return db, sch, id
}

// NormalizeSchema applies Normalize to a (database, schema) pair.
func (q Quoting) NormalizeSchema(database, schema string) SchemaKey {
	db, sch, _ := q.Normalize(database, schema, "")
	return SchemaKey{Database: db, Schema: sch}
}
