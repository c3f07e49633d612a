package relation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCaseFolding(t *testing.T) {
	q := Quoting{}
	db, sch, id := q.Normalize("db", "sch", "Tbl")
	assert.Equal(t, "DB", db)
	assert.Equal(t, "SCH", sch)
	assert.Equal(t, "TBL", id)
}

func TestNormalizeQuotedPartsUntouched(t *testing.T) {
	q := Quoting{Database: true, Identifier: true}
	db, sch, id := q.Normalize("db", "sch", "Tbl")
	assert.Equal(t, "db", db)
	assert.Equal(t, "SCH", sch)
	assert.Equal(t, "Tbl", id)
}

func TestNormalizeAbsentStaysAbsent(t *testing.T) {
	q := Quoting{}
	db, sch, id := q.Normalize("", "sch", "")
	assert.Empty(t, db)
	assert.Equal(t, "SCH", sch)
	assert.Empty(t, id)
}

func TestNormalizeIdempotent(t *testing.T) {
	// Normalizing twice equals normalizing once, for every flag combination.
	for _, quoteDB := range []bool{false, true} {
		for _, quoteSchema := range []bool{false, true} {
			for _, quoteID := range []bool{false, true} {
				q := Quoting{Database: quoteDB, Schema: quoteSchema, Identifier: quoteID}
				name := fmt.Sprintf("db=%v schema=%v id=%v", quoteDB, quoteSchema, quoteID)
				t.Run(name, func(t *testing.T) {
					db1, sch1, id1 := q.Normalize("aDb", "aSchema", "aTable")
					db2, sch2, id2 := q.Normalize(db1, sch1, id1)
					assert.Equal(t, db1, db2)
					assert.Equal(t, sch1, sch2)
					assert.Equal(t, id1, id2)
				})
			}
		}
	}
}

func TestNormalizeSchema(t *testing.T) {
	q := Quoting{}
	assert.Equal(t, SchemaKey{Database: "DB", Schema: "SCH"}, q.NormalizeSchema("db", "sch"))
}
