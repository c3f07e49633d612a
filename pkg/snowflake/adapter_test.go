package snowflake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// stubManifest satisfies adapter.Manifest with a fixed schema set.
type stubManifest struct {
	schemas []relation.SchemaKey
}

func (m *stubManifest) CacheSchemas() []relation.SchemaKey { return m.schemas }

func TestRegistered(t *testing.T) {
	require.True(t, adapter.IsRegistered("snowflake"))

	a, err := adapter.New(adapter.Config{Type: "snowflake"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Adapter{}, a)
}

func TestBuildDSN(t *testing.T) {
	dsn, err := buildDSN(adapter.Config{
		Account:   "myorg-myaccount",
		Username:  "LOADER",
		Password:  "secret",
		Database:  "ANALYTICS",
		Schema:    "PUBLIC",
		Warehouse: "TRANSFORMING",
		Role:      "TRANSFORMER",
	})
	require.NoError(t, err)
	assert.Contains(t, dsn, "myorg-myaccount")
	assert.Contains(t, dsn, "ANALYTICS")
	assert.Contains(t, dsn, "warehouse=TRANSFORMING")
	assert.Contains(t, dsn, "role=TRANSFORMER")
}

func TestSetRelationsCache(t *testing.T) {
	a, mock := newMockAdapter(t)

	mock.ExpectQuery("SHOW TERSE OBJECTS IN DATABASE ANALYTICS").WillReturnRows(terseObjectRows(
		[4]string{"ANALYTICS", "PUBLIC", "ORDERS", "TABLE"},
		[4]string{"ANALYTICS", "PUBLIC", "V1", "VIEW"},
		[4]string{"ANALYTICS", "ELSEWHERE", "IGNORED", "TABLE"},
	))

	manifest := &stubManifest{schemas: []relation.SchemaKey{
		{Database: "ANALYTICS", Schema: "PUBLIC"},
		{Database: "ANALYTICS", Schema: "EMPTY"},
	}}
	require.NoError(t, a.SetRelationsCache(context.Background(), manifest, true))

	public := relation.SchemaKey{Database: "ANALYTICS", Schema: "PUBLIC"}
	rels := a.Cache().RelationsInSchema(public)
	require.Len(t, rels, 2)

	empty := relation.SchemaKey{Database: "ANALYTICS", Schema: "EMPTY"}
	assert.True(t, a.Cache().IsSchemaKnown(empty))
	assert.Empty(t, a.Cache().RelationsInSchema(empty))

	// Schemas outside the manifest were not pulled in.
	elsewhere := relation.SchemaKey{Database: "ANALYTICS", Schema: "ELSEWHERE"}
	assert.False(t, a.Cache().IsSchemaKnown(elsewhere))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDateFunction(t *testing.T) {
	a := New(nil)
	assert.Equal(t, "CURRENT_TIMESTAMP()", a.DateFunction())
}

func TestTimestampAddSQL(t *testing.T) {
	a := New(nil)
	assert.Equal(t, "DATEADD(hour, 1, COLLECTED_AT)", a.TimestampAddSQL("COLLECTED_AT", 1, "hour"))
}
