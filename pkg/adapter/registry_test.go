package adapter

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// fakeAdapter is a minimal Adapter for registry tests.
type fakeAdapter struct {
	BaseSQLAdapter
}

func (f *fakeAdapter) ListSchemas(context.Context, string) ([]string, error) { return nil, nil }
func (f *fakeAdapter) ListRelationsWithoutCaching(context.Context, relation.Relation) ([]relation.Relation, error) {
	return nil, nil
}
func (f *fakeAdapter) ColumnsInRelation(context.Context, relation.Relation) ([]Column, error) {
	return nil, nil
}
func (f *fakeAdapter) Connect(context.Context, Config) error { return nil }
func (f *fakeAdapter) SetRelationsCache(context.Context, Manifest, bool) error { return nil }
func (f *fakeAdapter) PreModelHook(context.Context, map[string]any) (string, error) {
	return "", nil
}
func (f *fakeAdapter) PostModelHook(context.Context, map[string]any, string) error { return nil }
func (f *fakeAdapter) QuoteSeedColumn(column string, _ any) (string, error) { return column, nil }

func TestRegistry(t *testing.T) {
	Register("fake", func(*slog.Logger) Adapter { return &fakeAdapter{} })

	assert.True(t, IsRegistered("fake"))
	assert.Contains(t, List(), "fake")

	a, err := New(Config{Type: "fake"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &fakeAdapter{}, a)
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(Config{Type: "oracle"}, nil)
	require.Error(t, err)
	var unknownErr *UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "oracle", unknownErr.Type)
}

func TestNewMissingType(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adapter type not specified")
}
