package snowflake

// config.go - per-model configuration overrides

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// ModelConfig holds the Snowflake-specific per-model overrides the
// engine passes through from model frontmatter. Clustering and
// materialization hints are carried untouched for the materialization
// templates; the adapter itself only interprets SnowflakeWarehouse and
// QuoteColumns.
type ModelConfig struct {
	Transient           *bool    `mapstructure:"transient"`
	ClusterBy           any      `mapstructure:"cluster_by"` // string or []string
	AutomaticClustering *bool    `mapstructure:"automatic_clustering"`
	Secure              *bool    `mapstructure:"secure"`
	CopyGrants          *bool    `mapstructure:"copy_grants"`
	SnowflakeWarehouse  string   `mapstructure:"snowflake_warehouse"`
	QueryTag            string   `mapstructure:"query_tag"`
	MergeUpdateColumns  []string `mapstructure:"merge_update_columns"`
	QuoteColumns        any      `mapstructure:"quote_columns"` // bool or absent
}

// DecodeModelConfig decodes a raw model config mapping. Keys the
// adapter doesn't know about are ignored; they belong to the engine or
// to other adapters.
func DecodeModelConfig(raw map[string]any) (ModelConfig, error) {
	var cfg ModelConfig
	if raw == nil {
		return cfg, nil
	}
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return ModelConfig{}, &ConfigError{Setting: "model config", Reason: err.Error()}
	}
	return cfg, nil
}

// QuoteSeedColumn renders a seed column name according to the seed's
// quote_columns setting: true quotes it, false or absent (nil) leaves
// it unquoted. Any other value type is a configuration error.
func (a *Adapter) QuoteSeedColumn(column string, quote any) (string, error) {
	switch q := quote.(type) {
	case nil:
		return column, nil
	case bool:
		if q {
			return relation.QuoteIdentifier(column), nil
		}
		return column, nil
	default:
		return "", &ConfigError{
			Setting: "quote_columns",
			Reason:  fmt.Sprintf("expected a boolean, got %T", quote),
		}
	}
}
