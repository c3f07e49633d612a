// Package config loads the warehouse profile for the Snowflake adapter
// CLI. It is decoupled from command concerns so other tools can reuse
// the loading logic.
package config

import (
	"fmt"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// Default configuration values.
const (
	DefaultType   = "snowflake"
	DefaultSchema = "PUBLIC"
)

// Profile holds the connection settings for one warehouse target.
type Profile struct {
	Type string `koanf:"type"`

	// Account is the account identifier (e.g. "myorg-myaccount").
	Account  string `koanf:"account"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	Database  string `koanf:"database"`
	Schema    string `koanf:"schema"`
	Warehouse string `koanf:"warehouse"`
	Role      string `koanf:"role"`

	// Quoting is the project-level identifier quoting configuration.
	Quoting relation.Quoting `koanf:"quoting"`

	// Options contains additional driver-specific connection options.
	Options map[string]string `koanf:"options"`

	Verbose bool `koanf:"verbose"`
}

// ApplyDefaults fills in default values for unset fields.
func (p *Profile) ApplyDefaults() {
	if p.Type == "" {
		p.Type = DefaultType
	}
	if p.Schema == "" {
		p.Schema = DefaultSchema
	}
}

// Validate checks that the profile is usable. It uses the adapter
// registry to determine which adapter types are available.
func (p *Profile) Validate() error {
	if !adapter.IsRegistered(p.Type) {
		return &adapter.UnknownAdapterError{
			Type:      p.Type,
			Available: adapter.List(),
		}
	}
	if p.Account == "" {
		return fmt.Errorf("profile: account is required")
	}
	if p.User == "" {
		return fmt.Errorf("profile: user is required")
	}
	if p.Database == "" {
		return fmt.Errorf("profile: database is required")
	}
	if p.Warehouse == "" {
		return fmt.Errorf("profile: warehouse is required")
	}
	return nil
}

// AdapterConfig converts the profile into the adapter connection config.
func (p *Profile) AdapterConfig() adapter.Config {
	return adapter.Config{
		Type:      p.Type,
		Account:   p.Account,
		Username:  p.User,
		Password:  p.Password,
		Database:  p.Database,
		Schema:    p.Schema,
		Warehouse: p.Warehouse,
		Role:      p.Role,
		Quoting:   p.Quoting,
		Options:   p.Options,
	}
}
