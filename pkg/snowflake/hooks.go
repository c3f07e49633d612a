package snowflake

// hooks.go - per-model warehouse switching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// PreModelHook switches the session to the model's configured warehouse
// when it differs from the session default. It returns the previously
// active warehouse so PostModelHook can restore it; an empty return
// means no switch happened and there is nothing to restore.
func (a *Adapter) PreModelHook(ctx context.Context, modelConfig map[string]any) (string, error) {
	cfg, err := DecodeModelConfig(modelConfig)
	if err != nil {
		return "", err
	}

	warehouse := cfg.SnowflakeWarehouse
	if warehouse == "" || warehouse == a.Cfg.Warehouse {
		return "", nil
	}

	previous, err := a.currentWarehouse(ctx)
	if err != nil {
		return "", err
	}
	if err := a.useWarehouse(ctx, warehouse); err != nil {
		return "", err
	}

	a.Logger.Debug("switched warehouse",
		slog.String("warehouse", warehouse),
		slog.String("previous", previous))
	return previous, nil
}

// PostModelHook restores the warehouse saved by PreModelHook. It must
// run whether or not the model succeeded; callers defer it. A model
// that never switched passes an empty saved value and this is a no-op.
func (a *Adapter) PostModelHook(ctx context.Context, _ map[string]any, saved string) error {
	if saved == "" {
		return nil
	}
	return a.useWarehouse(ctx, saved)
}

// currentWarehouse queries the warehouse active on the session. Getting
// no result back means the session has no warehouse configured at all,
// which is a configuration error rather than something to retry.
func (a *Adapter) currentWarehouse(ctx context.Context) (string, error) {
	if a.DB == nil {
		return "", fmt.Errorf("warehouse connection not established")
	}

	var warehouse sql.NullString
	err := a.DB.QueryRowContext(ctx, "SELECT CURRENT_WAREHOUSE()").Scan(&warehouse)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &ConfigError{Setting: "warehouse", Reason: "could not get current warehouse: no results"}
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current warehouse: %w", err)
	}
	if !warehouse.Valid || warehouse.String == "" {
		return "", &ConfigError{Setting: "warehouse", Reason: "could not get current warehouse: no results"}
	}
	return warehouse.String, nil
}

// useWarehouse switches the session's active warehouse. Warehouse names
// are never quoted, matching how the engine itself issues USE.
func (a *Adapter) useWarehouse(ctx context.Context, warehouse string) error {
	return a.Exec(ctx, "USE WAREHOUSE "+warehouse)
}
