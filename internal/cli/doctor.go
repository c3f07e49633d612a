package cli

import (
	"context"
	"database/sql"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/adapter"
)

// newDoctorCommand creates the doctor command.
func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify the profile by connecting and reporting session facts",
		Long: `Connect to the warehouse with the configured profile and report the
server version, account, and active warehouse. A failure here usually
means the profile's account, credentials, or warehouse are wrong.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := connectAdapter(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"CHECK", "VALUE"})
			for _, check := range []struct {
				name  string
				query string
			}{
				{"version", "SELECT CURRENT_VERSION()"},
				{"account", "SELECT CURRENT_ACCOUNT()"},
				{"warehouse", "SELECT CURRENT_WAREHOUSE()"},
				{"role", "SELECT CURRENT_ROLE()"},
			} {
				value, err := queryScalar(cmd.Context(), a, check.query)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{check.name, value})
			}
			t.Render()
			return nil
		},
	}
}

// queryScalar runs a single-value query and renders NULL as "".
func queryScalar(ctx context.Context, a adapter.Adapter, query string) (string, error) {
	rows, err := a.Query(ctx, query)
	if err != nil {
		return "", err
	}
	defer func() { _ = rows.Close() }()

	var value sql.NullString
	if rows.Next() {
		if err := rows.Scan(&value); err != nil {
			return "", err
		}
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return value.String, nil
}
