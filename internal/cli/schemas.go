package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newSchemasCommand creates the schemas command.
func newSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas [database]",
		Short: "List the schemas in a database",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # List schemas in the profile's default database
  leapsql-snowflake schemas

  # List schemas in another database
  leapsql-snowflake schemas ANALYTICS`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database := cfg.Database
			if len(args) == 1 {
				database = args[0]
			}

			a, err := connectAdapter(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			schemas, err := a.ListSchemas(cmd.Context(), database)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"SCHEMA"})
			for _, schema := range schemas {
				t.AppendRow(table.Row{schema})
			}
			t.Render()
			return nil
		},
	}
}
