package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapsql-snowflake/pkg/relation"
)

// newRelationsCommand creates the relations command.
func newRelationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relations [schema]",
		Short: "List the relations in a schema",
		Long: `List the relations in a schema, straight from the warehouse.

The schema argument defaults to the profile's schema and may be given
as SCHEMA or DATABASE.SCHEMA. A schema that does not exist yet prints
an empty listing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, schema := cfg.Database, cfg.Schema
			if len(args) == 1 {
				if db, sch, ok := splitSchemaArg(args[0]); ok {
					database, schema = db, sch
				} else {
					schema = args[0]
				}
			}

			a, err := connectAdapter(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			rels, err := a.ListRelationsWithoutCaching(cmd.Context(), relation.Relation{
				Database: database,
				Schema:   schema,
			})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"DATABASE", "SCHEMA", "NAME", "KIND"})
			for _, rel := range rels {
				t.AppendRow(table.Row{rel.Database, rel.Schema, rel.Identifier, string(rel.Type)})
			}
			t.Render()
			return nil
		},
	}
}

// splitSchemaArg parses a DATABASE.SCHEMA argument.
func splitSchemaArg(arg string) (database, schema string, ok bool) {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '.' {
			return arg[:i], arg[i+1:], true
		}
	}
	return "", "", false
}
