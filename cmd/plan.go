package cmd

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/dialect"
	"github.com/seedforge-io/seedforge/internal/schema"
)

var (
	planDialect string
	planSchema  string
	planTables  []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the DDL and insert shape without touching a database",
	Long: `Show exactly what the seed command would execute: the CREATE TABLE
statement, the secondary indexes and the shape of the batched INSERT for
the chosen dialect. Nothing is connected to or executed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("dialect") {
			viper.Set("dialect", planDialect)
		}
		if cmd.Flags().Changed("schema") {
			viper.Set("schema_file", planSchema)
		}
		if cmd.Flags().Changed("tables") {
			viper.Set("tables", planTables)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		d, err := dialect.New(cfg.Dialect)
		if err != nil {
			return err
		}
		tables, err := selectTables(cfg)
		if err != nil {
			return err
		}

		for _, t := range tables {
			color.New(color.FgCyan, color.Bold).Printf("-- %s (%s)\n", t.Name, d.Name())

			create, err := d.CreateTableSQL(t)
			if err != nil {
				return err
			}
			fmt.Println(create + ";")
			for _, stmt := range d.CreateIndexSQL(t) {
				fmt.Println(stmt + ";")
			}

			insert, err := sampleInsert(d, t)
			if err != nil {
				return err
			}
			fmt.Println(insert + ";")
			fmt.Println()
		}
		return nil
	},
}

// sampleInsert renders a one-row INSERT with the dialect's placeholders.
func sampleInsert(d dialect.Dialect, t schema.Table) (string, error) {
	cols := t.InsertColumns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = d.QuoteIdent(col.Name)
	}
	stmt, _, err := squirrel.Insert(d.QuoteIdent(t.Name)).
		Columns(names...).
		PlaceholderFormat(d.Placeholder()).
		Values(make([]any, len(cols))...).
		ToSql()
	return stmt, err
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVarP(&planDialect, "dialect", "d", "", "Target dialect (postgres, mysql, mssql, oracle, sqlite)")
	planCmd.Flags().StringVar(&planSchema, "schema", "", "YAML file with additional table definitions")
	planCmd.Flags().StringSliceVarP(&planTables, "tables", "t", nil, "Plan only the named tables")
}
