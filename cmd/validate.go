package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seedforge-io/seedforge/internal/config"
	"github.com/seedforge-io/seedforge/internal/dialect"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every table maps cleanly onto every dialect",
	Long: `Resolve each column of each table against all five dialects without
opening a connection. Catches unsupported types and precision overflows
before any database is touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("schema") {
			viper.Set("schema_file", validateSchema)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		tables, err := selectTables(cfg)
		if err != nil {
			return err
		}

		failed := 0
		for _, d := range dialect.All() {
			if err := dialect.Validate(d, tables); err != nil {
				color.Red("  ✗ %-10s %v", d.Name(), err)
				failed++
				continue
			}
			color.Green("  ✓ %-10s %d tables", d.Name(), len(tables))
		}

		if failed > 0 {
			return fmt.Errorf("%d dialect(s) failed validation", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "YAML file with additional table definitions")
}
