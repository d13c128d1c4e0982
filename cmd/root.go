package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

func showBanner() {
	cyan := color.New(color.FgCyan, color.Bold)

	banner := []string{
		"╔═══════════════════════════════════════════════════════════╗",
		"║  ███████╗███████╗███████╗██████╗                          ║",
		"║  ██╔════╝██╔════╝██╔════╝██╔══██╗                         ║",
		"║  ███████╗█████╗  █████╗  ██║  ██║                         ║",
		"║  ╚════██║██╔══╝  ██╔══╝  ██║  ██║                         ║",
		"║  ███████║███████╗███████╗██████╔╝                         ║",
		"║  ╚══════╝╚══════╝╚══════╝╚═════╝ FORGE                    ║",
		"║                                                           ║",
		"║     🔥 Deterministic seed data for five databases 🔥      ║",
		"╚═══════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		cyan.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgWhite, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "seedforge",
	Short: "Generate realistic, reproducible test data for SQL databases",
	Long: `
Seedforge creates tables and fills them with deterministic synthetic data
on PostgreSQL, MySQL, SQL Server, Oracle and SQLite.

The same seed always produces the same rows on every dialect, so teams can
share a seed number instead of a database dump. Tables cover the common
type surface: decimals, UUIDs, JSON documents, arrays, enums, intervals
and network addresses, each mapped to the closest native type.

Built-in tables:
- invoices         (currencies, line items, consistent totals)
- employees        (people, enums, salaries, skills)
- sensor_readings  (IoT time series, high-precision decimals)
- product_catalog  (nested JSON, prices, dimensions)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedforge version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seedforge.config")
	}

	viper.SetEnvPrefix("SEEDFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
