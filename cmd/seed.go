package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/dialect"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/engine"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

var (
	seedCount int
	seedOut   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a SQL script of fake seed data for the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := dialect.ForDriver(DriverName)
		log.Printf("Using dialect: %s\n", DriverName)

		log.Println("Analyzing schema...")
		catalog, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		count := viper.GetInt("settings.seed_count")
		if seedCount > 0 { // flag override
			count = seedCount
		}

		script := engine.SeedScript(catalog.Tables(), d, count)
		fs := engine.OSFS{}
		if err := fs.WriteFile(seedOut, []byte(script)); err != nil {
			return fmt.Errorf("failed to write seed script: %w", err)
		}

		fmt.Printf("🌱 Wrote %s (%d rows per table, %d tables)\n", seedOut, count, len(catalog.Tables()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedCount, "count", 0, "Rows to generate per table (overrides config)")
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", "seed.sql", "Seed script output path")

	viper.SetDefault("settings.seed_count", 10)
}
