package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/dialect"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables and how their columns would map",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := dialect.ForDriver(DriverName)
		log.Printf("Using dialect: %s\n", DriverName)

		log.Println("Analyzing schema...")
		catalog, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		for _, t := range catalog.Tables() {
			fmt.Printf("\n%s -> class %s (%d columns)\n", t.Name, gen.ClassName(t.Name), len(t.Columns))
			for _, c := range t.Columns {
				role := c.Key.String()
				if c.AutoIncrement() {
					if role != "" {
						role += ", "
					}
					role += "auto"
				}
				fmt.Printf("  %-24s %-20s %-8s %s\n", c.Name, c.Type, gen.Classify(c.Type), role)
			}
		}
		fmt.Printf("\n%d tables\n", len(catalog.Tables()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
