package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/dialect"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/engine"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

var (
	outDir   string
	modeFlag string
	dryRun   bool
	tables   []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one PHP DAO class per table",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 0. Resolve mode and output directory (Flag > Config > Default)
		mode, err := engine.ParseMode(viper.GetString("settings.mode"))
		if err != nil {
			return err
		}
		out := viper.GetString("settings.output_dir")
		if out == "" {
			return fmt.Errorf("output directory is required (--out flag or settings.output_dir)")
		}

		d := dialect.ForDriver(DriverName)
		log.Printf("Using dialect: %s\n", DriverName)

		// 1. Analyze
		log.Println("Analyzing schema...")
		catalog, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		// 2. Resolve table list: Flag > Config > all tables
		targetNames := tables
		if len(targetNames) == 0 {
			targetNames = viper.GetStringSlice("settings.tables")
		}
		if len(targetNames) == 0 {
			for _, t := range catalog.Tables() {
				targetNames = append(targetNames, t.Name)
			}
		}
		if len(targetNames) == 0 {
			return fmt.Errorf("schema %s contains no tables", SchemaName)
		}

		if dryRun {
			log.Println("[SIMULATION] Dry-run mode active: no files will be written.")
			fmt.Printf("🔍 Generation plan (mode: %s, out: %s):\n", mode, out)
			for i, name := range targetNames {
				t, err := catalog.Lookup(name)
				if err != nil {
					fmt.Printf("[%02d] %-24s -> NOT FOUND\n", i+1, name)
					continue
				}
				fmt.Printf("[%02d] %-24s -> %s.php (%d columns)\n", i+1, name, gen.ClassName(t.Name), len(t.Columns))
			}
			return nil
		}

		log.Printf("Generating %d classes into %s (mode: %s)...", len(targetNames), out, mode)
		start := time.Now()

		// 3. Progress bar over the batch
		uiprogress.Start()
		bar := uiprogress.AddBar(len(targetNames)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		summary, err := engine.Run(targetNames, mode, catalog.Lookup, out, engine.OSFS{}, time.Now(), func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		// 4. Final report
		fmt.Println("\n📊 Generation Report:")
		for i, r := range summary.Results {
			icon := "✓"
			if r.Outcome != schema.OutcomeGenerated {
				icon = "!"
			}
			line := fmt.Sprintf("[%s] [%02d/%02d] %-24s %s", icon, i+1, len(summary.Results), r.Table, r.Outcome)
			if r.BackupPath != "" {
				line += " (backed up)"
			}
			fmt.Println(line)
			if r.Err != "" {
				fmt.Printf("    └ Error: %s\n", r.Err)
			}
		}
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Generated: %d | Skipped: %d | Failed: %d | Backups: %d\n",
			summary.Generated, summary.Skipped, summary.Failed, summary.BackedUp)
		log.Printf("Done! Time elapsed: %s", time.Since(start))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for generated classes")
	generateCmd.Flags().StringVar(&modeFlag, "mode", "", "What to do with existing classes: save (backup first) or overwrite")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generation plan without writing files")
	generateCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific tables to generate (comma-separated)")

	viper.BindPFlag("settings.output_dir", generateCmd.Flags().Lookup("out"))
	viper.BindPFlag("settings.mode", generateCmd.Flags().Lookup("mode"))
	viper.SetDefault("settings.mode", "save")
}
