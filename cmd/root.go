package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	DB         *sql.DB
	SchemaName string
	cfgFile    string
	DriverName string // "mysql", "postgres", "sqlserver" or "oracle"
)

var RootCmd = &cobra.Command{
	Use:   "dao-gen",
	Short: "Generate PHP data access classes from a live database schema",
	Long: `
  ____    _    ___       ____ _____ _   _
 |  _ \  / \  / _ \     / ___| ____| \ | |
 | | | |/ _ \| | | |   | |  _|  _| |  \| |
 | |_| / ___ \ |_| |   | |_| | |___| |\  |
 |____/_/   \_\___/     \____|_____|_| \_|

DAO GEN - Schema to PHP DAO Class Generator
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		connStr, driver, schemaOverride, err := resolveConnection()
		if err != nil {
			return err
		}
		DriverName = driver

		DB, err = sql.Open(DriverName, connStr)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		if err := DB.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		// Resolve the schema name the introspection queries bind against
		switch DriverName {
		case "mysql":
			if err := DB.QueryRow("SELECT DATABASE()").Scan(&SchemaName); err != nil {
				return fmt.Errorf("failed to get database name: %w", err)
			}
			if SchemaName == "" {
				return fmt.Errorf("no database selected in DSN")
			}
		case "sqlserver", "mssql":
			SchemaName = "dbo"
		default:
			SchemaName = "public"
		}
		if schemaOverride != "" {
			SchemaName = schemaOverride
		}

		return nil
	},
}

// resolveConnection picks the connection settings. An explicit
// database.dsn (flag or config) wins; otherwise the active entry of
// the databases list supplies DSN, driver and schema. The driver is
// guessed from the DSN shape when neither source names one.
func resolveConnection() (connStr, driver, schema string, err error) {
	connStr = viper.GetString("database.dsn")
	driver = viper.GetString("database.driver")
	schema = viper.GetString("database.schema")

	if connStr == "" {
		cfg, cfgErr := GetActiveDBConfig()
		if cfgErr != nil {
			return "", "", "", fmt.Errorf("database.dsn is required (via flag or config): %w", cfgErr)
		}
		connStr = cfg.DSN
		if cfg.Driver != "" {
			driver = cfg.Driver
		}
		if cfg.Schema != "" {
			schema = cfg.Schema
		}
	}
	if connStr == "" {
		return "", "", "", fmt.Errorf("active database config has no dsn")
	}

	if driver == "" {
		if strings.Contains(connStr, "postgres") || strings.Contains(connStr, "sslmode") {
			driver = "postgres"
		} else {
			driver = "mysql"
		}
	}
	return connStr, driver, schema, nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dao-gen.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable directory (priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current directory (priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("dao-gen")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
