package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"fueldelivery/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply Postgres schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if t, _ := db.ParseDBType(cfg.DBType); t != db.Postgres {
			return errors.Errorf("migrations only apply to postgres, DB_TYPE is %q", cfg.DBType)
		}
		return db.RunMigrations(cfg.PostgresURL, cfg.MigrationsDir)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
