package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/smartexpense/expense-tracker/internal"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "sql migrations directory (defaults to db/migrations/<driver>)")
}

// gooseDriver maps the configured backend onto the sql driver goose opens.
// Migration files differ per backend so each driver has its own directory.
func gooseDriver(cfg internal.DatabaseConfig) (driver, dir string, err error) {
	switch cfg.Driver {
	case internal.DriverPostgres:
		driver = "pgx"
	case internal.DriverSQLite, "":
		driver = "sqlite3"
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	dir = migrateDir
	if dir == "" {
		if driver == "pgx" {
			dir = "db/migrations/postgres"
		} else {
			dir = "db/migrations/sqlite"
		}
	}
	return driver, dir, nil
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	driver, dir, err := gooseDriver(cfg.Database)
	if err != nil {
		return err
	}

	db, err := goose.OpenDBWithDriver(driver, cfg.Database.Source)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	goose.SetTableName("schema_migrations")

	command := "up"
	if migrateRollback {
		command = "down"
	}

	if err := goose.RunContext(ctx, command, db, dir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	return nil
}
