// Command dbtool manages the shipping database schema outside the service:
// it applies migrations and audits the capacity bookkeeping.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Shipping database maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with DB_* settings")

	root.AddCommand(newMigrateCmd(), newConstraintsCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables, indexes and check constraints",
		RunE: func(c *cobra.Command, _ []string) error {
			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := postgres.Migrate(db.WithContext(c.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newConstraintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constraints",
		Short: "Verify that every route's capacity matches its shipments",
		RunE: func(c *cobra.Command, _ []string) error {
			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			violations, err := postgres.CheckCapacityConservation(c.Context(), db)
			if err != nil {
				return fmt.Errorf("check capacity: %w", err)
			}
			for _, v := range violations {
				fmt.Fprintln(c.OutOrStdout(), v.String())
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d route(s) violate capacity conservation", len(violations))
			}
			fmt.Fprintln(c.OutOrStdout(), "capacity is conserved on every route")
			return nil
		},
	}
}

// openDB opens a database/sql pool with the pq driver and hands it to gorm.
func openDB() (*gorm.DB, func(), error) {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	return db, func() { _ = sqlDB.Close() }, nil
}
