package commands

import (
	"fmt"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	"github.com/clinicfinder/backend/internal/infrastructure/migration"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
	Long: `Subcommands:
  up       - Apply pending migrations
  down     - Roll back all migrations
  version  - Show the applied version`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(m)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migration.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			output.Success("All migrations rolled back")
			return nil
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the applied migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(printVersion)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func withMigrator(fn func(m *migration.Migrator) error) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	sqlDB, err := e.db.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	m, err := migration.New(sqlDB, e.log.Named("migrate"))
	if err != nil {
		return err
	}
	// closing the migrator would close the shared pool; env.Close owns it
	return fn(m)
}

func printVersion(m *migration.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	switch {
	case version == 0:
		output.Info("No migrations applied")
	case dirty:
		output.Warning("Schema at version %d is dirty; fix it and run cmd/migrate force", version)
	default:
		output.Success("Schema at version %d", version)
	}
	return nil
}
