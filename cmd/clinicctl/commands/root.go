// Package commands implements the clinicctl operator commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	"github.com/clinicfinder/backend/internal/app"
	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence"
	"github.com/clinicfinder/backend/internal/infrastructure/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "clinicctl",
	Short: "Operate the clinic finder catalog and enquiries",
	Long: `clinicctl runs maintenance tasks against the clinic finder database
using the same configuration as the server (config.toml and CLINIC_* variables).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// env is the wiring shared by commands that touch the database
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	conn     *persistence.Connector
	db       *persistence.Database
	services *app.Services
}

func (e *env) Close() {
	if err := e.conn.Close(); err != nil {
		e.log.Warn("error closing database", zap.Error(err))
	}
	_ = e.log.Sync()
}

// openEnv loads configuration and connects to the database. withStorage also
// builds the export storage so env.services.Export is set.
func openEnv(withStorage bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: logLevel, Format: "console", Output: "stderr"})

	conn := persistence.NewConnector(&cfg.Database,
		logger.NewGormLogger(log.Named("gorm"), logger.GormLevel(logLevel), cfg.Telemetry.DBSlowQueryThresh))
	db, err := conn.Get()
	if err != nil {
		return nil, err
	}

	opts := app.Options{}
	if withStorage {
		objects, err := storage.New(&cfg.Storage, log.Named("storage"))
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		opts.Storage = objects
		opts.ExportOpts = []export.Option{
			export.WithKeyPrefix(cfg.Export.KeyPrefix),
			export.WithLinkTTL(cfg.Storage.PresignExpiration),
		}
	}

	return &env{
		cfg:      cfg,
		log:      log,
		conn:     conn,
		db:       db,
		services: app.New(db.DB, opts),
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
