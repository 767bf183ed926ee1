package main

import (
	"database/sql"
	"fmt"

	pg "mediconnect/internal/adapters/storage/postgres"
	"mediconnect/internal/config"
	"mediconnect/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mediconnect",
		Short:         "Backend del cuidador MediConnect",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newRecordsCmd(),
	)
	return root
}

// bootstrap carga config y logger comunes a todos los subcomandos.
func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFmt),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
