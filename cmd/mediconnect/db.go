package main

import (
	"context"
	"fmt"

	pg "mediconnect/internal/adapters/storage/postgres"
	"mediconnect/internal/domain/records"
	"mediconnect/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea el esquema en Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("schema ready", nil)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga hospitales y visitas de ejemplo en Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			_, err = seedDataset(cmd.Context(), pg.NewRecordsRepo(db), log)
			return err
		},
	}
}

type recordSeeder interface {
	UpsertHospital(ctx context.Context, h records.HospitalMeta, position int) error
	Insert(ctx context.Context, rec records.HospitalRecord) (bool, error)
}

// seedDataset es idempotente: las visitas ya cargadas se saltan.
func seedDataset(ctx context.Context, repo recordSeeder, log logger.Logger) (int, error) {
	for i, h := range records.Hospitals() {
		if err := repo.UpsertHospital(ctx, h, i); err != nil {
			return 0, fmt.Errorf("seed hospital %s: %w", h.ID, err)
		}
	}

	inserted := 0
	for _, rec := range records.Dataset() {
		ok, err := repo.Insert(ctx, rec)
		if err != nil {
			return inserted, fmt.Errorf("seed record %s: %w", rec.ID, err)
		}
		if ok {
			inserted++
		} else {
			log.Debug("record already present", map[string]any{"id": rec.ID})
		}
	}

	log.Info("seed done", map[string]any{
		"inserted": inserted,
		"total":    len(records.Dataset()),
	})
	return inserted, nil
}
