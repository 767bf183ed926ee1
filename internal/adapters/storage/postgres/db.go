package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema se aplica sentencia por sentencia; todas son idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS hospitals (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		position INT  NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS hospital_records (
		id            TEXT PRIMARY KEY,
		hospital_id   TEXT  NOT NULL,
		hospital_name TEXT  NOT NULL,
		visit_date    DATE  NOT NULL,
		department    TEXT  NOT NULL DEFAULT '',
		doctor        TEXT  NOT NULL DEFAULT '',
		diagnosis     JSONB NOT NULL DEFAULT '[]',
		medications   JSONB NOT NULL DEFAULT '[]',
		notes         TEXT  NOT NULL DEFAULT '',
		vitals        JSONB,
		attachments   JSONB
	)`,
	`CREATE INDEX IF NOT EXISTS hospital_records_hospital_visit_idx
		ON hospital_records (hospital_id, visit_date DESC)`,
	`CREATE TABLE IF NOT EXISTS caregiver_questions (
		id           UUID PRIMARY KEY,
		caregiver_id TEXT        NOT NULL,
		text         TEXT        NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS caregiver_questions_caregiver_idx
		ON caregiver_questions (caregiver_id, created_at DESC)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
