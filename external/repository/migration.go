package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`DO $$ BEGIN CREATE TYPE report_type AS ENUM ('meeting', 'interview'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id UUID PRIMARY KEY,
		audio_path TEXT NOT NULL,
		company TEXT NOT NULL,
		language TEXT NOT NULL,
		report_type report_type NOT NULL,
		detail_level TEXT NOT NULL,
		transcript_path TEXT NOT NULL,
		report_path TEXT NOT NULL,
		transcript TEXT NOT NULL,
		report TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_runs_company_created ON analysis_runs (company, created_at DESC)`,
}

// RunMigration applies the archive schema. Every statement is idempotent.
func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for n, raw := range migrationStatements {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", n+1, err)
		}
	}
	return nil
}
