package repository

import (
	"context"

	"github.com/foxseedlab/nokchwi/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.RunRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) SaveRun(ctx context.Context, input repository.SaveRunInput) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO analysis_runs
		   (id, audio_path, company, language, report_type, detail_level,
		    transcript_path, report_path, transcript, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		input.RunID, input.AudioPath, input.Company, input.Language, input.ReportType, input.DetailLevel,
		input.TranscriptPath, input.ReportPath, input.Transcript, input.Report, input.CreatedAt)
	return err
}

// Shutdown is called by the injector when the process exits.
func (r *PostgresRepository) Shutdown() {
	r.pool.Close()
}
