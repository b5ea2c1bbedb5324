package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
)

const archiveInitTimeout = 15 * time.Second

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (repository.RunRepository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.ArchiveEnabled() {
			slog.Debug("run archive disabled: DATABASE_URL is not set")
			return repository.NoopRepository{}, nil
		}
		pool, err := openArchivePool(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepository(pool), nil
	})
}

// openArchivePool connects, pings and migrates within one bounded window.
// The pool is closed again on any failure.
func openArchivePool(databaseURL string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveInitTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open run archive: %w", err)
	}
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{name: "ping run archive", run: pool.Ping},
		{name: "migrate run archive", run: func(ctx context.Context) error { return RunMigration(ctx, pool) }},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
	}
	slog.Info("run archive ready")
	return pool, nil
}
