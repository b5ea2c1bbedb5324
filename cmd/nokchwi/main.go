package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/foxseedlab/nokchwi/external/config"
	discordimpl "github.com/foxseedlab/nokchwi/external/discord"
	reporterimpl "github.com/foxseedlab/nokchwi/external/reporter"
	repositoryimpl "github.com/foxseedlab/nokchwi/external/repository"
	transcriberimpl "github.com/foxseedlab/nokchwi/external/transcriber"
	webhookimpl "github.com/foxseedlab/nokchwi/external/webhook"
	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/pipeline"
	"github.com/samber/do/v2"
)

func main() {
	if err := configloader.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(runAnalysis)
	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func runAnalysis(ctx context.Context, run config.RunConfig, stdout io.Writer) error {
	slog.Info("startup: loading configuration")
	cfg, err := configloader.Load()
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "provider", cfg.TranscribeProvider)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)
	defer injector.Shutdown()

	runner, err := do.Invoke[*pipeline.Runner](injector)
	if err != nil {
		return fmt.Errorf("resolve pipeline runner: %w", err)
	}

	res, err := runner.Run(ctx, run)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "완료!")
	fmt.Fprintf(stdout, "- 녹취록: %s\n", res.Artifacts.TranscriptPath)
	fmt.Fprintf(stdout, "- 분석 보고서: %s\n", res.Artifacts.ReportPath)
	return nil
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	transcriberimpl.RegisterDI(injector)
	reporterimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	discordimpl.RegisterDI(injector)
	pipeline.RegisterDI(injector)

	return injector
}
