package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/discord"
	"github.com/foxseedlab/nokchwi/internal/output"
	"github.com/foxseedlab/nokchwi/internal/prompt"
	"github.com/foxseedlab/nokchwi/internal/reporter"
	"github.com/foxseedlab/nokchwi/internal/repository"
	"github.com/foxseedlab/nokchwi/internal/transcriber"
	"github.com/foxseedlab/nokchwi/internal/webhook"
	"github.com/google/uuid"
)

var ErrAudioNotFound = errors.New("audio file not found")

type Result struct {
	RunID      string
	Transcript string
	Report     string
	Artifacts  output.Artifacts
}

type Runner struct {
	transcriber transcriber.Transcriber
	generator   reporter.Generator
	writer      *output.Writer
	repo        repository.RunRepository
	webhook     webhook.Sender
	discord     discord.Notifier
	now         func() time.Time
	newRunID    func() string
}

func NewRunner(stt transcriber.Transcriber, gen reporter.Generator, writer *output.Writer, repo repository.RunRepository, wh webhook.Sender, dc discord.Notifier) *Runner {
	return &Runner{
		transcriber: stt,
		generator:   gen,
		writer:      writer,
		repo:        repo,
		webhook:     wh,
		discord:     dc,
		now:         time.Now,
		newRunID:    uuid.NewString,
	}
}

// CheckAudio reports ErrAudioNotFound for a missing path and
// transcriber.ErrFileNotAccessible for anything that is not a readable file.
func CheckAudio(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrAudioNotFound, path)
		}
		return fmt.Errorf("%w: %w", transcriber.ErrFileNotAccessible, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s is a directory", transcriber.ErrFileNotAccessible, path)
	}
	return nil
}

// Run executes transcribe → prompt → report → save for one recording. Any
// failure up to and including saving aborts the run. Delivery to the optional
// sinks happens after the artifacts are on disk and only logs its failures.
func (r *Runner) Run(ctx context.Context, run config.RunConfig) (*Result, error) {
	if err := CheckAudio(run.AudioPath); err != nil {
		return nil, err
	}

	runID := r.newRunID()
	log := slog.With("run_id", runID)
	log.Info("run started", "audio", run.AudioPath, "report_type", run.ReportType, "detail_level", run.DetailLevel, "language", run.Language)

	log.Info(messageStepTranscribe)
	result, err := r.transcriber.Transcribe(ctx, run.AudioPath, run.Language)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	transcript := transcriber.Render(result)
	log.Info("transcription done", "result", resultKind(result), "transcript_chars", len([]rune(transcript)))

	log.Info(messageStepReport)
	analysisPrompt := prompt.Build(prompt.ParamsFromRun(run, transcript))
	log.Debug("analysis prompt built", "prompt_chars", len([]rune(analysisPrompt)))
	report, err := r.generator.Generate(ctx, analysisPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	log.Info(messageStepSave)
	artifacts, err := r.writer.Save(run.OutputDir, transcript, report)
	if err != nil {
		return nil, fmt.Errorf("save outputs: %w", err)
	}
	log.Info("artifacts saved", "transcript", artifacts.TranscriptPath, "report", artifacts.ReportPath)

	res := &Result{
		RunID:      runID,
		Transcript: transcript,
		Report:     report,
		Artifacts:  artifacts,
	}
	r.deliver(ctx, log, run, res)
	return res, nil
}

func (r *Runner) deliver(ctx context.Context, log *slog.Logger, run config.RunConfig, res *Result) {
	generatedAt := r.now()

	if err := r.repo.SaveRun(ctx, repository.SaveRunInput{
		RunID:          res.RunID,
		AudioPath:      run.AudioPath,
		Company:        run.Company,
		Language:       run.Language,
		ReportType:     string(run.ReportType),
		DetailLevel:    string(run.DetailLevel),
		TranscriptPath: res.Artifacts.TranscriptPath,
		ReportPath:     res.Artifacts.ReportPath,
		Transcript:     res.Transcript,
		Report:         res.Report,
		CreatedAt:      generatedAt,
	}); err != nil {
		log.Error("failed to archive run", "error", err)
	}

	if err := r.webhook.SendReport(ctx, webhook.ReportWebhookPayload{
		SchemaVersion:  webhook.ReportWebhookSchemaVersion,
		RunID:          res.RunID,
		Company:        run.Company,
		Language:       run.Language,
		ReportType:     string(run.ReportType),
		DetailLevel:    string(run.DetailLevel),
		AudioFile:      filepath.Base(run.AudioPath),
		TranscriptFile: filepath.Base(res.Artifacts.TranscriptPath),
		ReportFile:     filepath.Base(res.Artifacts.ReportPath),
		GeneratedAt:    generatedAt.Format(time.RFC3339),
		Transcript:     res.Transcript,
		Report:         res.Report,
	}); err != nil {
		log.Error("failed to send report webhook", "error", err)
	}

	if r.discord.ChannelID() == "" {
		return
	}
	if err := r.discord.SendChannelMessageWithFile(discord.FileMessage{
		ChannelID:   r.discord.ChannelID(),
		Content:     fmt.Sprintf(messageDiscordReportTitleFormat, reportTypeLabel(string(run.ReportType)), run.Company),
		Filename:    filepath.Base(res.Artifacts.ReportPath),
		ContentType: "text/markdown",
		FileBody:    []byte(res.Report),
	}); err != nil {
		log.Error("failed to post report to discord", "error", err, "channel_id", r.discord.ChannelID())
	}
}

func resultKind(r transcriber.Result) string {
	switch v := r.(type) {
	case transcriber.SegmentedResult:
		return fmt.Sprintf("segmented(%d)", len(v.Segments))
	case transcriber.FlatTextResult:
		return "flat_text"
	default:
		return "unknown"
	}
}
