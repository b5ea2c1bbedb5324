package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/pipeline"
	"github.com/foxseedlab/nokchwi/internal/transcriber"
)

type capturedRun struct {
	calls int
	run   config.RunConfig
}

func (c *capturedRun) fn(_ context.Context, run config.RunConfig, stdout io.Writer) error {
	c.calls++
	c.run = run
	_, err := io.WriteString(stdout, "ok\n")
	return err
}

func execute(t *testing.T, args ...string) (*capturedRun, string, error) {
	t.Helper()
	captured := &capturedRun{}
	cmd := newRootCommand(captured.fn)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return captured, out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func audioFixture(t *testing.T) string {
	t.Helper()
	return writeFile(t, "meeting.m4a", "fake-audio")
}

func TestRootCommand_Defaults(t *testing.T) {
	audio := audioFixture(t)
	captured, out, err := execute(t, audio)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
	got := captured.run
	if got.AudioPath != audio {
		t.Fatalf("unexpected audio path: %s", got.AudioPath)
	}
	if got.Company != defaultCompany || got.Language != "ko" || got.OutputDir != "outputs" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.ReportType != config.ReportTypeMeeting || got.DetailLevel != config.DetailLevelExhaustive {
		t.Fatalf("unexpected report settings: %s/%s", got.ReportType, got.DetailLevel)
	}
	if got.PreBriefingContext != "없음" {
		t.Fatalf("unexpected pre-briefing context: %s", got.PreBriefingContext)
	}
	if !got.Anonymize || !got.ConfidenceLabel {
		t.Fatal("expected anonymize and confidence labeling on by default")
	}
	if got.QuantData != nil {
		t.Fatalf("expected no quantitative data, got %s", got.QuantData)
	}
}

func TestRootCommand_NegativeFlags(t *testing.T) {
	captured, _, err := execute(t, audioFixture(t), "--no-anonymize", "--no-confidence-label")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.run.Anonymize || captured.run.ConfidenceLabel {
		t.Fatalf("expected both flags off, got %+v", captured.run)
	}
}

func TestRootCommand_QuantData(t *testing.T) {
	path := writeFile(t, "kpi.json", `{"매출": 120}`)
	captured, _, err := execute(t, audioFixture(t), "--quant-data", path, "--report-type", "interview", "--detail-level", "Summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(captured.run.QuantData) != `{"매출": 120}` {
		t.Fatalf("unexpected quant data: %s", captured.run.QuantData)
	}
	if captured.run.ReportType != config.ReportTypeInterview || captured.run.DetailLevel != config.DetailLevelSummary {
		t.Fatalf("unexpected report settings: %+v", captured.run)
	}
}

func TestRootCommand_RejectsInvalidInput(t *testing.T) {
	brokenJSON := writeFile(t, "broken.json", `{"a":`)
	audio := audioFixture(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown report type", args: []string{audio, "--report-type", "workshop"}, wantErr: config.ErrInvalidReportType},
		{name: "unknown detail level", args: []string{audio, "--detail-level", "exhaustive"}, wantErr: config.ErrInvalidDetailLevel},
		{name: "broken quant data", args: []string{audio, "--quant-data", brokenJSON}, wantErr: config.ErrInvalidQuantData},
		{name: "missing quant data file", args: []string{audio, "--quant-data", filepath.Join(t.TempDir(), "none.json")}, wantErr: os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if captured.calls != 0 {
				t.Fatal("expected run not to be called")
			}
		})
	}
}

func TestRootCommand_RequiresExactlyOneAudio(t *testing.T) {
	for _, args := range [][]string{{}, {"a.wav", "b.wav"}} {
		captured, _, err := execute(t, args...)
		if err == nil {
			t.Fatalf("expected error for args %v", args)
		}
		if captured.calls != 0 {
			t.Fatalf("expected run not to be called for args %v", args)
		}
	}
}

func TestRootCommand_ProfileFillsUnsetFlags(t *testing.T) {
	profile := writeFile(t, "acme.yaml", `
company: ACME
output_dir: reports
report_type: interview
anonymize: false
`)
	captured, _, err := execute(t, audioFixture(t), "--profile", profile, "--output-dir", "cli-out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := captured.run
	if got.Company != "ACME" {
		t.Fatalf("expected company from profile, got %s", got.Company)
	}
	if got.OutputDir != "cli-out" {
		t.Fatalf("expected explicit flag to win over profile, got %s", got.OutputDir)
	}
	if got.ReportType != config.ReportTypeInterview {
		t.Fatalf("expected report type from profile, got %s", got.ReportType)
	}
	if got.Anonymize {
		t.Fatal("expected anonymize disabled by profile")
	}
	if !got.ConfidenceLabel {
		t.Fatal("expected confidence labeling to keep its default")
	}
	if got.Language != "ko" {
		t.Fatalf("expected default language, got %s", got.Language)
	}
}

func TestRootCommand_ExplicitFlagBeatsProfileBool(t *testing.T) {
	profile := writeFile(t, "p.yaml", "anonymize: true\n")
	captured, _, err := execute(t, audioFixture(t), "--profile", profile, "--no-anonymize")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.run.Anonymize {
		t.Fatal("expected --no-anonymize to win over profile")
	}
}

func TestRootCommand_MissingProfile(t *testing.T) {
	captured, _, err := execute(t, audioFixture(t), "--profile", filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if captured.calls != 0 {
		t.Fatal("expected run not to be called")
	}
}

func TestRootCommand_AudioCheckedFirst(t *testing.T) {
	brokenJSON := writeFile(t, "broken.json", `{"a":`)
	missing := filepath.Join(t.TempDir(), "missing.wav")

	captured, _, err := execute(t, missing, "--quant-data", brokenJSON, "--profile", filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, pipeline.ErrAudioNotFound) {
		t.Fatalf("expected ErrAudioNotFound, got %v", err)
	}
	if captured.calls != 0 {
		t.Fatal("expected run not to be called")
	}
}

func TestRootCommand_DirectoryAsAudio(t *testing.T) {
	captured, _, err := execute(t, t.TempDir())
	if !errors.Is(err, transcriber.ErrFileNotAccessible) {
		t.Fatalf("expected ErrFileNotAccessible, got %v", err)
	}
	if captured.calls != 0 {
		t.Fatal("expected run not to be called")
	}
}
