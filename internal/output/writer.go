package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// YYYYMMDD_HHMMSS in local time.
const artifactTimeLayout = "20060102_150405"

type Artifacts struct {
	TranscriptPath string
	ReportPath     string
	Timestamp      string
}

type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// NewWriterWithClock is used by tests to pin the artifact timestamp.
func NewWriterWithClock(now func() time.Time) *Writer {
	return &Writer{now: now}
}

// Save writes transcript_<ts>.txt and analysis_report_<ts>.md into dir,
// creating it when missing. Both files share a single timestamp. Files from a
// run in the same second are overwritten.
func (w *Writer) Save(dir, transcript, report string) (Artifacts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("create output dir: %w", err)
	}
	ts := w.now().Format(artifactTimeLayout)

	a := Artifacts{
		TranscriptPath: filepath.Join(dir, fmt.Sprintf("transcript_%s.txt", ts)),
		ReportPath:     filepath.Join(dir, fmt.Sprintf("analysis_report_%s.md", ts)),
		Timestamp:      ts,
	}
	if err := os.WriteFile(a.TranscriptPath, []byte(transcript), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("write transcript: %w", err)
	}
	if err := os.WriteFile(a.ReportPath, []byte(report), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("write report: %w", err)
	}
	return a, nil
}
