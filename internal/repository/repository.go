package repository

import (
	"context"
	"time"
)

type SaveRunInput struct {
	RunID          string
	AudioPath      string
	Company        string
	Language       string
	ReportType     string
	DetailLevel    string
	TranscriptPath string
	ReportPath     string
	Transcript     string
	Report         string
	CreatedAt      time.Time
}

type RunRepository interface {
	SaveRun(ctx context.Context, input SaveRunInput) error
}

// NoopRepository is used when no database is configured.
type NoopRepository struct{}

func (NoopRepository) SaveRun(context.Context, SaveRunInput) error { return nil }
