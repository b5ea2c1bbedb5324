package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrInvalidDetailLevel = errors.New("invalid detail level")
	ErrInvalidQuantData   = errors.New("quantitative data is not valid JSON")
)

type ReportType string

const (
	ReportTypeMeeting   ReportType = "meeting"
	ReportTypeInterview ReportType = "interview"
)

func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportTypeMeeting, ReportTypeInterview:
		return ReportType(s), nil
	}
	return "", fmt.Errorf("%w: %q (choose from %q, %q)", ErrInvalidReportType, s, ReportTypeMeeting, ReportTypeInterview)
}

type DetailLevel string

const (
	DetailLevelSummary    DetailLevel = "Summary"
	DetailLevelExhaustive DetailLevel = "Exhaustive"
)

func ParseDetailLevel(s string) (DetailLevel, error) {
	switch DetailLevel(s) {
	case DetailLevelSummary, DetailLevelExhaustive:
		return DetailLevel(s), nil
	}
	return "", fmt.Errorf("%w: %q (choose from %q, %q)", ErrInvalidDetailLevel, s, DetailLevelSummary, DetailLevelExhaustive)
}

// RunConfig holds the parameters of a single analysis run. It is built once
// by the CLI and never modified afterwards.
type RunConfig struct {
	Company            string
	Language           string
	DetailLevel        DetailLevel
	ReportType         ReportType
	Anonymize          bool
	ConfidenceLabel    bool
	PreBriefingContext string
	// QuantData is the raw JSON document given with --quant-data, or nil.
	QuantData json.RawMessage
	AudioPath string
	OutputDir string
}

// LoadQuantData reads a JSON document from path. An empty path means no data.
// Any syntactically valid JSON value is accepted; no schema is enforced.
func LoadQuantData(path string) (json.RawMessage, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quantitative data %s: %w", path, err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuantData, path)
	}
	return json.RawMessage(b), nil
}
