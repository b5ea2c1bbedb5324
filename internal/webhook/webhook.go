package webhook

import "context"

const ReportWebhookSchemaVersion = "2026-10-01"

type ReportWebhookPayload struct {
	SchemaVersion  string `json:"schema_version"`
	RunID          string `json:"run_id"`
	Company        string `json:"company"`
	Language       string `json:"language"`
	ReportType     string `json:"report_type"`
	DetailLevel    string `json:"detail_level"`
	AudioFile      string `json:"audio_file"`
	TranscriptFile string `json:"transcript_file"`
	ReportFile     string `json:"report_file"`
	GeneratedAt    string `json:"generated_at"`
	Transcript     string `json:"transcript"`
	Report         string `json:"report"`
}

type Sender interface {
	SendReport(ctx context.Context, payload ReportWebhookPayload) error
}
