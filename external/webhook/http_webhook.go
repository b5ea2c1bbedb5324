package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/foxseedlab/nokchwi/internal/webhook"
)

const (
	reportWebhookTimeout = 30 * time.Second
	// Upper bound on how much of an error response is quoted back.
	maxErrorBodyBytes = 512

	headerSchemaVersion = "X-Nokchwi-Schema-Version"
	headerRunID         = "X-Nokchwi-Run-Id"
)

// ReportSender posts finished reports as JSON. An empty URL disables it.
type ReportSender struct {
	url    string
	client *http.Client
}

func NewHTTPSender(url string) webhook.Sender {
	return &ReportSender{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: reportWebhookTimeout},
	}
}

func (s *ReportSender) SendReport(ctx context.Context, payload webhook.ReportWebhookPayload) error {
	if s.url == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode report payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerSchemaVersion, payload.SchemaVersion)
	req.Header.Set(headerRunID, payload.RunID)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post report webhook: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("report webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	slog.Debug("report webhook delivered", "run_id", payload.RunID, "status", resp.StatusCode, "bytes", len(body))
	return nil
}
