package transcriber

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/foxseedlab/nokchwi/internal/transcriber"
	"github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

func NewOpenAITranscriber(cfg OpenAIConfig) transcriber.Transcriber {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAITranscriber{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath, language string) (transcriber.Result, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", transcriber.ErrFileNotAccessible, err)
	}
	defer func() {
		_ = f.Close()
	}()

	slog.Debug("requesting openai transcription", "model", t.model, "language", language, "file", filepath.Base(audioPath))
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filepath.Base(audioPath),
		Reader:   f,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularitySegment,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}
	return resultFromAudioResponse(resp), nil
}

func resultFromAudioResponse(resp openai.AudioResponse) transcriber.Result {
	segments := make([]transcriber.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, transcriber.Segment{
			Start:   s.Start,
			Speaker: transcriber.UnknownSpeaker,
			Text:    s.Text,
		})
	}
	return transcriber.NewResult(segments, resp.Text)
}
