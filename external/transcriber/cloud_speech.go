package transcriber

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/auth/credentials"
	speech "cloud.google.com/go/speech/apiv2"
	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/foxseedlab/nokchwi/internal/transcriber"
	"google.golang.org/api/option"
)

const speechAPIEndpointPort = 443

type CloudSpeechConfig struct {
	ProjectID       string
	CredentialsJSON string
	Location        string
	Model           string
}

// CloudSpeechTranscriber uses the synchronous v2 Recognize call with inline
// audio, so recordings are bounded by the API's inline content limits.
type CloudSpeechTranscriber struct {
	projectID       string
	credentialsJSON string
	location        string
	model           string
}

func NewCloudSpeechTranscriber(cfg CloudSpeechConfig) transcriber.Transcriber {
	location := strings.TrimSpace(cfg.Location)
	if location == "" {
		location = "global"
	}
	return &CloudSpeechTranscriber{
		projectID:       cfg.ProjectID,
		credentialsJSON: cfg.CredentialsJSON,
		location:        location,
		model:           strings.TrimSpace(cfg.Model),
	}
}

func (t *CloudSpeechTranscriber) Transcribe(ctx context.Context, audioPath, language string) (transcriber.Result, error) {
	content, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", transcriber.ErrFileNotAccessible, err)
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(t.credentialsJSON),
		Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
	})
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}

	opts := []option.ClientOption{
		option.WithAuthCredentials(creds),
	}
	if t.location != "global" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("%s-speech.googleapis.com:%d", t.location, speechAPIEndpointPort)))
	}

	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close speech client", "error", err)
		}
	}()

	slog.Debug("requesting cloud speech recognition", "location", t.location, "model", t.model, "language", language, "audio_bytes", len(content))
	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Recognizer: fmt.Sprintf("projects/%s/locations/%s/recognizers/_", t.projectID, t.location),
		Config: &speechpb.RecognitionConfig{
			Model:         t.model,
			LanguageCodes: []string{language},
			DecodingConfig: &speechpb.RecognitionConfig_AutoDecodingConfig{
				AutoDecodingConfig: &speechpb.AutoDetectDecodingConfig{},
			},
			Features: &speechpb.RecognitionFeatures{
				EnableAutomaticPunctuation: true,
			},
		},
		AudioSource: &speechpb.RecognizeRequest_Content{Content: content},
	})
	if err != nil {
		return nil, fmt.Errorf("cloud speech recognize: %w", err)
	}
	return resultFromRecognizeResponse(resp), nil
}

// resultFromRecognizeResponse maps each recognition result to one segment.
// A result only carries its end offset, so its start is the previous end.
func resultFromRecognizeResponse(resp *speechpb.RecognizeResponse) transcriber.Result {
	var (
		segments []transcriber.Segment
		texts    []string
		start    float64
	)
	for _, result := range resp.GetResults() {
		end := start
		if off := result.GetResultEndOffset(); off != nil {
			end = off.AsDuration().Seconds()
		}
		if len(result.GetAlternatives()) > 0 {
			text := result.GetAlternatives()[0].GetTranscript()
			segments = append(segments, transcriber.Segment{
				Start:   start,
				Speaker: transcriber.UnknownSpeaker,
				Text:    text,
			})
			texts = append(texts, strings.TrimSpace(text))
		}
		start = end
	}
	return transcriber.NewResult(segments, strings.Join(texts, " "))
}
