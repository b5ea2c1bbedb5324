package transcriber

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foxseedlab/nokchwi/internal/transcriber"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.m4a")
	if err := os.WriteFile(path, []byte("fake-audio"), 0o644); err != nil {
		t.Fatalf("failed to write audio fixture: %v", err)
	}
	return path
}

func newTranscriptionServer(t *testing.T, body string, check func(fields map[string]string, file string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Fatalf("unexpected authorization header: %s", got)
		}
		reader, err := r.MultipartReader()
		if err != nil {
			t.Fatalf("failed to create multipart reader: %v", err)
		}
		fields := map[string]string{}
		var file string
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("failed to read multipart part: %v", err)
			}
			content, err := io.ReadAll(part)
			if err != nil {
				t.Fatalf("failed to read part body: %v", err)
			}
			if part.FormName() == "file" {
				file = string(content)
				continue
			}
			if prev, ok := fields[part.FormName()]; ok {
				fields[part.FormName()] = prev + "," + string(content)
				continue
			}
			fields[part.FormName()] = string(content)
		}
		if check != nil {
			check(fields, file)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
}

func TestOpenAITranscriber_Segmented(t *testing.T) {
	audio := writeAudioFixture(t)
	server := newTranscriptionServer(t,
		`{"task":"transcribe","language":"korean","duration":70.2,"text":"hello world","segments":[{"id":0,"start":5.0,"end":9.5,"text":" hello"},{"id":1,"start":65.7,"end":70.2,"text":" world "}]}`,
		func(fields map[string]string, file string) {
			if fields["model"] != "gpt-4o-mini-transcribe" {
				t.Fatalf("unexpected model: %q", fields["model"])
			}
			if fields["language"] != "ko" {
				t.Fatalf("unexpected language: %q", fields["language"])
			}
			if fields["response_format"] != "verbose_json" {
				t.Fatalf("unexpected response_format: %q", fields["response_format"])
			}
			if fields["timestamp_granularities[]"] != "segment" {
				t.Fatalf("unexpected timestamp_granularities[]: %q", fields["timestamp_granularities[]"])
			}
			if file != "fake-audio" {
				t.Fatalf("unexpected file body: %q", file)
			}
		})
	defer server.Close()

	stt := NewOpenAITranscriber(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1", Model: "gpt-4o-mini-transcribe"})
	result, err := stt.Transcribe(context.Background(), audio, "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg, ok := result.(transcriber.SegmentedResult)
	if !ok {
		t.Fatalf("expected SegmentedResult, got %T", result)
	}
	if len(seg.Segments) != 2 {
		t.Fatalf("unexpected segment count: %d", len(seg.Segments))
	}
	if seg.Segments[0].Speaker != transcriber.UnknownSpeaker {
		t.Fatalf("unexpected speaker: %q", seg.Segments[0].Speaker)
	}
	got := transcriber.Render(result)
	want := "[00:05] 화자미상: hello\n[01:05] 화자미상: world"
	if got != want {
		t.Fatalf("unexpected transcript:\n%s\nwant:\n%s", got, want)
	}
}

func TestOpenAITranscriber_FlatTextWhenNoSegments(t *testing.T) {
	audio := writeAudioFixture(t)
	server := newTranscriptionServer(t, `{"text":"  전체 텍스트  "}`, nil)
	defer server.Close()

	stt := NewOpenAITranscriber(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1", Model: "gpt-4o-mini-transcribe"})
	result, err := stt.Transcribe(context.Background(), audio, "ko")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(transcriber.FlatTextResult); !ok {
		t.Fatalf("expected FlatTextResult, got %T", result)
	}
	if got := transcriber.Render(result); got != "전체 텍스트" {
		t.Fatalf("unexpected transcript: %q", got)
	}
}

func TestOpenAITranscriber_MissingFile(t *testing.T) {
	stt := NewOpenAITranscriber(OpenAIConfig{APIKey: "sk-test", BaseURL: "http://127.0.0.1:0/v1", Model: "m"})
	_, err := stt.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), "ko")
	if !errors.Is(err, transcriber.ErrFileNotAccessible) {
		t.Fatalf("expected ErrFileNotAccessible, got %v", err)
	}
}

func TestOpenAITranscriber_APIErrorPropagates(t *testing.T) {
	audio := writeAudioFixture(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	stt := NewOpenAITranscriber(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/v1", Model: "m"})
	if _, err := stt.Transcribe(context.Background(), audio, "ko"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
