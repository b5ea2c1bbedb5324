package transcriber

import (
	"context"
	"errors"
)

// UnknownSpeaker labels every segment; no diarization is performed.
const UnknownSpeaker = "화자미상"

var ErrFileNotAccessible = errors.New("audio file is not accessible")

type Segment struct {
	// Start is the offset from the beginning of the recording in seconds.
	Start   float64
	Speaker string
	Text    string
}

// Result is either a SegmentedResult or a FlatTextResult. Adapters decide
// which one once, when they convert the service response.
type Result interface {
	isResult()
}

type SegmentedResult struct {
	Segments []Segment
}

type FlatTextResult struct {
	Text string
}

func (SegmentedResult) isResult() {}
func (FlatTextResult) isResult()  {}

// NewResult returns a SegmentedResult when segments is non-empty and falls
// back to the flat text otherwise.
func NewResult(segments []Segment, text string) Result {
	if len(segments) == 0 {
		return FlatTextResult{Text: text}
	}
	return SegmentedResult{Segments: segments}
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (Result, error)
}
