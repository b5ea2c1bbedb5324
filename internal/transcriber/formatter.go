package transcriber

import (
	"fmt"
	"math"
	"strings"
)

// Render turns a transcription result into transcript text: one
// "[mm:ss] speaker: text" line per segment with text, or the flat text.
func Render(r Result) string {
	switch v := r.(type) {
	case SegmentedResult:
		lines := make([]string, 0, len(v.Segments))
		for _, seg := range v.Segments {
			text := strings.TrimSpace(seg.Text)
			if text == "" {
				continue
			}
			speaker := seg.Speaker
			if speaker == "" {
				speaker = UnknownSpeaker
			}
			lines = append(lines, fmt.Sprintf("[%s] %s: %s", formatOffsetMMSS(seg.Start), speaker, text))
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	case FlatTextResult:
		return strings.TrimSpace(v.Text)
	default:
		return ""
	}
}

func formatOffsetMMSS(startSec float64) string {
	total := int64(math.Floor(startSec))
	if total < 0 {
		total = 0
	}
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
