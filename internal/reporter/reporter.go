package reporter

import "context"

// Generator turns an analysis prompt into report text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
