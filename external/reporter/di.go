package reporter

import (
	"context"

	"github.com/foxseedlab/nokchwi/internal/config"
	"github.com/foxseedlab/nokchwi/internal/reporter"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (reporter.Generator, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewChatModelGenerator(context.Background(), ChatModelConfig{
			APIKey:  c.OpenAIAPIKey,
			BaseURL: c.OpenAIBaseURL,
			Model:   c.OpenAIAnalysisModel,
		})
	})
}
