package pipeline

import (
	"github.com/foxseedlab/nokchwi/internal/discord"
	"github.com/foxseedlab/nokchwi/internal/output"
	"github.com/foxseedlab/nokchwi/internal/reporter"
	"github.com/foxseedlab/nokchwi/internal/repository"
	"github.com/foxseedlab/nokchwi/internal/transcriber"
	"github.com/foxseedlab/nokchwi/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		stt := do.MustInvoke[transcriber.Transcriber](i)
		gen := do.MustInvoke[reporter.Generator](i)
		repo := do.MustInvoke[repository.RunRepository](i)
		wh := do.MustInvoke[webhook.Sender](i)
		dc := do.MustInvoke[discord.Notifier](i)
		return NewRunner(stt, gen, output.NewWriter(), repo, wh, dc), nil
	})
}
