package discord

import (
	"github.com/foxseedlab/nokchwi/internal/config"
	discordpkg "github.com/foxseedlab/nokchwi/internal/discord"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (discordpkg.Notifier, error) {
		c := do.MustInvoke[*config.Config](i)
		if !c.DiscordEnabled() {
			return discordpkg.NoopNotifier{}, nil
		}
		return NewClient(c.DiscordToken, c.DiscordChannelID)
	})
}
