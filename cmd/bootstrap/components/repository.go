package components

import (
	"movecar/internal/infra/kvstore"
	"movecar/internal/infra/sessionrepo"
	"movecar/internal/pkg/config"
	"movecar/internal/usecase/commands"
	"movecar/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewSessionRepository,
			fx.As(new(commands.SessionWriter)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			NewCooldown,
			fx.As(new(commands.CooldownGuard)),
		),
	),
)

func NewSessionRepository(store kvstore.Store, cfg config.Config) *sessionrepo.Repository {
	return sessionrepo.NewRepository(store, cfg.Session)
}

func NewCooldown(store kvstore.Store, cfg config.Config) *sessionrepo.Cooldown {
	return sessionrepo.NewCooldown(store, cfg.Session.CooldownTTL)
}
