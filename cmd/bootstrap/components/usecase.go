package components

import (
	"log/slog"

	"movecar/internal/infra/push"
	"movecar/internal/pkg/clock"
	"movecar/internal/pkg/config"
	"movecar/internal/usecase/commands"
	"movecar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPushDispatcher,
		fx.As(new(commands.Dispatcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
	),
)

func NewPushDispatcher(cfg config.Config, settings config.Settings, logger *slog.Logger) *push.Dispatcher {
	return push.NewDispatcher(cfg.Notify, settings, logger)
}
