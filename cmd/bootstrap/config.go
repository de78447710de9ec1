package bootstrap

import (
	"movecar/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.Settings {
			return config.NewEnvSettings(cfg.Notify)
		},
	),
)
