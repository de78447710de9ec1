package bootstrap

import (
	"movecar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
