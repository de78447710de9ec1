package components

import (
	"movecar/internal/handler"
	"movecar/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
