package bootstrap

import (
	"context"

	"movecar/internal/infra/kvstore"
	"movecar/internal/pkg/clock"
	"movecar/internal/pkg/config"
	"movecar/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore selects the key-value backend by STORE_DRIVER. Redis is the
// production driver; the in-process store exists for local runs and tests.
func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (kvstore.Store, error) {
	switch cfg.Store.Driver {
	case "redis":
		store := kvstore.NewRedisStore(cfg.Store)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.Ping(ctx)
			},
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	case "memory":
		return kvstore.NewMemoryStore(clk), nil
	default:
		return nil, errs.New("unknown store driver: " + cfg.Store.Driver)
	}
}
