package push

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"movecar/internal/pkg/config"
	"movecar/internal/usecase/commands"
)

// Dispatcher resolves the channels configured for a user and fans a
// notification out to all of them concurrently. Zero resolved channels is
// a silent no-op: a request can be opened for an owner nobody can push to.
type Dispatcher struct {
	settings config.Settings
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewDispatcher(cfg config.NotifyConfig, settings config.Settings, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		endpoint: cfg.PushPlusEndpoint,
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		logger:   logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n commands.Notification) []commands.DispatchOutcome {
	channels := d.resolve(n.User.String())
	if len(channels) == 0 {
		d.logger.Debug("no push channels configured", "user", n.User.String())
		return nil
	}

	outcomes := make([]commands.DispatchOutcome, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(i int, ch Channel) {
			defer wg.Done()
			err := ch.Send(ctx, n)
			outcomes[i] = commands.DispatchOutcome{Channel: ch.Name(), Err: err}
			if err != nil {
				d.logger.Warn("push channel failed",
					"channel", ch.Name(),
					"user", n.User.String(),
					"error", err.Error(),
				)
			}
		}(i, ch)
	}
	wg.Wait()
	return outcomes
}

func (d *Dispatcher) resolve(user string) []Channel {
	var channels []Channel
	if token := d.settings.PushPlusToken(user); token != "" {
		channels = append(channels, NewPushPlus(token, d.endpoint, d.client))
	}
	if barkURL := d.settings.BarkURL(user); barkURL != "" {
		channels = append(channels, NewBark(barkURL, d.client))
	}
	return channels
}
