// Package push delivers move-car notifications to the owner's configured
// channels. Delivery is best-effort: there is no retry, no receipt, and a
// channel failure never propagates past the dispatcher.
package push

import (
	"context"
	"fmt"
	"net/http"

	"movecar/internal/usecase/commands"
)

type Channel interface {
	Name() string
	Send(ctx context.Context, n commands.Notification) error
}

func checkResponse(resp *http.Response) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
