package push

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"movecar/internal/pkg/errs"
	"movecar/internal/usecase/commands"
)

const barkTitle = "挪车请求"

// Bark sends through a self-hosted or public Bark server. The configured
// URL is the per-device endpoint; title and body travel as path segments.
type Bark struct {
	baseURL string
	client  *http.Client
}

func NewBark(baseURL string, client *http.Client) *Bark {
	return &Bark{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (b *Bark) Name() string { return "bark" }

func (b *Bark) Send(ctx context.Context, n commands.Notification) error {
	target := b.baseURL + "/" + url.PathEscape(barkTitle) + "/" + url.PathEscape(n.Body) +
		"?url=" + url.QueryEscape(n.ConfirmURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build bark request")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "bark request failed")
	}
	return checkResponse(resp)
}
