package push

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"movecar/internal/pkg/errs"
	"movecar/internal/usecase/commands"
)

// PushPlus sends through the pushplus.plus HTTP API using a per-owner token.
type PushPlus struct {
	token    string
	endpoint string
	client   *http.Client
}

func NewPushPlus(token, endpoint string, client *http.Client) *PushPlus {
	return &PushPlus{token: token, endpoint: endpoint, client: client}
}

func (p *PushPlus) Name() string { return "pushplus" }

type pushPlusPayload struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Template string `json:"template"`
}

func (p *PushPlus) Send(ctx context.Context, n commands.Notification) error {
	content := strings.ReplaceAll(n.Body, "\n", "<br>") +
		`<br><br><a href="` + n.ConfirmURL + `" style="font-size:18px;color:#0093E9">【点击处理】</a>`

	body, err := json.Marshal(pushPlusPayload{
		Token:    p.token,
		Title:    n.Title,
		Content:  content,
		Template: "html",
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal pushplus payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build pushplus request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "pushplus request failed")
	}
	return checkResponse(resp)
}
