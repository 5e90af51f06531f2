// Package mailgun implements courier.Sender on the Mailgun messages API.
//
// Messages are sent as a form-encoded POST to
// https://api.mailgun.net/v3/{domain}/messages with HTTP Basic
// authentication. The provider's JSON response is relayed to the caller
// unmodified in Result.Raw.
package mailgun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/courier"
)

// maxResponseBytes caps how much of a provider response is read.
// Mailgun replies are tiny JSON objects; anything bigger is garbage.
const maxResponseBytes = 1 << 20

// Sender implements courier.Sender using the Mailgun HTTP API.
type Sender struct {
	config     Config
	httpClient *http.Client
	endpoint   string
}

// New creates a Mailgun sender. It fails fast when the domain or either
// credential is missing, so a misconfigured process never sends an
// unauthenticated request.
func New(cfg Config) (*Sender, error) {
	switch {
	case cfg.Domain == "":
		return nil, fmt.Errorf("%w: domain is empty", courier.ErrMissingCredentials)
	case cfg.Username == "":
		return nil, fmt.Errorf("%w: username is empty", courier.ErrMissingCredentials)
	case cfg.APIKey == "":
		return nil, fmt.Errorf("%w: API key is empty", courier.ErrMissingCredentials)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mailgun.net/v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Sender{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: fmt.Sprintf("%s/%s/messages", strings.TrimSuffix(cfg.BaseURL, "/"), cfg.Domain),
	}, nil
}

// Endpoint returns the fully-constructed messages URL for this sender.
func (s *Sender) Endpoint() string {
	return s.endpoint
}

// Send implements courier.Sender.
func (s *Sender) Send(ctx context.Context, email *courier.Email) (*courier.Result, error) {
	if len(email.Attachments) > 0 {
		// The form-encoded transport cannot carry attachments; refusing is
		// better than silently dropping them.
		return nil, errors.New("mailgun: attachments require the multipart messages API")
	}

	form, err := s.buildForm(email)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("mailgun: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.config.Username, s.config.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", courier.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", courier.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d: %s", courier.ErrAuth, resp.StatusCode, apiMessage(body))
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d: %s", courier.ErrProvider, resp.StatusCode, apiMessage(body))
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status %d: %s", courier.ErrRejected, resp.StatusCode, apiMessage(body))
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", courier.ErrDecode, err)
	}

	result := &courier.Result{Raw: raw}
	if id, ok := raw["id"].(string); ok {
		result.MessageID = id
	}
	if msg, ok := raw["message"].(string); ok {
		result.Message = msg
	}
	return result, nil
}

// buildForm encodes the message as Mailgun form fields. Only populated
// fields are present: a minimal message produces exactly from, to, subject.
func (s *Sender) buildForm(email *courier.Email) (url.Values, error) {
	from := email.From
	if from == "" {
		from = courier.Recipient(s.config.SenderName, s.config.SenderEmail)
	}
	if from == "" {
		return nil, courier.ErrNoSender
	}

	form := url.Values{}
	form.Set("from", from)
	form.Set("to", strings.Join(email.To, ","))
	form.Set("subject", email.Subject)

	if email.Text != "" {
		form.Set("text", email.Text)
	}
	if email.HTML != "" {
		form.Set("html", email.HTML)
	}
	for _, cc := range email.CC {
		form.Add("cc", cc)
	}
	for _, bcc := range email.BCC {
		form.Add("bcc", bcc)
	}
	if email.ReplyTo != "" {
		form.Set("h:Reply-To", email.ReplyTo)
	}
	for name, value := range email.Headers {
		form.Set("h:"+name, value)
	}
	for _, tag := range email.Tags {
		form.Add("o:tag", tag)
	}

	return form, nil
}

// apiMessage extracts Mailgun's human-readable error message from a response
// body, falling back to a trimmed snippet when the body is not JSON.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	if snippet == "" {
		snippet = "(empty response body)"
	}
	return snippet
}
