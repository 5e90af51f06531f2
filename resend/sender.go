// Package resend implements courier.Sender using the official Resend SDK.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/courier"
)

// Sender implements courier.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Resend sender. The API key must be present; like the other
// providers, a missing credential is a configuration error, not a request
// that goes out unauthenticated.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is empty", courier.ErrMissingCredentials)
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements courier.Sender.
func (s *Sender) Send(ctx context.Context, email *courier.Email) (*courier.Result, error) {
	from := email.From
	if from == "" {
		from = courier.Recipient(s.config.SenderName, s.config.SenderEmail)
	}
	if from == "" {
		return nil, courier.ErrNoSender
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: resend: %v", courier.ErrProvider, err)
	}

	return &courier.Result{
		MessageID: sent.Id,
		Raw:       map[string]any{"id": sent.Id},
	}, nil
}

func convertAttachments(attachments []courier.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		}
	}
	return result
}

// convertTags maps plain tag names to Resend's name-value pairs.
// Presence-only tags become name="true".
func convertTags(tags []string) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for _, name := range tags {
		result = append(result, resend.Tag{Name: name, Value: "true"})
	}
	return result
}
