package courier

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	texttemplate "text/template"

	"github.com/google/uuid"
)

// Mailer provides high-level email sending with validation, optional
// template rendering, and structured logging.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	log      *slog.Logger
	config   Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for dispatch logging.
// Without it the Mailer stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Mailer with the given sender and renderer.
// The renderer may be nil if only SendRaw is used.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient (most common case)
	Template string // Template filename (e.g., "welcome.md")
	Data     any    // Template data

	// Optional overrides
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	From        string       // Override default sender
	ReplyTo     string       // Reply-to address
	CC          []string     // Carbon copy
	BCC         []string     // Blind carbon copy
	Tags        []string     // Provider tags
	Attachments []Attachment // File attachments
}

// Send renders a template and dispatches the resulting email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*Result, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}
	if m.renderer == nil {
		return nil, errors.Join(ErrRenderFailed, errors.New("no renderer configured"))
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	rendered, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = rendered.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	// Subject supports {{.Variable}} syntax with the same template data.
	subject, err = m.executeSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	}

	return m.dispatch(ctx, email)
}

// SendRaw dispatches a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (*Result, error) {
	if len(email.To) == 0 {
		return nil, ErrNoRecipient
	}
	if email.Subject == "" {
		return nil, ErrNoSubject
	}
	if email.Text == "" && email.HTML == "" {
		return nil, ErrNoContent
	}

	return m.dispatch(ctx, email)
}

// dispatch applies sender defaults, assigns a reference ID for log
// correlation, and hands the message to the provider.
func (m *Mailer) dispatch(ctx context.Context, email *Email) (*Result, error) {
	if email.From == "" {
		email.From = m.config.DefaultFrom
	}

	refID := uuid.NewString()

	m.log.InfoContext(ctx, "sending email",
		slog.String("ref_id", refID),
		slog.String("to", email.To[0]),
		slog.String("subject", email.Subject),
	)

	result, err := m.sender.Send(ctx, email)
	if err != nil {
		m.log.ErrorContext(ctx, "email dispatch failed",
			slog.String("ref_id", refID),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	m.log.InfoContext(ctx, "email sent",
		slog.String("ref_id", refID),
		slog.String("message_id", result.MessageID),
	)

	return result, nil
}

func (m *Mailer) executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
