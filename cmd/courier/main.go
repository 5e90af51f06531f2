// Command courier sends a single transactional email through a configured
// provider and prints the provider's JSON response to stdout.
//
// Connection settings and credentials come from the environment (a local
// .env file is honored); the message itself comes from flags:
//
//	courier -to user@example.com -subject "Hello" -text "Hi there"
//	courier -to user@example.com -template welcome.md -data Name=Alice
//
// Exit status: 0 on success, 2 for configuration or usage errors (reported
// before any network call), 1 when dispatch fails.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/courier"
	"github.com/dmitrymomot/courier/dev"
	"github.com/dmitrymomot/courier/mailgun"
	"github.com/dmitrymomot/courier/pkg/logger"
	"github.com/dmitrymomot/courier/resend"
)

const (
	exitSendFailed = 1
	exitConfig     = 2
)

type config struct {
	Provider    string `env:"COURIER_PROVIDER" envDefault:"mailgun"`
	TemplateDir string `env:"COURIER_TEMPLATE_DIR" envDefault:"templates"`

	Mailer  courier.Config
	Mailgun mailgun.Config
	Resend  resend.Config
	Dev     dev.Config
	Logger  logger.Config
	Sentry  logger.SentryConfig
}

// kvFlag collects repeated key=value flags into a map.
type kvFlag map[string]string

func (f kvFlag) String() string { return fmt.Sprint(map[string]string(f)) }

func (f kvFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	f[key] = val
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		to           = flag.String("to", "", "recipient address (comma-separated for multiple)")
		from         = flag.String("from", "", "sender address, overrides configured default")
		subject      = flag.String("subject", "", "message subject")
		text         = flag.String("text", "", "plain text body")
		html         = flag.String("html", "", "HTML body")
		templateName = flag.String("template", "", "template filename rendered from the template dir")
		provider     = flag.String("provider", "", "provider override: mailgun, resend, or dev")
		data         = kvFlag{}
	)
	flag.Var(data, "data", "template data as key=value, repeatable")
	flag.Parse()

	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "courier: invalid configuration: %v\n", err)
		return exitConfig
	}
	if *provider != "" {
		cfg.Provider = *provider
	}

	log := logger.NewWithSentry(cfg.Logger, cfg.Sentry)

	if *to == "" {
		fmt.Fprintln(os.Stderr, "courier: -to is required")
		return exitConfig
	}

	sender, err := buildSender(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "courier: %v\n", err)
		return exitConfig
	}

	var renderer *courier.Renderer
	if *templateName != "" {
		renderer = courier.NewRendererWithConfig(os.DirFS(cfg.TemplateDir), courier.RendererConfig{})
	}

	mailer := courier.New(sender, renderer, cfg.Mailer, courier.WithLogger(log))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := send(ctx, mailer, sendInput{
		to:       strings.Split(*to, ","),
		from:     *from,
		subject:  *subject,
		text:     *text,
		html:     *html,
		template: *templateName,
		data:     data,
	})
	if err != nil {
		if isConfigError(err) {
			fmt.Fprintf(os.Stderr, "courier: %v\n", err)
			return exitConfig
		}
		log.Error("dispatch failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "courier: %v\n", err)
		return exitSendFailed
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(result.Raw); err != nil {
		fmt.Fprintf(os.Stderr, "courier: encode response: %v\n", err)
		return exitSendFailed
	}
	return 0
}

type sendInput struct {
	data     map[string]string
	from     string
	subject  string
	text     string
	html     string
	template string
	to       []string
}

func send(ctx context.Context, mailer *courier.Mailer, in sendInput) (*courier.Result, error) {
	if in.template != "" {
		return mailer.Send(ctx, courier.SendParams{
			To:       in.to[0],
			Template: in.template,
			Data:     in.data,
			Subject:  in.subject,
			From:     in.from,
		})
	}

	return mailer.SendRaw(ctx, &courier.Email{
		From:    in.from,
		To:      in.to,
		Subject: in.subject,
		Text:    in.text,
		HTML:    in.html,
	})
}

func buildSender(cfg config) (courier.Sender, error) {
	switch cfg.Provider {
	case "mailgun":
		return mailgun.New(cfg.Mailgun)
	case "resend":
		return resend.New(cfg.Resend)
	case "dev":
		return dev.New(cfg.Dev), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want mailgun, resend, or dev)", cfg.Provider)
	}
}

// isConfigError reports whether the failure happened before any network
// call: missing credentials or an incomplete message.
func isConfigError(err error) bool {
	return errors.Is(err, courier.ErrMissingCredentials) ||
		errors.Is(err, courier.ErrNoRecipient) ||
		errors.Is(err, courier.ErrNoSender) ||
		errors.Is(err, courier.ErrNoSubject) ||
		errors.Is(err, courier.ErrNoContent)
}
