package mailgun

import "time"

// Config holds Mailgun provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Domain is the sending domain registered with Mailgun.
	Domain string `env:"MAIL_DOMAIN"`
	// Username for HTTP Basic authentication; Mailgun's convention is "api".
	Username string `env:"MAIL_USERNAME" envDefault:"api"`
	// APIKey is the Basic auth password.
	APIKey string `env:"MAIL_PASSWORD"`
	// BaseURL allows pointing at a different Mailgun region or a test server.
	BaseURL string `env:"MAILGUN_BASE_URL" envDefault:"https://api.mailgun.net/v3"`
	// SenderEmail and SenderName form the default From address when the
	// message itself does not carry one.
	SenderEmail string `env:"MAILGUN_FROM_EMAIL"`
	SenderName  string `env:"MAILGUN_FROM_NAME"`
	// Timeout bounds the full request/response round trip.
	Timeout time.Duration `env:"MAILGUN_TIMEOUT" envDefault:"30s"`
}
