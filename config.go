package courier

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FallbackSubject string `env:"COURIER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"COURIER_DEFAULT_LAYOUT"`
	DefaultFrom     string `env:"COURIER_FROM"`
}
