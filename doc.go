// Package courier dispatches transactional email through provider HTTP APIs.
//
// The package separates message construction from delivery: providers
// implement the Sender interface, and the high-level Mailer adds validation,
// optional template rendering, and structured logging on top of whichever
// provider is configured.
//
// # Architecture
//
// Three layers:
//
//   - Sender: interface that provider adapters implement
//   - Renderer: converts markdown templates with YAML frontmatter to HTML
//   - Mailer: high-level client combining Sender and Renderer
//
// Provider adapters live in subpackages:
//
//   - mailgun: form-encoded POST to the Mailgun messages endpoint with
//     HTTP Basic authentication
//   - resend: wrapper around the official Resend SDK
//   - dev: writes messages to a local directory instead of sending
//
// # Usage
//
// Sending through Mailgun:
//
//	sender, err := mailgun.New(mailgun.Config{
//		Domain: os.Getenv("MAIL_DOMAIN"),
//		APIKey: os.Getenv("MAIL_PASSWORD"),
//	})
//	if err != nil {
//		// credentials missing; no request was made
//	}
//
//	m := courier.New(sender, nil, courier.Config{})
//
//	result, err := m.SendRaw(ctx, &courier.Email{
//		From:    "app@example.com",
//		To:      []string{"user@example.com"},
//		Subject: "Receipt",
//		Text:    "Thanks for your order.",
//	})
//
// The returned Result carries the provider's decoded JSON response verbatim
// in Result.Raw, alongside the extracted message ID and status line.
//
// # Errors
//
// Failures are classified into distinct sentinel errors so callers can tell
// a refused connection from a rejected message from an unreadable response:
// ErrTransport, ErrAuth, ErrRejected, ErrProvider, ErrDecode. Validation
// failures (ErrNoRecipient, ErrNoSubject, ErrNoContent) are reported before
// any network call is made.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, glad to have you.
//
// Subject fields support Go template syntax for dynamic subjects. The
// rendered markdown becomes the HTML part; the processed markdown source
// becomes the plain-text part.
package courier
