package courier

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified or configured.
	ErrNoSender = errors.New("email must have a sender address")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have a text or HTML body")

	// ErrMissingCredentials indicates provider credentials or domain are not
	// configured. Reported at construction time, before any network call.
	ErrMissingCredentials = errors.New("provider credentials not configured")

	// ErrTransport indicates the request never completed: DNS failure,
	// refused connection, or timeout.
	ErrTransport = errors.New("transport failure")

	// ErrAuth indicates the provider rejected the supplied credentials.
	ErrAuth = errors.New("authentication rejected by provider")

	// ErrRejected indicates the provider refused the message itself
	// (malformed fields, unknown domain, etc.).
	ErrRejected = errors.New("message rejected by provider")

	// ErrProvider indicates a provider-side failure (5xx response).
	ErrProvider = errors.New("provider failure")

	// ErrDecode indicates the provider's response body was not valid JSON.
	ErrDecode = errors.New("failed to decode provider response")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrSendFailed indicates email dispatch failed.
	ErrSendFailed = errors.New("failed to send email")
)
