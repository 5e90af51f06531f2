package courier

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email, performs one delivery attempt, and
// returns the provider's response.
type Sender interface {
	// Send delivers an email message. The Email must have From, To, Subject,
	// and at least one body part already set. Implementations classify
	// failures with the package sentinel errors (ErrTransport, ErrAuth,
	// ErrRejected, ErrProvider, ErrDecode).
	Send(ctx context.Context, email *Email) (*Result, error)
}
