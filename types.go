package courier

import "fmt"

// Email represents a fully-prepared message ready for dispatch.
type Email struct {
	Headers     map[string]string // Custom headers
	Subject     string            // Message subject
	HTML        string            // HTML body
	Text        string            // Plain text body
	From        string            // Sender address, "Name <email>" or bare email
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Tags        []string          // Provider-specific tags/categories
	Attachments []Attachment      // File attachments
}

// Attachment represents a file attached to a message.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// Result is the provider's answer to a dispatch. Raw holds the decoded JSON
// response exactly as the provider returned it; MessageID and Message are
// extracted from it when the provider supplies them.
type Result struct {
	Raw       map[string]any // Decoded response body, unmodified
	MessageID string         // Provider's delivery identifier
	Message   string         // Human-readable status (e.g., "Queued. Thank you.")
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
