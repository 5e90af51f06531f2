package courier

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) (*Result, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}

func queuedResult() *Result {
	return &Result{
		MessageID: "<msg-id>",
		Message:   "Queued. Thank you.",
		Raw: map[string]any{
			"id":      "<msg-id>",
			"message": "Queued. Thank you.",
		},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"welcome.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Welcome {{.Name}}
---
Hello **{{.Name}}**!
`),
		},
	}

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fs), Config{FallbackSubject: "Notification"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "alice@example.com" &&
			email.Subject == "Welcome Alice" &&
			len(email.HTML) > 0 &&
			len(email.Text) > 0
	})).Return(queuedResult(), nil)

	result, err := mailer.Send(context.Background(), SendParams{
		To:       "alice@example.com",
		Template: "welcome.md",
		Data:     map[string]string{"Name": "Alice"},
	})

	require.NoError(t, err)
	require.Equal(t, "<msg-id>", result.MessageID)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fstest.MapFS{}), Config{})

	_, err := mailer.Send(context.Background(), SendParams{Template: "test.md"})

	require.ErrorIs(t, err, ErrNoRecipient)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_FallbackSubject(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"plain.md": &fstest.MapFile{Data: []byte("No frontmatter here.")},
	}

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fs), Config{FallbackSubject: "Notification"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.Subject == "Notification"
	})).Return(queuedResult(), nil)

	_, err := mailer.Send(context.Background(), SendParams{
		To:       "user@example.com",
		Template: "plain.md",
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_RenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, NewRenderer(fstest.MapFS{}), Config{})

	_, err := mailer.Send(context.Background(), SendParams{
		To:       "user@example.com",
		Template: "nonexistent.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_NoRenderer(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, nil, Config{})

	_, err := mailer.Send(context.Background(), SendParams{
		To:       "user@example.com",
		Template: "welcome.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_SendRaw_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, nil, Config{})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.From == "app@example.com" && email.Text == "Hi"
	})).Return(queuedResult(), nil)

	result, err := mailer.SendRaw(context.Background(), &Email{
		From:    "app@example.com",
		To:      []string{"user@example.com"},
		Subject: "Hello",
		Text:    "Hi",
	})

	require.NoError(t, err)
	require.Equal(t, "Queued. Thank you.", result.Message)
	mockSender.AssertExpectations(t)
}

func TestMailer_SendRaw_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   *Email
		wantErr error
	}{
		{
			name:    "no recipient",
			email:   &Email{Subject: "Hello", Text: "Hi"},
			wantErr: ErrNoRecipient,
		},
		{
			name:    "no subject",
			email:   &Email{To: []string{"user@example.com"}, Text: "Hi"},
			wantErr: ErrNoSubject,
		},
		{
			name:    "no content",
			email:   &Email{To: []string{"user@example.com"}, Subject: "Hello"},
			wantErr: ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockSender := &MockSender{}
			mailer := New(mockSender, nil, Config{})

			_, err := mailer.SendRaw(context.Background(), tt.email)

			require.ErrorIs(t, err, tt.wantErr)
			mockSender.AssertNotCalled(t, "Send")
		})
	}
}

func TestMailer_SendRaw_DefaultFrom(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, nil, Config{DefaultFrom: "noreply@example.com"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.From == "noreply@example.com"
	})).Return(queuedResult(), nil)

	_, err := mailer.SendRaw(context.Background(), &Email{
		To:      []string{"user@example.com"},
		Subject: "Hello",
		Text:    "Hi",
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_SendRaw_SenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	mailer := New(mockSender, nil, Config{})

	senderErr := errors.New("connection refused")
	mockSender.On("Send", mock.Anything, mock.Anything).Return(nil, senderErr)

	_, err := mailer.SendRaw(context.Background(), &Email{
		From:    "app@example.com",
		To:      []string{"user@example.com"},
		Subject: "Hello",
		Text:    "Hi",
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, senderErr)
}
