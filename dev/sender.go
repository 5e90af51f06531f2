// Package dev implements courier.Sender for local development: instead of
// calling a provider it writes each message to a directory as a JSON file
// plus, when an HTML body is present, a sibling .html file for previewing
// in a browser.
package dev

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrymomot/courier"
)

// Config holds dev sender configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Dir string `env:"COURIER_DEV_DIR" envDefault:"./email-output"`
}

// Sender writes messages to a local directory.
type Sender struct {
	dir string
}

// New creates a dev sender writing into dir.
func New(cfg Config) *Sender {
	dir := cfg.Dir
	if dir == "" {
		dir = "./email-output"
	}
	return &Sender{dir: dir}
}

// Send implements courier.Sender.
func (s *Sender) Send(_ context.Context, email *courier.Email) (*courier.Result, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("dev: create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102T150405.000"), slug(email.Subject))

	payload, err := json.MarshalIndent(email, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dev: marshal email: %w", err)
	}

	jsonPath := filepath.Join(s.dir, name+".json")
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return nil, fmt.Errorf("dev: write %s: %w", jsonPath, err)
	}

	if email.HTML != "" {
		htmlPath := filepath.Join(s.dir, name+".html")
		if err := os.WriteFile(htmlPath, []byte(email.HTML), 0o644); err != nil {
			return nil, fmt.Errorf("dev: write %s: %w", htmlPath, err)
		}
	}

	return &courier.Result{
		MessageID: name,
		Message:   "written to " + s.dir,
		Raw: map[string]any{
			"id":      name,
			"message": "written to " + s.dir,
		},
	}, nil
}

// slug reduces a subject line to a short filesystem-safe fragment.
func slug(subject string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(subject) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
		if b.Len() >= 40 {
			break
		}
	}
	if b.Len() == 0 {
		return "message"
	}
	return strings.Trim(b.String(), "-")
}
