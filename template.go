package courier

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// messageTemplate is a parsed template file: YAML frontmatter metadata plus
// a markdown body.
type messageTemplate struct {
	Meta map[string]any
	Body string
}

// parseMessageTemplate splits optional YAML frontmatter from the markdown
// body. A template without a leading "---" line has no frontmatter; the
// whole content is the body.
func parseMessageTemplate(content []byte) (*messageTemplate, error) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() || strings.TrimRight(sc.Text(), "\r") != frontmatterDelim {
		return &messageTemplate{
			Meta: make(map[string]any),
			Body: string(content),
		}, nil
	}

	var meta, body strings.Builder
	inMeta := true
	closed := false
	for sc.Scan() {
		line := sc.Text()
		if inMeta {
			if strings.TrimRight(line, "\r") == frontmatterDelim {
				inMeta = false
				closed = true
				continue
			}
			meta.WriteString(line)
			meta.WriteByte('\n')
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	if !closed {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	parsed := make(map[string]any)
	if strings.TrimSpace(meta.String()) != "" {
		if err := yaml.Unmarshal([]byte(meta.String()), &parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &messageTemplate{Meta: parsed, Body: body.String()}, nil
}

// subjectFromMeta extracts the Subject field from frontmatter metadata.
// Returns an empty string when absent or not a string.
func subjectFromMeta(meta map[string]any) string {
	if s, ok := meta["Subject"].(string); ok {
		return s
	}
	return ""
}
