package courier

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render_Bare(t *testing.T) {
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

	r := NewRenderer(fs)
	result, err := r.Render("", "welcome.md", map[string]string{"Name": "Alice"})

	require.NoError(t, err)
	require.Equal(t, "Welcome {{.Name}}", result.Subject)
	require.Contains(t, result.HTML, "<strong>Alice</strong>")
	require.Contains(t, result.Text, "**Alice**")
}

func TestRenderer_Render_WithLayout(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte(`Hello *there*.`),
		},
	}

	r := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})
	result, err := r.Render("base.html", "welcome.md", nil)

	require.NoError(t, err)
	require.Contains(t, result.HTML, "<html><body>")
	require.Contains(t, result.HTML, "<em>there</em>")
	require.Contains(t, result.HTML, "</body></html>")
}

func TestRenderer_Render_TemplateNotFound(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{})
	_, err := r.Render("", "missing.md", nil)

	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderer_Render_LayoutNotFound(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"welcome.md": &fstest.MapFile{Data: []byte(`Hello.`)},
	}

	r := NewRenderer(fs)
	_, err := r.Render("missing.html", "welcome.md", nil)

	require.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestRenderer_Render_BadTemplateSyntax(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"broken.md": &fstest.MapFile{Data: []byte(`Hello {{.Name`)},
	}

	r := NewRenderer(fs)
	_, err := r.Render("", "broken.md", nil)

	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"note.md": &fstest.MapFile{Data: []byte(`Value: {{.V}}`)},
	}

	r := NewRenderer(fs)

	first, err := r.Render("", "note.md", map[string]string{"V": "one"})
	require.NoError(t, err)
	require.Contains(t, first.Text, "one")

	// Cached parse, fresh data.
	second, err := r.Render("", "note.md", map[string]string{"V": "two"})
	require.NoError(t, err)
	require.Contains(t, second.Text, "two")
}

func TestRenderer_Render_TemplateDir(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"emails/hello.md": &fstest.MapFile{Data: []byte(`Hi.`)},
	}

	r := NewRendererWithConfig(fs, RendererConfig{TemplateDir: "emails"})
	result, err := r.Render("", "hello.md", nil)

	require.NoError(t, err)
	require.Contains(t, result.HTML, "Hi.")
}
