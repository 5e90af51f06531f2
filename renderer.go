package courier

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown templates with YAML frontmatter to HTML email
// bodies. Parsed templates and layouts are cached; rendering with fresh data
// is safe for concurrent use.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	templates   map[string]*parsedTemplate
	layouts     map[string]*htmltemplate.Template
	templateDir string
	layoutDir   string
	mu          sync.Mutex
}

// parsedTemplate pairs frontmatter metadata with the compiled body template.
type parsedTemplate struct {
	meta map[string]any
	body *texttemplate.Template
}

// RendererConfig configures template and layout locations within the
// renderer's filesystem.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer reading templates from the given filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directory layout.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(),
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*htmltemplate.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult contains the rendered HTML, the plain-text part, and the
// subject extracted from template frontmatter.
type RenderResult struct {
	Meta    map[string]any
	Subject string
	HTML    string
	Text    string // Processed markdown before HTML conversion
}

// Render executes a markdown template with data, converts it to HTML, and
// optionally wraps it in an HTML layout. An empty layout name skips the
// wrapping and returns the converted markdown as the full HTML body.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tmpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var html bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &html); err != nil {
		return nil, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, templateName, err)
	}

	result := &RenderResult{
		Meta:    tmpl.meta,
		Subject: subjectFromMeta(tmpl.meta),
		Text:    markdown.String(),
		HTML:    html.String(),
	}

	if layout == "" {
		return result, nil
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var wrapped bytes.Buffer
	err = layoutTmpl.Execute(&wrapped, map[string]any{
		"Content":  htmltemplate.HTML(html.String()),
		"Metadata": tmpl.meta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = wrapped.String()

	return result, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := parseMessageTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	body, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	cached := &parsedTemplate{meta: parsed.Meta, body: body}
	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*htmltemplate.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := htmltemplate.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layouts[name] = tmpl
	return tmpl, nil
}
