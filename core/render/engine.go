package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/folio/core"
)

// Engine names accepted by NewEngine.
const (
	EngineSimple   = "simple"
	EngineGoldmark = "goldmark"
)

// SimpleEngine renders posts with the substitution pipeline.
type SimpleEngine struct{}

// Render satisfies core.Engine.
func (SimpleEngine) Render(content string) (string, error) {
	return FullPost(content), nil
}

// GoldmarkEngine renders posts as CommonMark with GFM extensions. Raw HTML
// in posts is passed through, matching the trust model of SimpleEngine.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

// NewGoldmarkEngine constructs a GoldmarkEngine.
func NewGoldmarkEngine() *GoldmarkEngine {
	return &GoldmarkEngine{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render satisfies core.Engine.
func (e *GoldmarkEngine) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(StripFrontMatter(content)), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return buf.String(), nil
}

// NewEngine returns the engine registered under name. An empty name selects
// the simple engine.
func NewEngine(name string) (core.Engine, error) {
	switch name {
	case "", EngineSimple:
		return SimpleEngine{}, nil
	case EngineGoldmark:
		return NewGoldmarkEngine(), nil
	default:
		return nil, fmt.Errorf("unknown render engine %q", name)
	}
}
