package frontmatter

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/folio/core"
)

// Compose writes meta as a YAML front-matter block followed by body.
// Values are folded onto one line, stripped of quotes and of control
// characters so that yaml.v3 never escapes them and Extract reads back
// exactly what was written. Empty metadata yields body alone.
func Compose(meta core.FrontMatter, body string) (string, error) {
	meta = core.FrontMatter{
		Title:   flatten(meta.Title),
		Date:    flatten(meta.Date),
		Excerpt: flatten(meta.Excerpt),
	}
	if meta == (core.FrontMatter{}) {
		return body, nil
	}

	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	buf.WriteString(Delimiter + "\n")
	buf.WriteString(body)
	return buf.String(), nil
}

// flatten collapses every whitespace run to a single space and drops the
// characters yaml.v3 would only write as escapes.
func flatten(v string) string {
	v = strings.Join(strings.Fields(v), " ")
	v = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, v)
	return cleanValue(v)
}
