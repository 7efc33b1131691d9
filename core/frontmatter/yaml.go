package frontmatter

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Decode parses the front-matter block of content as YAML and returns every
// key it holds, including the ones Extract does not recognize. Content
// without front matter yields an empty map.
func Decode(content string) (map[string]any, error) {
	meta := map[string]any{}
	if _, err := frontmatter.Parse(strings.NewReader(content), &meta); err != nil {
		return map[string]any{}, fmt.Errorf("decode front matter: %w", err)
	}
	return meta, nil
}
