// Package frontmatter splits a post into its metadata block and body.
//
// The block is recognized only when the very first line is "---" and ends
// at the next "---" line. Recognized keys are title, date and excerpt;
// anything else inside the block is ignored. Extraction never fails.
package frontmatter

import (
	"strings"

	"github.com/gaurav-prasanna/folio/core"
)

// Delimiter marks the start and end of a front-matter block.
const Delimiter = "---"

type state int

const (
	stateBody   state = iota // no front matter, every line is body
	stateOpen                // inside the block, collecting keys
	stateClosed              // block closed, later lines are body
)

// Extract returns the front matter and the body lines of content.
// Body lines are kept as they appear in the source; trimming is only used
// for delimiter and key recognition. Once the block has closed, further
// "---" lines are skipped rather than kept as body.
//
// A block that is opened but never closed yields no body at all.
func Extract(content string) (core.FrontMatter, []string) {
	var meta core.FrontMatter
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return meta, lines
	}

	st := stateOpen
	var body []string
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == Delimiter {
			// Rules after the block are dropped along with the delimiters.
			st = stateClosed
			continue
		}
		if st == stateClosed {
			body = append(body, raw)
			continue
		}
		applyKey(&meta, line)
	}

	return meta, body
}

// applyKey stores a recognized "key: value" line into meta.
func applyKey(meta *core.FrontMatter, line string) {
	switch {
	case strings.HasPrefix(line, "title:"):
		meta.Title = cleanValue(line[len("title:"):])
	case strings.HasPrefix(line, "date:"):
		meta.Date = cleanValue(line[len("date:"):])
	case strings.HasPrefix(line, "excerpt:"):
		meta.Excerpt = cleanValue(line[len("excerpt:"):])
	}
}

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// cleanValue trims v and removes every quote character from it.
func cleanValue(v string) string {
	return quoteStripper.Replace(strings.TrimSpace(v))
}

// Title scans the front matter of content for a title only.
func Title(content string) string {
	meta, _ := Extract(content)
	return meta.Title
}
