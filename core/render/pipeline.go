// Package render turns post documents into HTML fragments and export
// formats. The full-post renderer is a fixed, ordered pipeline of string
// substitutions rather than a markdown parser: headings, bold, italic,
// inline code, links and paragraph breaks, nothing more.
//
// The output is never escaped. Posts are trusted static content and any
// literal HTML in them passes through unchanged.
package render

import (
	"regexp"
	"strings"
)

// Stage is one step of the full-post pipeline.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Pipeline applies its stages in order, each to the output of the previous one.
type Pipeline []Stage

// Run applies every stage to s.
func (p Pipeline) Run(s string) string {
	for _, st := range p {
		s = st.Apply(s)
	}
	return s
}

// A line ends at \n, \r, U+2028 or U+2029. Go's (?m)^ and . only treat \n
// as a terminator, so the line-sensitive patterns spell the set out.
const (
	lineStart = `(?m)(^|[\r\x{2028}\x{2029}])`
	lineText  = `[^\n\r\x{2028}\x{2029}]`
)

var (
	frontMatterRegex  = regexp.MustCompile(`\A---[\s\S]*?---\n`)
	h3Regex           = regexp.MustCompile(lineStart + `### (` + lineText + `*)`)
	h2Regex           = regexp.MustCompile(lineStart + `## (` + lineText + `*)`)
	h1Regex           = regexp.MustCompile(lineStart + `# (` + lineText + `*)`)
	strongRegex       = regexp.MustCompile(`\*\*(` + lineText + `*?)\*\*`)
	emRegex           = regexp.MustCompile(`\*(` + lineText + `*?)\*`)
	codeRegex         = regexp.MustCompile("`(" + lineText + "*?)`")
	mdLinkRegex       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	openHeadingRegex  = regexp.MustCompile(`<p>(<h[1-6]>)`)
	closeHeadingRegex = regexp.MustCompile(`(</h[1-6]>)</p>`)
)

func replacer(re *regexp.Regexp, tmpl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, tmpl)
	}
}

// StripFrontMatter removes a leading "---" ... "---\n" block. Text that does
// not start with "---" is returned unchanged.
func StripFrontMatter(s string) string {
	return frontMatterRegex.ReplaceAllLiteralString(s, "")
}

// Paragraphs turns every blank-line break into a paragraph boundary and
// wraps the whole text in a single paragraph.
func Paragraphs(s string) string {
	return "<p>" + strings.ReplaceAll(s, "\n\n", "</p><p>") + "</p>"
}

// Cleanup removes the empty and misplaced paragraph tags Paragraphs leaves
// around headings.
func Cleanup(s string) string {
	s = strings.ReplaceAll(s, "<p></p>", "")
	s = openHeadingRegex.ReplaceAllString(s, "${1}")
	return closeHeadingRegex.ReplaceAllString(s, "${1}")
}

// Stages is the full-post pipeline. Order matters: every stage sees the
// output of the previous one.
//
// Invariant: "strong" runs before "em". Single-asterisk matching would
// otherwise split every "**" pair. Mixed runs such as "***x***" still come
// out as "<strong><em>x</strong></em>"; that output is kept as is.
var Stages = Pipeline{
	{Name: "strip-front-matter", Apply: StripFrontMatter},
	{Name: "h3", Apply: replacer(h3Regex, "${1}<h3>${2}</h3>")},
	{Name: "h2", Apply: replacer(h2Regex, "${1}<h2>${2}</h2>")},
	{Name: "h1", Apply: replacer(h1Regex, "${1}<h1>${2}</h1>")},
	{Name: "strong", Apply: replacer(strongRegex, "<strong>${1}</strong>")},
	{Name: "em", Apply: replacer(emRegex, "<em>${1}</em>")},
	{Name: "code", Apply: replacer(codeRegex, "<code>${1}</code>")},
	{Name: "link", Apply: replacer(mdLinkRegex, `<a href="${2}">${1}</a>`)},
	{Name: "paragraphs", Apply: Paragraphs},
	{Name: "cleanup", Apply: Cleanup},
}

// FullPost renders a raw document, front matter included, into the HTML
// fragment shown on the post page.
func FullPost(content string) string {
	return Stages.Run(content)
}

// StageNamed returns the named stage of the full-post pipeline.
func StageNamed(name string) (Stage, bool) {
	for _, st := range Stages {
		if st.Name == name {
			return st, true
		}
	}
	return Stage{}, false
}
