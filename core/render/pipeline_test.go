package render

import "testing"

func TestFullPostInlineFormatting(t *testing.T) {
	got := FullPost("**bold** and *italic* and `code`")
	want := "<p><strong>bold</strong> and <em>italic</em> and <code>code</code></p>"
	if got != want {
		t.Fatalf("FullPost mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFullPostLink(t *testing.T) {
	got := FullPost("[Home](index.html)")
	if got != `<p><a href="index.html">Home</a></p>` {
		t.Fatalf("unexpected link rendering: %q", got)
	}
}

func TestFullPostStripsFrontMatterAndHeadings(t *testing.T) {
	input := "---\ntitle: Post\n---\n# Title\n\nFirst paragraph.\n\n## Section\n\nSecond paragraph."

	got := FullPost(input)

	want := "<h1>Title</h1><p>First paragraph.</p><h2>Section</h2><p>Second paragraph.</p>"
	if got != want {
		t.Fatalf("FullPost mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFullPostWithoutFrontMatterKeepsLeadingText(t *testing.T) {
	got := FullPost("Intro\n---\nstill body")
	if got != "<p>Intro\n---\nstill body</p>" {
		t.Fatalf("expected no stripping without a leading delimiter, got %q", got)
	}
}

func TestFullPostMixedEmphasisOrder(t *testing.T) {
	got := FullPost("***text***")
	if got != "<p><strong><em>text</strong></em></p>" {
		t.Fatalf("unexpected mixed emphasis output: %q", got)
	}
}

func TestFullPostDoesNotEscapeHTML(t *testing.T) {
	got := FullPost(`<span class="x">a < b</span>`)
	if got != `<p><span class="x">a < b</span></p>` {
		t.Fatalf("expected HTML to pass through unchanged, got %q", got)
	}
}

func TestFullPostHeadingFollowedBySingleNewline(t *testing.T) {
	got := FullPost("# T\ntext")
	if got != "<h1>T</h1>\ntext</p>" {
		t.Fatalf("unexpected heading/paragraph collision output: %q", got)
	}
}

func TestHeadingStagesOnlyMatchLineStart(t *testing.T) {
	h3, _ := StageNamed("h3")
	h1, _ := StageNamed("h1")

	if got := h3.Apply("text ### not a heading"); got != "text ### not a heading" {
		t.Fatalf("expected mid-line hashes to be left alone, got %q", got)
	}
	if got := h1.Apply("a\n# b\nc"); got != "a\n<h1>b</h1>\nc" {
		t.Fatalf("expected line-anchored heading, got %q", got)
	}
	if got := h1.Apply("#### deep"); got != "#### deep" {
		t.Fatalf("expected deeper headings untouched by h1, got %q", got)
	}
}

func TestStrongStageRunsBeforeEm(t *testing.T) {
	var strongIdx, emIdx int
	for i, st := range Stages {
		switch st.Name {
		case "strong":
			strongIdx = i
		case "em":
			emIdx = i
		}
	}
	if strongIdx >= emIdx {
		t.Fatalf("strong stage must precede em stage (strong=%d em=%d)", strongIdx, emIdx)
	}
}

func TestEmptyEmphasisPairs(t *testing.T) {
	strong, _ := StageNamed("strong")
	if got := strong.Apply("****"); got != "<strong></strong>" {
		t.Fatalf("unexpected empty strong output: %q", got)
	}
}

func TestParagraphs(t *testing.T) {
	if got := Paragraphs("a\n\nb\n\n\nc"); got != "<p>a</p><p>b</p><p>\nc</p>" {
		t.Fatalf("Paragraphs mismatch: %q", got)
	}
}

func TestCleanup(t *testing.T) {
	got := Cleanup("<p></p><p><h2>x</h2></p><p>y</p>")
	if got != "<h2>x</h2><p>y</p>" {
		t.Fatalf("Cleanup mismatch: %q", got)
	}
}

func TestStripFrontMatter(t *testing.T) {
	if got := StripFrontMatter("---\na: b\n---\nbody\n---\nmore"); got != "body\n---\nmore" {
		t.Fatalf("StripFrontMatter mismatch: %q", got)
	}
	if got := StripFrontMatter("body"); got != "body" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestStageNamedUnknown(t *testing.T) {
	if _, ok := StageNamed("tables"); ok {
		t.Fatalf("expected unknown stage lookup to fail")
	}
}

func TestFullPostLineSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading ends at line separator", "x y\u2028\n# h\u2028z", "<p>x y\u2028\n<h1>h</h1>\u2028z</p>"},
		{"heading starts after line separator", "a\u2028# b", "<p>a\u2028<h1>b</h1></p>"},
		{"heading starts after carriage return", "a\r## b", "<p>a\r<h2>b</h2></p>"},
		{"strong does not span carriage return", "**a\rb**", "<p><em></em>a\rb<em></em></p>"},
		{"code does not span paragraph separator", "`a\u2029b`", "<p>`a\u2029b`</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullPost(tt.in); got != tt.want {
				t.Fatalf("FullPost(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
