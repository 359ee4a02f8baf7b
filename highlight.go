package scrollhero

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

// DefaultStyle is the chroma style the hosts colour the editor with.
const DefaultStyle = "catppuccin-mocha"

// Segment is a run of text sharing one colour.
type Segment struct {
	Text  string
	Color Color
	Bold  bool
}

// Line is one highlighted source line.
type Line []Segment

// Highlighter tokenizes editor files for display.
type Highlighter struct {
	style *chroma.Style
	base  Color
}

// NewHighlighter resolves a chroma style by name, falling back to
// DefaultStyle.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style := styles.Get(styleName)
	return &Highlighter{
		style: style,
		base:  chromaColor(style.Get(chroma.Text).Colour, Color{R: 0.85, G: 0.85, B: 0.85, A: 1}),
	}
}

// Background returns the style's background colour.
func (h *Highlighter) Background() Color {
	return chromaColor(h.style.Get(chroma.Background).Background, Color{R: 0.07, G: 0.07, B: 0.07, A: 1})
}

// Language detects the language of a file from its name and content. It
// returns an empty string when nothing matches.
func Language(name, content string) string {
	return enry.GetLanguage(name, []byte(content))
}

// lexerFor picks a chroma lexer for the detected language, then by file
// name, then the plain-text fallback.
func lexerFor(name, content string) chroma.Lexer {
	if lang := Language(name, content); lang != "" {
		if l := lexers.Get(strings.ToLower(lang)); l != nil {
			return l
		}
	}
	if l := lexers.Match(name); l != nil {
		return l
	}
	return lexers.Fallback
}

// Highlight splits content into coloured lines. Tokenizer failures fall
// back to uncoloured lines.
func (h *Highlighter) Highlight(name, content string) []Line {
	lexer := chroma.Coalesce(lexerFor(name, content))
	it, err := lexer.Tokenise(nil, content)
	if err != nil {
		return h.plain(content)
	}

	lines := []Line{nil}
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := h.style.Get(tok.Type)
		color := chromaColor(entry.Colour, h.base)
		bold := entry.Bold == chroma.Yes
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], Segment{Text: part, Color: color, Bold: bold})
		}
	}
	return trimTrailingEmpty(lines)
}

func (h *Highlighter) plain(content string) []Line {
	var lines []Line
	for _, l := range strings.Split(content, "\n") {
		if l == "" {
			lines = append(lines, nil)
			continue
		}
		lines = append(lines, Line{{Text: l, Color: h.base}})
	}
	return trimTrailingEmpty(lines)
}

// trimTrailingEmpty drops the empty line produced by a final newline.
func trimTrailingEmpty(lines []Line) []Line {
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		return lines[:n-1]
	}
	return lines
}

func chromaColor(c chroma.Colour, fallback Color) Color {
	if !c.IsSet() {
		return fallback
	}
	return Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
		A: 1,
	}
}
