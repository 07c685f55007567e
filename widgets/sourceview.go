package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/window"
)

// SourceView displays syntax-highlighted source code with virtualized
// scrolling. Only the visible lines are drawn, so megabyte files stay
// cheap.
type SourceView struct {
	lineView
	source string
	lang   string
	theme  string
}

// NewSourceView creates a source viewer for code in the given
// language. An empty or unknown language falls back to plain text.
func NewSourceView(source, lang string) *SourceView {
	v := &SourceView{
		source: source,
		lang:   lang,
		theme:  "monokai",
	}
	v.init()
	v.rebuild()
	return v
}

// SetSource replaces the displayed code.
func (v *SourceView) SetSource(source, lang string) {
	if v == nil {
		return
	}
	v.source = source
	v.lang = lang
	v.rebuild()
	v.Invalidate()
}

// SetTheme sets the chroma style name used for highlighting.
func (v *SourceView) SetTheme(name string) {
	if v == nil {
		return
	}
	v.theme = name
	v.rebuild()
	v.Invalidate()
}

// ScrollToLine scrolls a source line (zero-based) to the alignment.
func (v *SourceView) ScrollToLine(line int, align window.Alignment) {
	v.lineView.ScrollToLine(line, align)
}

func (v *SourceView) rebuild() {
	lexer := lexers.Get(v.lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(v.theme)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, v.source)
	if err != nil {
		v.setLines(plainLines(v.source))
		return
	}

	var lines []styledLine
	var current styledLine
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokenStyle := toBackendStyle(style.Get(token.Type))
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = nil
			}
			if part != "" {
				part = strings.ReplaceAll(part, "\t", "    ")
				current = append(current, span{text: part, style: tokenStyle})
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	v.setLines(lines)
}

// toBackendStyle maps a chroma style entry onto a cell style.
func toBackendStyle(entry chroma.StyleEntry) backend.Style {
	s := backend.DefaultStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(backend.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Background.IsSet() {
		s = s.Background(backend.RGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

func plainLines(source string) []styledLine {
	raw := strings.Split(source, "\n")
	lines := make([]styledLine, len(raw))
	for i, text := range raw {
		if text != "" {
			lines[i] = styledLine{{text: text, style: backend.DefaultStyle()}}
		}
	}
	return lines
}

var _ runtime.Widget = (*SourceView)(nil)
