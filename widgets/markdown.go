package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
)

// MarkdownView renders markdown as styled terminal text with
// virtualized scrolling. Paragraphs re-wrap to the widget width on
// layout.
type MarkdownView struct {
	lineView
	source    []byte
	blocks    []mdBlock
	wrapWidth int

	headingStyle backend.Style
	codeStyle    backend.Style
	emphStyle    backend.Style
	strongStyle  backend.Style
	linkStyle    backend.Style
	quoteStyle   backend.Style
}

// mdBlock is one block-level element before wrapping.
type mdBlock struct {
	spans    styledLine
	indent   string
	noWrap   bool // code blocks keep their own line breaks
	preLines []styledLine
	blank    bool // renders as an empty separator line
}

// NewMarkdownView creates a markdown viewer.
func NewMarkdownView(source string) *MarkdownView {
	v := &MarkdownView{
		source:       []byte(source),
		headingStyle: backend.DefaultStyle().Bold(true),
		codeStyle:    backend.DefaultStyle().Dim(true),
		emphStyle:    backend.DefaultStyle().Italic(true),
		strongStyle:  backend.DefaultStyle().Bold(true),
		linkStyle:    backend.DefaultStyle().Underline(true),
		quoteStyle:   backend.DefaultStyle().Dim(true),
	}
	v.init()
	v.parse()
	return v
}

// SetSource replaces the displayed markdown.
func (v *MarkdownView) SetSource(source string) {
	if v == nil {
		return
	}
	v.source = []byte(source)
	v.parse()
	v.wrapWidth = 0 // force re-wrap on next layout
	v.Invalidate()
}

// Layout re-wraps the blocks when the width changed.
func (v *MarkdownView) Layout(bounds runtime.Rect) {
	v.lineView.Layout(bounds)
	width := bounds.Width
	if v.scrollbar && width > 1 {
		width--
	}
	if width > 0 && width != v.wrapWidth {
		v.wrapWidth = width
		v.setLines(v.wrap(width))
	}
}

// parse walks the goldmark AST into block-level styled runs.
func (v *MarkdownView) parse() {
	v.blocks = nil
	doc := goldmark.New().Parser().Parse(gtext.NewReader(v.source))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			prefix := strings.Repeat("#", node.Level) + " "
			spans := append(styledLine{{text: prefix, style: v.headingStyle}},
				v.inlineSpans(node, v.headingStyle)...)
			v.appendBlock(mdBlock{spans: spans})
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if _, inItem := node.Parent().(*ast.ListItem); inItem {
				return ast.WalkContinue, nil
			}
			v.appendBlock(mdBlock{spans: v.inlineSpans(node, backend.DefaultStyle())})
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			marker := "• "
			spans := v.listItemSpans(node)
			v.appendBlock(mdBlock{
				spans:  append(styledLine{{text: marker, style: backend.DefaultStyle()}}, spans...),
				indent: "  ",
			})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			v.appendCode(node.Lines())
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			v.appendCode(node.Lines())
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		case *ast.Blockquote:
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				spans := append(styledLine{{text: "│ ", style: v.quoteStyle}},
					v.inlineSpans(child, v.quoteStyle)...)
				v.appendBlock(mdBlock{spans: spans, indent: "│ "})
			}
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			v.appendBlock(mdBlock{noWrap: true, preLines: []styledLine{
				{{text: strings.Repeat("─", 8), style: v.quoteStyle}},
			}})
			v.appendBlock(mdBlock{blank: true})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	// Drop a trailing separator.
	if n := len(v.blocks); n > 0 && v.blocks[n-1].blank {
		v.blocks = v.blocks[:n-1]
	}
}

func (v *MarkdownView) appendBlock(b mdBlock) {
	v.blocks = append(v.blocks, b)
}

func (v *MarkdownView) appendCode(lines *gtext.Segments) {
	block := mdBlock{noWrap: true}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		text := strings.TrimRight(string(seg.Value(v.source)), "\n")
		text = strings.ReplaceAll(text, "\t", "    ")
		block.preLines = append(block.preLines, styledLine{
			{text: "  " + text, style: v.codeStyle},
		})
	}
	v.appendBlock(block)
}

func (v *MarkdownView) listItemSpans(item *ast.ListItem) styledLine {
	var spans styledLine
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		spans = append(spans, v.inlineSpans(child, backend.DefaultStyle())...)
	}
	return spans
}

// inlineSpans flattens a node's inline children into styled spans.
func (v *MarkdownView) inlineSpans(parent ast.Node, base backend.Style) styledLine {
	var spans styledLine
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			text := string(node.Segment.Value(v.source))
			spans = append(spans, span{text: text, style: base})
			if node.SoftLineBreak() || node.HardLineBreak() {
				spans = append(spans, span{text: " ", style: base})
			}
		case *ast.Emphasis:
			style := v.emphStyle
			if node.Level >= 2 {
				style = v.strongStyle
			}
			spans = append(spans, v.inlineSpans(node, style)...)
		case *ast.CodeSpan:
			spans = append(spans, v.inlineSpans(node, v.codeStyle)...)
		case *ast.Link:
			spans = append(spans, v.inlineSpans(node, v.linkStyle)...)
		case *ast.AutoLink:
			spans = append(spans, span{
				text:  string(node.URL(v.source)),
				style: v.linkStyle,
			})
		default:
			spans = append(spans, v.inlineSpans(child, base)...)
		}
	}
	return spans
}

// wrap turns blocks into display lines no wider than width.
func (v *MarkdownView) wrap(width int) []styledLine {
	var lines []styledLine
	for _, block := range v.blocks {
		switch {
		case block.blank:
			lines = append(lines, nil)
		case block.noWrap:
			lines = append(lines, block.preLines...)
		default:
			lines = append(lines, wrapSpans(block.spans, block.indent, width)...)
		}
	}
	return lines
}

// wrapSpans greedily word-wraps spans; continuation lines get the
// indent prefix.
func wrapSpans(spans styledLine, indent string, width int) []styledLine {
	if width <= 0 {
		return []styledLine{spans}
	}
	var lines []styledLine
	var current styledLine
	col := 0
	first := true

	flush := func() {
		lines = append(lines, current)
		current = nil
		col = 0
		first = false
	}
	prefix := func() {
		if !first && indent != "" && len(current) == 0 {
			current = append(current, span{text: indent, style: backend.DefaultStyle()})
			col = runewidth.StringWidth(indent)
		}
	}

	for _, sp := range spans {
		for _, word := range splitWords(sp.text) {
			w := runewidth.StringWidth(word)
			if col > 0 && col+w > width {
				flush()
			}
			prefix()
			if strings.TrimSpace(word) == "" && col == 0 {
				continue // no leading spaces on wrapped lines
			}
			current = append(current, span{text: word, style: sp.style})
			col += w
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// splitWords splits text into words and the spaces between them,
// preserving both.
func splitWords(text string) []string {
	var parts []string
	start := 0
	inSpace := false
	for i, r := range text {
		isSpace := r == ' '
		if i > 0 && isSpace != inSpace {
			parts = append(parts, text[start:i])
			start = i
		}
		inSpace = isSpace
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

var _ runtime.Widget = (*MarkdownView)(nil)
