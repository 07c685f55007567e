package backend

// Color is an RGB color. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	valid   bool
}

// RGB creates a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, valid: true}
}

// IsSet reports whether the color overrides the terminal default.
func (c Color) IsSet() bool {
	return c.valid
}

// Style describes how a cell is rendered.
// Styles are value types and compare with ==.
type Style struct {
	fg        Color
	bg        Color
	bold      bool
	italic    bool
	underline bool
	reverse   bool
	dim       bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a copy with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Bold returns a copy with bold set.
func (s Style) Bold(on bool) Style {
	s.bold = on
	return s
}

// Italic returns a copy with italic set.
func (s Style) Italic(on bool) Style {
	s.italic = on
	return s
}

// Underline returns a copy with underline set.
func (s Style) Underline(on bool) Style {
	s.underline = on
	return s
}

// Reverse returns a copy with reverse video set.
func (s Style) Reverse(on bool) Style {
	s.reverse = on
	return s
}

// Dim returns a copy with dim set.
func (s Style) Dim(on bool) Style {
	s.dim = on
	return s
}

// ForegroundColor returns the foreground color.
func (s Style) ForegroundColor() Color { return s.fg }

// BackgroundColor returns the background color.
func (s Style) BackgroundColor() Color { return s.bg }

// IsBold reports bold.
func (s Style) IsBold() bool { return s.bold }

// IsItalic reports italic.
func (s Style) IsItalic() bool { return s.italic }

// IsUnderline reports underline.
func (s Style) IsUnderline() bool { return s.underline }

// IsReverse reports reverse video.
func (s Style) IsReverse() bool { return s.reverse }

// IsDim reports dim.
func (s Style) IsDim() bool { return s.dim }
