package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/porthole/terminal"
)

// TcellBackend renders through a tcell screen.
type TcellBackend struct {
	screen      tcell.Screen
	lastButtons tcell.ButtonMask
}

// NewTcellBackend creates a backend over a new tcell screen.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return &TcellBackend{screen: screen}, nil
}

// NewTcellBackendFor wraps an existing tcell screen, used by tests
// with a simulation screen.
func NewTcellBackendFor(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// Init initializes the screen and enables mouse and paste reporting.
func (t *TcellBackend) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (t *TcellBackend) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *TcellBackend) Size() (int, int) {
	return t.screen.Size()
}

// SetContent writes a cell.
func (t *TcellBackend) SetContent(x, y int, r rune, comb []rune, style Style) {
	t.screen.SetContent(x, y, r, comb, toTcellStyle(style))
}

// SetRow writes a run of cells on one row.
func (t *TcellBackend) SetRow(y int, startX int, cells []Cell) {
	for i, cell := range cells {
		t.screen.SetContent(startX+i, y, cell.Rune, nil, toTcellStyle(cell.Style))
	}
}

// SetRect writes a row-major rectangle of cells.
func (t *TcellBackend) SetRect(x, y, width, height int, cells []Cell) {
	if width <= 0 || height <= 0 {
		return
	}
	for row := 0; row < height; row++ {
		rowStart := row * width
		t.SetRow(y+row, x, cells[rowStart:rowStart+width])
	}
}

// Show flushes pending updates to the terminal.
func (t *TcellBackend) Show() {
	t.screen.Show()
}

// HideCursor hides the hardware cursor.
func (t *TcellBackend) HideCursor() {
	t.screen.HideCursor()
}

// PollEvent blocks for the next input event.
// Returns nil once the screen is finalized.
func (t *TcellBackend) PollEvent() terminal.Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if translated := t.translate(ev); translated != nil {
			return translated
		}
	}
}

func (t *TcellBackend) translate(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventPaste:
		// Paste content arrives as key events between start/end markers;
		// only the markers are surfaced here.
		return nil
	default:
		return nil
	}
}

func translateKey(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	out := terminal.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	switch e.Key() {
	case tcell.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = e.Rune()
	case tcell.KeyEnter:
		out.Key = terminal.KeyEnter
	case tcell.KeyEscape:
		out.Key = terminal.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = terminal.KeyBackspace
	case tcell.KeyTab:
		out.Key = terminal.KeyTab
	case tcell.KeyBacktab:
		out.Key = terminal.KeyBacktab
	case tcell.KeyDelete:
		out.Key = terminal.KeyDelete
	case tcell.KeyInsert:
		out.Key = terminal.KeyInsert
	case tcell.KeyUp:
		out.Key = terminal.KeyUp
	case tcell.KeyDown:
		out.Key = terminal.KeyDown
	case tcell.KeyLeft:
		out.Key = terminal.KeyLeft
	case tcell.KeyRight:
		out.Key = terminal.KeyRight
	case tcell.KeyHome:
		out.Key = terminal.KeyHome
	case tcell.KeyEnd:
		out.Key = terminal.KeyEnd
	case tcell.KeyPgUp:
		out.Key = terminal.KeyPageUp
	case tcell.KeyPgDn:
		out.Key = terminal.KeyPageDown
	case tcell.KeyF1:
		out.Key = terminal.KeyF1
	case tcell.KeyF2:
		out.Key = terminal.KeyF2
	case tcell.KeyF3:
		out.Key = terminal.KeyF3
	case tcell.KeyF4:
		out.Key = terminal.KeyF4
	case tcell.KeyF5:
		out.Key = terminal.KeyF5
	case tcell.KeyF6:
		out.Key = terminal.KeyF6
	case tcell.KeyF7:
		out.Key = terminal.KeyF7
	case tcell.KeyF8:
		out.Key = terminal.KeyF8
	case tcell.KeyF9:
		out.Key = terminal.KeyF9
	case tcell.KeyF10:
		out.Key = terminal.KeyF10
	case tcell.KeyF11:
		out.Key = terminal.KeyF11
	case tcell.KeyF12:
		out.Key = terminal.KeyF12
	case tcell.KeyCtrlC:
		out.Key = terminal.KeyCtrlC
		out.Ctrl = true
	case tcell.KeyCtrlD:
		out.Key = terminal.KeyCtrlD
		out.Ctrl = true
	default:
		return nil
	}
	return out
}

func (t *TcellBackend) translateMouse(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button = terminal.MouseWheelUp
		out.Action = terminal.MousePress
		return out
	case buttons&tcell.WheelDown != 0:
		out.Button = terminal.MouseWheelDown
		out.Action = terminal.MousePress
		return out
	case buttons&tcell.WheelLeft != 0:
		out.Button = terminal.MouseWheelLeft
		out.Action = terminal.MousePress
		return out
	case buttons&tcell.WheelRight != 0:
		out.Button = terminal.MouseWheelRight
		out.Action = terminal.MousePress
		return out
	}

	prev := t.lastButtons
	t.lastButtons = buttons

	for _, mapping := range []struct {
		mask   tcell.ButtonMask
		button terminal.MouseButton
	}{
		{tcell.Button1, terminal.MouseLeft},
		{tcell.Button2, terminal.MouseMiddle},
		{tcell.Button3, terminal.MouseRight},
	} {
		now := buttons&mapping.mask != 0
		was := prev&mapping.mask != 0
		if now && !was {
			out.Button = mapping.button
			out.Action = terminal.MousePress
			return out
		}
		if !now && was {
			out.Button = mapping.button
			out.Action = terminal.MouseRelease
			return out
		}
		if now && was {
			out.Button = mapping.button
			out.Action = terminal.MouseMove
			return out
		}
	}

	out.Button = terminal.MouseNone
	out.Action = terminal.MouseMove
	return out
}

func toTcellStyle(style Style) tcell.Style {
	out := tcell.StyleDefault
	if fg := style.ForegroundColor(); fg.IsSet() {
		out = out.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if bg := style.BackgroundColor(); bg.IsSet() {
		out = out.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	if style.IsBold() {
		out = out.Bold(true)
	}
	if style.IsItalic() {
		out = out.Italic(true)
	}
	if style.IsUnderline() {
		out = out.Underline(true)
	}
	if style.IsReverse() {
		out = out.Reverse(true)
	}
	if style.IsDim() {
		out = out.Dim(true)
	}
	return out
}

var (
	_ Backend    = (*TcellBackend)(nil)
	_ RowWriter  = (*TcellBackend)(nil)
	_ RectWriter = (*TcellBackend)(nil)
)
