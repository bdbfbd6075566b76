package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/render"
)

// Action is a host-level command decoded from a key press
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMute
	ActionToggleHUD
	ActionTogglePause
)

// HitTester resolves the element under a surface position, nil when nothing interactive is there
type HitTester interface {
	HitTest(x, y float64) events.Node
}

// Screen hosts effects in a terminal: tcell input becomes bus events, the cell buffer is flushed to tcell
type Screen struct {
	screen tcell.Screen
	buf    *render.CellBuffer
	bg     render.Color
	hits   HitTester

	status   string // Bottom-row overlay written by Flush, empty for none
	statusFg render.Color
}

// Open creates and initializes the terminal screen with mouse motion reporting
func Open(bg render.Color) (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(sc, bg), nil
}

// New wraps an initialized tcell screen
func New(sc tcell.Screen, bg render.Color) *Screen {
	sc.EnableMouse(tcell.MouseMotionEvents)
	sc.HideCursor()
	sc.SetStyle(tcell.StyleDefault.Background(toTcell(bg)))

	cols, rows := sc.Size()
	return &Screen{
		screen: sc,
		buf:    render.NewCellBuffer(cols, rows, bg),
		bg:     bg,
	}
}

// SetHitTester installs the pointer-over resolver, nil disables hover
func (s *Screen) SetHitTester(h HitTester) {
	s.hits = h
}

// Buffer returns the cell surface effects composite into
func (s *Screen) Buffer() *render.CellBuffer {
	return s.buf
}

// Size returns the viewport in surface units
func (s *Screen) Size() (w, h float64) {
	return s.buf.Size()
}

// PollEvent blocks for the next terminal event, nil after Fini
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Dispatch translates one terminal event into bus events and returns any host action
// Must run on the runtime goroutine
func (s *Screen) Dispatch(ev tcell.Event, bus *events.Bus) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyAction(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := CellCenter(col, row)
		if bus == nil {
			return ActionNone
		}
		bus.EmitPointerMove(x, y)
		if s.hits != nil {
			bus.EmitPointerOver(s.hits.HitTest(x, y))
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.buf.Resize(cols, rows)
		s.screen.Sync()
		if bus != nil {
			w, h := s.buf.Size()
			bus.EmitResize(w, h)
		}
	}
	return ActionNone
}

func keyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'm':
			return ActionToggleMute
		case 'h':
			return ActionToggleHUD
		case 'p', ' ':
			return ActionTogglePause
		}
	}
	return ActionNone
}

// Flush copies the cell buffer and the status overlay to the terminal and shows it once
func (s *Screen) Flush() {
	cols, rows := s.buf.Grid()
	for row := 0; row < rows; row++ {
		skip := false
		for col := 0; col < cols; col++ {
			c := s.buf.Cell(col, row)
			if skip {
				// Trailing half of a wide rune, tcell draws it with the lead cell
				skip = false
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			skip = runewidth.RuneWidth(r) == 2
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
			s.screen.SetContent(col, row, r, nil, style)
		}
	}
	s.drawStatus()
	s.screen.Show()
}

// SetStatus sets the one-line overlay Flush writes on the bottom row, empty text removes it
func (s *Screen) SetStatus(text string, fg render.Color) {
	s.status = text
	s.statusFg = fg
}

func (s *Screen) drawStatus() {
	cols, rows := s.buf.Grid()
	if s.status == "" || rows == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(s.statusFg)).Background(toTcell(s.bg))
	col := 0
	for _, r := range s.status {
		if col >= cols {
			break
		}
		s.screen.SetContent(col, rows-1, r, nil, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

// Fini restores the terminal, PollEvent returns nil afterwards
func (s *Screen) Fini() {
	s.screen.Fini()
}

// CellCenter maps a cell to the surface position of its center
func CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * parameter.CellWidth, (float64(row) + 0.5) * parameter.CellHeight
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
