// Package termbox renders the VM inside a terminal. Terminals only report key
// presses, so every pressed key is held for a few polls before it is released.
package termbox

import (
	"fmt"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/nsf/termbox-go"
)

// HoldPolls is how many polls a key stays held after its last press
const HoldPolls = 4

const eventBuffer = 64

// IO is the terminal input/output layer for the VM
type IO struct {
	*internal.Framebuffer
	*holdKeys

	events  chan termbox.Event
	started bool
}

// NewIO returns a new I/O instance for the terminal frontend
func NewIO() *IO {
	return &IO{
		Framebuffer: internal.NewFramebuffer(),
		holdKeys:    newHoldKeys(HoldPolls),
		events:      make(chan termbox.Event, eventBuffer),
	}
}

// Setup takes over the terminal and starts reading its events
func (io *IO) Setup() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		termbox.Close()
		return fmt.Errorf("clearing terminal: %w", err)
	}
	io.started = true

	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				close(io.events)
				return
			}
			select {
			case io.events <- ev:
			default: // dropped, the VM is not polling
			}
		}
	}()
	return nil
}

// Destroy restores the terminal. It does nothing if Setup did not succeed.
func (io *IO) Destroy() {
	if !io.started {
		return
	}
	io.started = false
	termbox.Interrupt()
	termbox.Close()
}

// Poll drains the pending terminal events without blocking and reports
// whether escape or ctrl-c was pressed
func (io *IO) Poll() bool {
	io.tick()
	for {
		select {
		case ev, ok := <-io.events:
			if !ok {
				return true
			}
			if io.handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (io *IO) handle(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			return true
		}
		if code, ok := internal.KeyForRune(ev.Ch); ok {
			io.press(code)
		}
	case termbox.EventError:
		return true
	}
	return false
}

// Present draws the current framebuffer, one cell per pixel
func (io *IO) Present() {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	pixels := io.Pixels()
	for x := 0; x < internal.ScreenWidth; x++ {
		for y := 0; y < internal.ScreenHeight; y++ {
			if pixels[x][y] == 1 {
				termbox.SetCell(x, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
			}
		}
	}
	_ = termbox.Flush()
}

// holdKeys emulates key releases for hosts that only report presses
type holdKeys struct {
	*internal.KeyState

	hold      int
	remaining [internal.NumKeys]int
}

func newHoldKeys(hold int) *holdKeys {
	return &holdKeys{
		KeyState: internal.NewKeyState(),
		hold:     hold,
	}
}

func (h *holdKeys) press(code uint8) {
	if code >= internal.NumKeys {
		return
	}
	h.Press(code)
	h.remaining[code] = h.hold
}

// tick ages every held key by one poll and releases the expired ones
func (h *holdKeys) tick() {
	for code := range h.remaining {
		if h.remaining[code] == 0 {
			continue
		}
		h.remaining[code]--
		if h.remaining[code] == 0 {
			h.Release(uint8(code))
		}
	}
}
