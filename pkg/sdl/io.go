package sdl

import (
	"fmt"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// IO is the SDL input/output layer for the VM. It is the VM's display and
// keypad at the same time.
type IO struct {
	*internal.Framebuffer
	*internal.KeyState

	window    *sdl.Window
	surface   *sdl.Surface
	pixelSize int32
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(pixelSize int) *IO {
	return &IO{
		Framebuffer: internal.NewFramebuffer(),
		KeyState:    internal.NewKeyState(),
		pixelSize:   int32(pixelSize),
	}
}

// SetupWindow initialises and sets up the main SDL window
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*io.pixelSize, internal.ScreenHeight*io.pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		io.Destroy()
		return fmt.Errorf("getting window surface: %w", err)
	}
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		io.Destroy()
		return fmt.Errorf("clearing window surface: %w", err)
	}
	return io.window.UpdateSurface()
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.window != nil {
		_ = io.window.Destroy()
		io.window = nil
	}
	sdl.Quit()
}

// Poll drains the SDL event queue into the keypad state and reports whether
// the window was closed or escape was pressed
func (io *IO) Poll() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			keycode := t.Keysym.Scancode
			switch t.GetType() {
			case sdl.KEYDOWN:
				if keycode == sdl.SCANCODE_ESCAPE {
					quit = true
					continue
				}
				if code, ok := keymap(keycode); ok {
					io.Press(code)
				}
			case sdl.KEYUP:
				if code, ok := keymap(keycode); ok {
					io.Release(code)
				}
			}
		case *sdl.QuitEvent:
			quit = true
		}
	}
	return quit
}

// Present draws the current framebuffer on screen
func (io *IO) Present() {
	if io.surface == nil {
		return
	}
	_ = io.surface.FillRect(nil, screenColor)
	pixels := io.Pixels()
	for w := int32(0); w < internal.ScreenWidth; w++ {
		for h := int32(0); h < internal.ScreenHeight; h++ {
			if pixels[w][h] == 1 {
				rect := &sdl.Rect{X: w * io.pixelSize, Y: h * io.pixelSize, W: io.pixelSize, H: io.pixelSize}
				_ = io.surface.FillRect(rect, spriteColor)
			}
		}
	}
	_ = io.window.UpdateSurface()
}

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8,
// by position so other keyboard layouts get the same keypad shape
func keymap(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	default:
		return 0, false
	}
}
