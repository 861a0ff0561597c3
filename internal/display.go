package internal

// Display is the surface the VM draws sprites on
type Display interface {
	// TogglePixel flips the pixel at (x, y), wrapping both coordinates onto
	// the screen, and reports whether the pixel is now set.
	TogglePixel(x, y int) bool
	Clear()
	Present()
}

// Framebuffer is a 64 px x 32 px monochrome display held in memory.
// Host frontends embed it and provide their own Present.
type Framebuffer struct {
	pixels [ScreenWidth][ScreenHeight]uint8
}

// NewFramebuffer returns a cleared framebuffer
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// TogglePixel XORs the pixel at the wrapped coordinate and returns its new state
func (fb *Framebuffer) TogglePixel(x, y int) bool {
	x, y = wrap(x, ScreenWidth), wrap(y, ScreenHeight)
	fb.pixels[x][y] ^= 1
	return fb.pixels[x][y] == 1
}

// Clear resets all pixels to a value of 0
func (fb *Framebuffer) Clear() {
	fb.pixels = [ScreenWidth][ScreenHeight]uint8{}
}

// Present does nothing for a bare framebuffer
func (fb *Framebuffer) Present() {}

// Pixel returns whether the pixel at the wrapped coordinate is set
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.pixels[wrap(x, ScreenWidth)][wrap(y, ScreenHeight)] == 1
}

// Pixels returns a copy of the pixel grid
func (fb *Framebuffer) Pixels() [ScreenWidth][ScreenHeight]uint8 {
	return fb.pixels
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
