package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFramebuffer_TogglePixel(t *testing.T) {
	fb := NewFramebuffer()

	assert.True(t, fb.TogglePixel(5, 7))
	assert.True(t, fb.Pixel(5, 7))
	assert.False(t, fb.TogglePixel(5, 7))
	assert.False(t, fb.Pixel(5, 7))
}

func TestFramebuffer_Wraps(t *testing.T) {
	fb := NewFramebuffer()

	assert.True(t, fb.TogglePixel(ScreenWidth+1, ScreenHeight+2))
	assert.True(t, fb.Pixel(1, 2))
	assert.True(t, fb.TogglePixel(-1, -1))
	assert.True(t, fb.Pixel(ScreenWidth-1, ScreenHeight-1))

	pixels := fb.Pixels()
	assert.Equal(t, uint8(1), pixels[1][2])
	assert.Equal(t, uint8(1), pixels[ScreenWidth-1][ScreenHeight-1])
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := NewFramebuffer()
	for x := 0; x < ScreenWidth; x += 3 {
		fb.TogglePixel(x, x%ScreenHeight)
	}

	fb.Clear()
	assert.Equal(t, [ScreenWidth][ScreenHeight]uint8{}, fb.Pixels())
}
