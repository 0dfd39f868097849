//go:build tinygo && baremetal && !picocalc

package hal

// New returns a Pico 2 (RP2350) HAL implementation. A bare Pico has no
// display, so Display().Framebuffer() is nil.
func New() HAL {
	return newBoardHAL()
}
