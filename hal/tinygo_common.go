//go:build tinygo && baremetal

package hal

import "machine"

// boardHAL is shared by the microcontroller targets. fb is nil when the
// board has no panel or the panel failed to initialize.
type boardHAL struct {
	logger *uartLogger
	fb     Framebuffer
	frames *TickerFrames
}

func (h *boardHAL) Logger() Logger   { return h.logger }
func (h *boardHAL) Display() Display { return boardDisplay{fb: h.fb} }
func (h *boardHAL) Frames() Frames   { return h.frames }

type boardDisplay struct {
	fb Framebuffer
}

func (d boardDisplay) Framebuffer() Framebuffer { return d.fb }
func (d boardDisplay) PixelRatio() float64      { return 1 }

// newBoardHAL configures UART0 on GP0 (TX) / GP1 (RX), 115200 8N1, and a
// 30 Hz frame ticker.
func newBoardHAL() *boardHAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	frames, err := NewTickerFrames(30, 0)
	if err != nil {
		panic(err)
	}
	return &boardHAL{
		logger: &uartLogger{uart: uart},
		frames: frames,
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
