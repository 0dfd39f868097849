//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488 command set used by the PicoCalc panel.
const (
	ilSleepOut   = 0x11
	ilInvertOn   = 0x21
	ilDisplayOn  = 0x29
	ilColumnAddr = 0x2A
	ilPageAddr   = 0x2B
	ilMemWrite   = 0x2C
	ilMADCTL     = 0x36
	ilPixelFmt   = 0x3A
	ilFrameRate  = 0xB1
	ilDispFunc   = 0xB6
	ilPower1     = 0xC0
	ilPower2     = 0xC1
	ilVCOM       = 0xC5
)

// MADCTL bits for the PicoCalc wiring.
const (
	madMX  = 0x40
	madBGR = 0x08
	madMH  = 0x04
)

type panelCmd struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

var ili9488Init = []panelCmd{
	{cmd: ilPower1, data: []byte{0x17, 0x15}},
	{cmd: ilPower2, data: []byte{0x41}},
	{cmd: ilVCOM, data: []byte{0x00, 0x12, 0x80, 0x40}},
	{cmd: ilPixelFmt, data: []byte{0x55}}, // 16 bpp
	{cmd: ilFrameRate, data: []byte{0xA0, 0x11}},
	{cmd: ilDispFunc, data: []byte{0x02, 0x22, 0x27}}, // 320 lines
	{cmd: ilInvertOn},
	{cmd: ilMADCTL, data: []byte{madMX | madMH | madBGR}},
	{cmd: ilSleepOut, delay: 120 * time.Millisecond},
	{cmd: ilDisplayOn},
}

// ili9488 drives the panel over SPI1. Pixels go out as big-endian RGB565.
type ili9488 struct {
	spi     *machine.SPI
	cs      machine.Pin
	dc      machine.Pin
	rst     machine.Pin
	width   int
	scratch []byte
}

func initILI9488(width int) (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("ili9488: SPI1 unavailable")
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	d := &ili9488{
		spi:     machine.SPI1,
		cs:      machine.GP13,
		dc:      machine.GP14,
		rst:     machine.GP15,
		width:   width,
		scratch: make([]byte, 8*width*2), // eight rows per transfer
	}
	for _, p := range []machine.Pin{d.cs, d.dc, d.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, c := range ili9488Init {
		d.send(c.cmd, c.data...)
		if c.delay > 0 {
			time.Sleep(c.delay)
		}
	}
	return d, nil
}

func (d *ili9488) send(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

// blitRows sends rows [y0, y1) of a little-endian RGB565 framebuffer that is
// d.width pixels wide.
func (d *ili9488) blitRows(buf []byte, y0, y1 int) error {
	stride := d.width * 2
	if y0 < 0 || y1 <= y0 || len(buf) < y1*stride {
		return errors.New("ili9488: rows out of range")
	}

	x1 := uint16(d.width - 1)
	d.send(ilColumnAddr, 0, 0, byte(x1>>8), byte(x1))
	d.send(ilPageAddr, byte(y0>>8), byte(y0), byte((y1-1)>>8), byte(y1-1))
	d.send(ilMemWrite)

	d.cs.Low()
	d.dc.High()
	src := buf[y0*stride : y1*stride]
	for len(src) > 0 {
		n := copy(d.scratch, src)
		out := d.scratch[:n]
		for i := 0; i+1 < n; i += 2 {
			out[i], out[i+1] = out[i+1], out[i]
		}
		d.spi.Tx(out, nil)
		src = src[n:]
	}
	d.cs.High()
	return nil
}
