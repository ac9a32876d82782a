package gameboy

import (
	"github.com/kentrosaur/gbcore/internal/bus"
	"github.com/kentrosaur/gbcore/internal/types"
)

// lcd stands in for the pixel pipeline. It latches writes to the LCD
// register window, performs OAM DMA copies, and serves LY as the first
// VBlank scanline so code polling for VBlank makes progress.
type lcd struct {
	regs [0x0C]uint8
	bus  *bus.Bus
}

func newLCD(b *bus.Bus) *lcd {
	return &lcd{bus: b}
}

func (l *lcd) Read(address uint16) uint8 {
	if address == types.LY {
		return 144
	}
	return l.regs[address-types.LCDC]
}

func (l *lcd) Write(address uint16, value uint8) {
	l.regs[address-types.LCDC] = value

	if address == types.DMA {
		// OAM DMA copies 0xA0 bytes from value<<8
		src := uint16(value) << 8
		oam := l.bus.OAM()
		for i := uint16(0); i < 0xA0; i++ {
			oam[i] = l.bus.Read8(src + i)
		}
	}
}
