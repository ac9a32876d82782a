package gameboy

import (
	"io"

	"github.com/kentrosaur/gbcore/pkg/log"
)

// GameBoyOpt configures a GameBoy before it is wired.
type GameBoyOpt func(gb *GameBoy)

// Debug puts the CPU into debug mode.
func Debug() GameBoyOpt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(l log.Logger) GameBoyOpt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// WithBootROM maps the given 256-byte image at 0x0000 - 0x00FF until
// software switches it out. The image is validated against the known
// boot ROM checksums when the machine is wired.
func WithBootROM(image []byte) GameBoyOpt {
	return func(gb *GameBoy) {
		gb.bootImage = image
	}
}

// WithSerialDebugger emits every byte sent over the link port to w.
// Test ROMs print their results this way.
func WithSerialDebugger(w io.Writer) GameBoyOpt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}
