package gameboy

import (
	"io"

	"github.com/kentrosaur/gbcore/internal/bus"
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/types"
)

// attachSerialDebugger mirrors the link port protocol test ROMs print
// with: the byte in SB is emitted when SC starts a transfer on the
// internal clock, and the transfer completes immediately.
func attachSerialDebugger(b *bus.Bus, irq *interrupts.Service, w io.Writer) {
	var data uint8

	b.ReserveAddress(types.SB, func(value uint8) uint8 {
		data = value
		return value
	})
	b.ReserveAddress(types.SC, func(value uint8) uint8 {
		if value == 0x81 {
			w.Write([]byte{data})
			irq.Request(interrupts.SerialFlag)
			return 0x01
		}
		return value
	})
}
