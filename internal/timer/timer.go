// Package timer implements the Game Boy timer: the free-running
// divider (DIV) and the configurable counter (TIMA/TMA/TAC) that
// raises the timer interrupt on overflow.
package timer

import (
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/types"
)

// bits maps TAC's clock-select field to the system counter bit whose
// falling edge increments TIMA.
//
//	00 = 4096Hz   (bit 9)
//	01 = 262144Hz (bit 3)
//	10 = 65536Hz  (bit 5)
//	11 = 16384Hz  (bit 7)
var bits = [4]uint16{512, 8, 32, 128}

// Controller owns the timer registers. DIV is the high byte of a
// 16-bit system counter incremented every clock tick; TIMA increments
// whenever the TAC-selected counter bit falls while the timer is
// enabled. The overflow reload from TMA is delayed, during which TIMA
// reads as zero.
type Controller struct {
	sysClock uint16

	tima uint8
	tma  uint8
	tac  uint8

	enabled    bool
	currentBit uint16
	lastBit    bool

	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a new timer Controller requesting its
// interrupts through irq.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq:        irq,
		currentBit: bits[0],
		tac:        0xF8,
	}
}

// Reset returns the controller to its power-on state.
func (c *Controller) Reset() {
	c.sysClock = 0
	c.tima, c.tma = 0, 0
	c.tac = 0xF8
	c.enabled = false
	c.currentBit = bits[0]
	c.lastBit = false
	c.overflow = false
	c.ticksSinceOverflow = 0
}

// Tick advances the timer by the given number of clock ticks
// (4 per machine cycle).
func (c *Controller) Tick(ticks uint8) {
	for i := uint8(0); i < ticks; i++ {
		c.sysClock++
		c.checkFallingEdge()

		if c.overflow {
			c.ticksSinceOverflow++

			switch c.ticksSinceOverflow {
			case 4:
				c.irq.Request(interrupts.TimerFlag)
			case 5:
				c.tima = c.tma
			case 6:
				c.overflow = false
				c.ticksSinceOverflow = 0
			}
		}
	}
}

// checkFallingEdge samples the selected counter bit and increments
// TIMA on a 1 -> 0 transition. Both ordinary counting and the DIV
// write reset feed through here, so resetting the counter while the
// selected bit is high costs an increment, as on hardware.
func (c *Controller) checkFallingEdge() {
	newBit := c.enabled && c.sysClock&c.currentBit != 0

	if !newBit && c.lastBit {
		c.tima++
		if c.tima == 0 {
			c.overflow = true
			c.ticksSinceOverflow = 0
		}
	}

	c.lastBit = newBit
}

// Read returns the value of the timer register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.sysClock >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0xF8
	}
	return 0xFF
}

// Write writes the value to the timer register at the given address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// any write resets the whole system counter, regardless of
		// the written value
		c.sysClock = 0
		c.checkFallingEdge()
	case types.TIMA:
		// writes are ignored on the exact tick TIMA reloads from TMA
		if c.ticksSinceOverflow != 5 {
			c.tima = value
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	case types.TMA:
		c.tma = value
		// a write on the reload tick lands in TIMA too
		if c.ticksSinceOverflow == 5 {
			c.tima = value
		}
	case types.TAC:
		wasEnabled := c.enabled
		oldBit := c.currentBit

		c.tac = value & 0x7
		c.currentBit = bits[value&0x3]
		c.enabled = value&types.Bit2 != 0

		c.timaGlitch(wasEnabled, oldBit)
	}
}

// DIV returns the visible divider value.
func (c *Controller) DIV() uint8 {
	return uint8(c.sysClock >> 8)
}

// SysClock returns the internal 16-bit system counter.
func (c *Controller) SysClock() uint16 {
	return c.sysClock
}

// timaGlitch models the extra increment that occurs when a TAC write
// disables the timer, or moves the selected bit from high to low,
// while the old selected bit was high.
func (c *Controller) timaGlitch(wasEnabled bool, oldBit uint16) {
	if !wasEnabled {
		return
	}

	if c.sysClock&oldBit != 0 {
		if !c.enabled || c.sysClock&c.currentBit == 0 {
			c.tima++

			if c.tima == 0 {
				c.tima = c.tma
				c.irq.Request(interrupts.TimerFlag)
			}

			c.lastBit = false
		}
	}
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
func (c *Controller) Load(s *types.State) {
	c.sysClock = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()

	c.enabled = s.ReadBool()
	c.currentBit = s.Read16()
	c.lastBit = s.ReadBool()
	c.overflow = s.ReadBool()
	c.ticksSinceOverflow = s.Read8()
}

// Save implements the types.Stater interface.
func (c *Controller) Save(s *types.State) {
	s.Write16(c.sysClock)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)

	s.WriteBool(c.enabled)
	s.Write16(c.currentBit)
	s.WriteBool(c.lastBit)
	s.WriteBool(c.overflow)
	s.Write8(c.ticksSinceOverflow)
}
