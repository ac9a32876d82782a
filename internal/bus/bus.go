// Package bus implements the memory bus: an ordered table of address
// regions, each owning its reads and writes. The bus owns the plain
// memories (WRAM, VRAM, OAM, HRAM), routes the cartridge windows to
// the mapper, serves the boot ROM overlay until it is switched out,
// and delegates I/O registers to attached peripherals. The timer
// registers and the interrupt registers are owned by the core itself.
package bus

import (
	"fmt"

	"github.com/kentrosaur/gbcore/internal/boot"
	"github.com/kentrosaur/gbcore/internal/cartridge"
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/timer"
	"github.com/kentrosaur/gbcore/internal/types"
)

// Peripheral serves reads and writes for an I/O address range it
// owns, e.g. the joypad, serial port, LCD or sound registers. A
// peripheral may raise interrupt flags on its own schedule through
// the interrupt service it was constructed with.
type Peripheral interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// WriteHandler intercepts a write to a reserved I/O address before
// any attached peripheral sees it. The returned value is passed on.
type WriteHandler func(value uint8) uint8

// Region is one entry of the bus's dispatch table: an inclusive
// address range with its owning read and write handlers. A Region
// with a Present predicate only participates while the predicate
// holds; the boot ROM overlay uses this to switch itself out.
type Region struct {
	Start, End uint16
	Name       string

	Read    func(address uint16) uint8
	Write   func(address uint16, value uint8)
	Present func() bool
}

// Bus routes every CPU memory access to exactly one owning region.
// Reads that match no region return 0xFF (open bus); writes that
// match no region are discarded, observable through OnUnmappedWrite.
type Bus struct {
	regions []Region

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	hram [0x7F]byte

	cart     cartridge.Cartridge
	bootROM  *boot.ROM
	bootDone bool

	timer *timer.Controller
	irq   *interrupts.Service

	peripherals   [0x80]Peripheral
	writeHandlers [0x80]WriteHandler

	// OnUnmappedWrite, if set, observes discarded writes. Purely
	// diagnostic; the write is dropped either way.
	OnUnmappedWrite func(address uint16, value uint8)
}

// New assembles a Bus from the given collaborators. bootROM may be
// nil, in which case the overlay is absent from power-on and
// execution is expected to start at 0x0100.
func New(cart cartridge.Cartridge, bootROM *boot.ROM, irq *interrupts.Service, tmr *timer.Controller) *Bus {
	b := &Bus{
		cart:    cart,
		bootROM: bootROM,
		irq:     irq,
		timer:   tmr,
	}
	b.bootDone = bootROM == nil

	b.regions = []Region{
		{
			Start:   0x0000,
			End:     0x00FF,
			Name:    "BOOT",
			Read:    func(addr uint16) uint8 { return b.bootROM.Read(addr) },
			Write:   func(addr uint16, v uint8) { b.cart.Write(addr, v) },
			Present: func() bool { return !b.bootDone },
		},
		{
			Start: 0x0000,
			End:   0x7FFF,
			Name:  "ROM",
			Read:  b.cart.Read,
			Write: b.cart.Write,
		},
		{
			Start: 0x8000,
			End:   0x9FFF,
			Name:  "VRAM",
			Read:  func(addr uint16) uint8 { return b.vram[addr-0x8000] },
			Write: func(addr uint16, v uint8) { b.vram[addr-0x8000] = v },
		},
		{
			Start: 0xA000,
			End:   0xBFFF,
			Name:  "ERAM",
			Read:  b.cart.Read,
			Write: b.cart.Write,
		},
		{
			Start: 0xC000,
			End:   0xDFFF,
			Name:  "WRAM",
			Read:  func(addr uint16) uint8 { return b.wram[addr-0xC000] },
			Write: func(addr uint16, v uint8) { b.wram[addr-0xC000] = v },
		},
		{
			// echo RAM mirrors WRAM exactly, in both directions
			Start: 0xE000,
			End:   0xFDFF,
			Name:  "ECHO",
			Read:  func(addr uint16) uint8 { return b.wram[addr-0xE000] },
			Write: func(addr uint16, v uint8) { b.wram[addr-0xE000] = v },
		},
		{
			Start: 0xFE00,
			End:   0xFE9F,
			Name:  "OAM",
			Read:  func(addr uint16) uint8 { return b.oam[addr-0xFE00] },
			Write: func(addr uint16, v uint8) { b.oam[addr-0xFE00] = v },
		},
		{
			Start: 0xFF00,
			End:   0xFF7F,
			Name:  "IO",
			Read:  b.readIO,
			Write: b.writeIO,
		},
		{
			Start: 0xFF80,
			End:   0xFFFE,
			Name:  "HRAM",
			Read:  func(addr uint16) uint8 { return b.hram[addr-0xFF80] },
			Write: func(addr uint16, v uint8) { b.hram[addr-0xFF80] = v },
		},
		{
			Start: types.IE,
			End:   types.IE,
			Name:  "IE",
			Read:  func(uint16) uint8 { return b.irq.ReadEnable() },
			Write: func(_ uint16, v uint8) { b.irq.WriteEnable(v) },
		},
	}

	return b
}

// Reset clears the plain memories and maps the boot ROM overlay back
// in when one was provided at construction.
func (b *Bus) Reset() {
	b.vram = [0x2000]byte{}
	b.wram = [0x2000]byte{}
	b.oam = [0xA0]byte{}
	b.hram = [0x7F]byte{}
	b.bootDone = b.bootROM == nil
}

// region returns the first present region owning addr, or nil.
func (b *Bus) region(addr uint16) *Region {
	for i := range b.regions {
		r := &b.regions[i]
		if addr < r.Start || addr > r.End {
			continue
		}
		if r.Present != nil && !r.Present() {
			continue
		}
		return r
	}
	return nil
}

// Read8 reads the byte at addr. Addresses owned by no region read as
// 0xFF, the open-bus convention.
func (b *Bus) Read8(addr uint16) uint8 {
	if r := b.region(addr); r != nil {
		return r.Read(addr)
	}
	return 0xFF
}

// Write8 writes the byte at addr. Writes owned by no region are
// discarded.
func (b *Bus) Write8(addr uint16, value uint8) {
	if r := b.region(addr); r != nil {
		r.Write(addr, value)
		return
	}
	if b.OnUnmappedWrite != nil {
		b.OnUnmappedWrite(addr, value)
	}
}

// Read16 reads the little-endian word at addr.
func (b *Bus) Read16(addr uint16) uint16 {
	return uint16(b.Read8(addr)) | uint16(b.Read8(addr+1))<<8
}

// Write16 writes the little-endian word at addr.
func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write8(addr, uint8(value))
	b.Write8(addr+1, uint8(value>>8))
}

// AttachPeripheral delegates the inclusive I/O address range
// [lo, hi] to p. Both bounds must fall inside 0xFF00 - 0xFF7F;
// attaching over an address the core owns is a configuration bug.
func (b *Bus) AttachPeripheral(p Peripheral, lo, hi uint16) {
	for addr := lo; addr <= hi; addr++ {
		if addr < 0xFF00 || addr > 0xFF7F {
			panic(fmt.Sprintf("bus: address %04X outside the I/O window", addr))
		}
		switch addr {
		case types.DIV, types.TIMA, types.TMA, types.TAC, types.IF, types.BDIS:
			panic(fmt.Sprintf("bus: address %04X is owned by the core", addr))
		}
		b.peripherals[addr-0xFF00] = p
	}
}

// ReserveAddress installs a write interceptor for a single I/O
// address. At most one handler per address may be installed.
func (b *Bus) ReserveAddress(addr uint16, handler WriteHandler) {
	if addr < 0xFF00 || addr > 0xFF7F {
		panic(fmt.Sprintf("bus: address %04X outside the I/O window", addr))
	}
	if b.writeHandlers[addr-0xFF00] != nil {
		panic(fmt.Sprintf("bus: address %04X has already been reserved", addr))
	}
	b.writeHandlers[addr-0xFF00] = handler
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch addr {
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		return b.timer.Read(addr)
	case types.IF:
		return b.irq.ReadFlag()
	case types.BDIS:
		if b.bootDone {
			return 0xFF
		}
		return 0xFE
	}
	if p := b.peripherals[addr-0xFF00]; p != nil {
		return p.Read(addr)
	}
	return 0xFF
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	if h := b.writeHandlers[addr-0xFF00]; h != nil {
		value = h(value)
	}

	switch addr {
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		b.timer.Write(addr, value)
		return
	case types.IF:
		b.irq.WriteFlag(value)
		return
	case types.BDIS:
		// a non-zero write permanently switches the overlay out; the
		// swap is first observable at the following fetch
		if value&0x01 != 0 {
			b.bootDone = true
		}
		return
	}
	if p := b.peripherals[addr-0xFF00]; p != nil {
		p.Write(addr, value)
		return
	}
	// unattached I/O registers drop their writes
	if b.OnUnmappedWrite != nil {
		b.OnUnmappedWrite(addr, value)
	}
}

// BootROMDone reports whether the boot ROM overlay has been switched
// out.
func (b *Bus) BootROMDone() bool {
	return b.bootDone
}

// Cartridge returns the attached cartridge.
func (b *Bus) Cartridge() cartridge.Cartridge {
	return b.cart
}

// VRAM exposes the video RAM for collaborators and tests.
func (b *Bus) VRAM() []byte {
	return b.vram[:]
}

// OAM exposes the object attribute memory for collaborators.
func (b *Bus) OAM() []byte {
	return b.oam[:]
}

var _ types.Stater = (*Bus)(nil)

// Load implements the types.Stater interface.
func (b *Bus) Load(s *types.State) {
	b.bootDone = s.ReadBool()
	s.ReadData(b.vram[:])
	s.ReadData(b.wram[:])
	s.ReadData(b.oam[:])
	s.ReadData(b.hram[:])
}

// Save implements the types.Stater interface.
func (b *Bus) Save(s *types.State) {
	s.WriteBool(b.bootDone)
	s.WriteData(b.vram[:])
	s.WriteData(b.wram[:])
	s.WriteData(b.oam[:])
	s.WriteData(b.hram[:])
}
