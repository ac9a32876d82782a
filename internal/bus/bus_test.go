package bus

import (
	"testing"

	"github.com/kentrosaur/gbcore/internal/boot"
	"github.com/kentrosaur/gbcore/internal/cartridge"
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/timer"
	"github.com/kentrosaur/gbcore/internal/types"
)

func testBus(t *testing.T, bootROM *boot.ROM) *Bus {
	t.Helper()
	cart, err := cartridge.New(make([]byte, 0x8000))
	if err != nil {
		t.Fatalf("failed to create cartridge: %v", err)
	}
	irq := interrupts.NewService()
	return New(cart, bootROM, irq, timer.NewController(irq))
}

func TestRAMRegions(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
	}{
		{name: "VRAM", addr: 0x8000},
		{name: "VRAM end", addr: 0x9FFF},
		{name: "WRAM", addr: 0xC000},
		{name: "WRAM end", addr: 0xDFFF},
		{name: "OAM", addr: 0xFE00},
		{name: "OAM end", addr: 0xFE9F},
		{name: "HRAM", addr: 0xFF80},
		{name: "HRAM end", addr: 0xFFFE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBus(t, nil)
			b.Write8(tt.addr, 0x5A)
			if got := b.Read8(tt.addr); got != 0x5A {
				t.Errorf("read %#02x at %#04x, want 0x5A", got, tt.addr)
			}
		})
	}
}

func TestEchoRAM(t *testing.T) {
	b := testBus(t, nil)

	b.Write8(0xC000, 0x11)
	if got := b.Read8(0xE000); got != 0x11 {
		t.Errorf("echo read = %#02x, want 0x11", got)
	}

	b.Write8(0xFDFF, 0x22)
	if got := b.Read8(0xDDFF); got != 0x22 {
		t.Errorf("WRAM read = %#02x, want 0x22 written through the echo", got)
	}
}

func TestOpenBus(t *testing.T) {
	b := testBus(t, nil)

	// 0xFEA0 - 0xFEFF is unmapped on the DMG
	if got := b.Read8(0xFEA0); got != 0xFF {
		t.Errorf("unmapped read = %#02x, want 0xFF", got)
	}

	var observed []uint16
	b.OnUnmappedWrite = func(addr uint16, value uint8) {
		observed = append(observed, addr)
	}

	b.Write8(0xFEA0, 0x12)
	if got := b.Read8(0xFEA0); got != 0xFF {
		t.Errorf("unmapped write stuck: read %#02x", got)
	}
	if len(observed) != 1 || observed[0] != 0xFEA0 {
		t.Errorf("observed writes = %v, want [0xFEA0]", observed)
	}
}

func TestROMWritesReachTheMapper(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x01 // MBC1
	rom[0x3FFF] = 0x11
	rom[0x7FFF] = 0x22
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatal(err)
	}
	irq := interrupts.NewService()
	b := New(cart, nil, irq, timer.NewController(irq))

	// bank register writes go to the mapper, not into ROM
	b.Write8(0x2000, 0x02)
	if got := b.Read8(0x3FFF); got != 0x11 {
		t.Errorf("bank 0 read = %#02x after a bank write, want 0x11", got)
	}
}

func TestBootROMOverlay(t *testing.T) {
	image := make([]byte, boot.Size)
	for i := range image {
		image[i] = 0xA5
	}
	bootROM, err := boot.NewROM(image)
	if err != nil {
		t.Fatal(err)
	}

	b := testBus(t, bootROM)

	if got := b.Read8(0x00FF); got != 0xA5 {
		t.Fatalf("overlay read = %#02x, want 0xA5", got)
	}
	// the overlay only covers the first 256 bytes
	if got := b.Read8(0x0100); got != 0x00 {
		t.Errorf("read past the overlay = %#02x, want the cartridge byte 0x00", got)
	}

	b.Write8(types.BDIS, 0x01)
	if !b.BootROMDone() {
		t.Fatal("overlay still mapped after the disable write")
	}
	if got := b.Read8(0x00FF); got != 0x00 {
		t.Errorf("read %#02x after disable, want the cartridge byte 0x00", got)
	}
}

func TestIERegister(t *testing.T) {
	b := testBus(t, nil)
	b.Write8(types.IE, 0x15)
	if got := b.Read8(types.IE); got != 0x15 {
		t.Errorf("IE = %#02x, want 0x15", got)
	}
}

func TestIFRegisterUpperBits(t *testing.T) {
	b := testBus(t, nil)
	b.Write8(types.IF, 0x00)
	if got := b.Read8(types.IF); got != 0xE0 {
		t.Errorf("IF = %#02x, want 0xE0 with the unimplemented bits set", got)
	}
	b.Write8(types.IF, 0xFF)
	if got := b.Read8(types.IF); got != 0xFF {
		t.Errorf("IF = %#02x, want 0xFF", got)
	}
}

func TestTimerRegistersRouted(t *testing.T) {
	b := testBus(t, nil)
	b.Write8(types.TMA, 0x42)
	if got := b.Read8(types.TMA); got != 0x42 {
		t.Errorf("TMA = %#02x, want 0x42", got)
	}
	if got := b.Read8(types.TAC); got&0xF8 != 0xF8 {
		t.Errorf("TAC = %#02x, want the upper bits set", got)
	}
}

type recordingPeripheral struct {
	last  uint16
	value uint8
}

func (p *recordingPeripheral) Read(addr uint16) uint8 {
	return p.value
}

func (p *recordingPeripheral) Write(addr uint16, value uint8) {
	p.last = addr
	p.value = value
}

func TestAttachPeripheral(t *testing.T) {
	b := testBus(t, nil)
	p := &recordingPeripheral{}
	b.AttachPeripheral(p, 0xFF40, 0xFF4B)

	b.Write8(0xFF42, 0x07)
	if p.last != 0xFF42 || p.value != 0x07 {
		t.Errorf("peripheral saw %#04x=%#02x, want 0xFF42=0x07", p.last, p.value)
	}
	if got := b.Read8(0xFF40); got != 0x07 {
		t.Errorf("peripheral read = %#02x, want 0x07", got)
	}
}

func TestAttachPeripheralRejectsCoreAddresses(t *testing.T) {
	b := testBus(t, nil)
	defer func() {
		if recover() == nil {
			t.Error("attaching over the timer registers did not panic")
		}
	}()
	b.AttachPeripheral(&recordingPeripheral{}, types.DIV, types.TAC)
}

func TestReserveAddress(t *testing.T) {
	b := testBus(t, nil)

	var seen uint8
	b.ReserveAddress(types.SB, func(value uint8) uint8 {
		seen = value
		return value
	})
	b.Write8(types.SB, 0x55)
	if seen != 0x55 {
		t.Errorf("handler saw %#02x, want 0x55", seen)
	}

	defer func() {
		if recover() == nil {
			t.Error("double reservation did not panic")
		}
	}()
	b.ReserveAddress(types.SB, func(value uint8) uint8 { return value })
}

func TestRead16LittleEndian(t *testing.T) {
	b := testBus(t, nil)
	b.Write16(0xC000, 0xBEEF)
	if got := b.Read8(0xC000); got != 0xEF {
		t.Errorf("low byte = %#02x, want 0xEF", got)
	}
	if got := b.Read8(0xC001); got != 0xBE {
		t.Errorf("high byte = %#02x, want 0xBE", got)
	}
	if got := b.Read16(0xC000); got != 0xBEEF {
		t.Errorf("word = %#04x, want 0xBEEF", got)
	}
}
