package cartridge

import (
	"testing"

	"github.com/kentrosaur/gbcore/internal/types"
)

// makeROM builds an image of the given number of 16KiB banks, each
// filled with its bank number, and stamps the header fields.
func makeROM(banks int, cartType Type, ramSizeCode uint8) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = uint8(bank)
		}
	}
	copy(rom[0x134:], "TESTCART")
	rom[0x147] = uint8(cartType)
	sizeCode := uint8(0)
	for 2<<sizeCode < banks {
		sizeCode++
	}
	rom[0x148] = sizeCode
	rom[0x149] = ramSizeCode
	return rom
}

func TestNewRejectsTruncatedImages(t *testing.T) {
	if _, err := New(make([]byte, 0x14F)); err == nil {
		t.Error("no error for an image too small to hold a header")
	}
}

func TestNewRejectsUnknownMappers(t *testing.T) {
	rom := makeROM(2, Type(0x19), 0) // MBC5, not supported
	if _, err := New(rom); err == nil {
		t.Error("no error for an unsupported mapper type")
	}
}

func TestHeaderParsing(t *testing.T) {
	rom := makeROM(4, MBC1RAM, 0x02)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	h := cart.Header()
	if h.Title != "TESTCART" {
		t.Errorf("title = %q, want %q", h.Title, "TESTCART")
	}
	if h.CartridgeType != MBC1RAM {
		t.Errorf("type = %v, want MBC1RAM", h.CartridgeType)
	}
	if h.ROMSize != 64*1024 {
		t.Errorf("ROM size = %d, want 64KiB", h.ROMSize)
	}
	if h.RAMSize != 8*1024 {
		t.Errorf("RAM size = %d, want 8KiB", h.RAMSize)
	}
}

func TestHeaderChecksum(t *testing.T) {
	rom := makeROM(2, ROM, 0)
	var sum uint8
	for addr := 0x134; addr <= 0x14C; addr++ {
		sum = sum - rom[addr] - 1
	}
	rom[0x14D] = sum

	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	if !cart.Header().ValidChecksum(rom) {
		t.Error("checksum reported invalid for a correctly stamped header")
	}

	rom[0x134]++
	if cart.Header().ValidChecksum(rom) {
		t.Error("checksum reported valid after corrupting the title")
	}
}

func TestROMCartridge(t *testing.T) {
	rom := makeROM(2, ROMRAM, 0x02)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	if got := cart.Read(0x0000); got != 0 {
		t.Errorf("bank 0 read = %#02x, want 0x00", got)
	}
	if got := cart.Read(0x4000); got != 1 {
		t.Errorf("bank 1 read = %#02x, want 0x01", got)
	}

	// ROM is immutable
	cart.Write(0x0000, 0x42)
	if got := cart.Read(0x0000); got != 0 {
		t.Errorf("ROM write stuck: read %#02x", got)
	}

	// external RAM is not
	cart.Write(0xA123, 0x42)
	if got := cart.Read(0xA123); got != 0x42 {
		t.Errorf("RAM read = %#02x, want 0x42", got)
	}
}

func TestMBC1ROMBanking(t *testing.T) {
	rom := makeROM(8, MBC1, 0)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	// bank 1 is selected at power-on
	if got := cart.Read(0x4000); got != 1 {
		t.Errorf("switchable bank read = %#02x, want 0x01", got)
	}

	cart.Write(0x2000, 0x05)
	if got := cart.Read(0x4000); got != 5 {
		t.Errorf("switchable bank read = %#02x after selecting 5, want 0x05", got)
	}

	// bank 0 stays fixed
	if got := cart.Read(0x0000); got != 0 {
		t.Errorf("fixed bank read = %#02x, want 0x00", got)
	}

	// selecting 0 gives bank 1
	cart.Write(0x2000, 0x00)
	if got := cart.Read(0x4000); got != 1 {
		t.Errorf("switchable bank read = %#02x after selecting 0, want 0x01", got)
	}
}

func TestMBC1BankClamping(t *testing.T) {
	rom := makeROM(4, MBC1, 0)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	// bank 6 wraps to 2 on a 4-bank image
	cart.Write(0x2000, 0x06)
	if got := cart.Read(0x4000); got != 2 {
		t.Errorf("switchable bank read = %#02x, want the wrapped bank 0x02", got)
	}
}

func TestMBC1TruncatedImage(t *testing.T) {
	// headers may lie about the ROM size; reads past the image end
	// serve open bus instead of panicking
	rom := make([]byte, 0x150)
	rom[0x147] = uint8(MBC1)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	if got := cart.Read(0x0150); got != 0xFF {
		t.Errorf("read past the image = %#02x, want 0xFF", got)
	}
	if got := cart.Read(0x4000); got != 0xFF {
		t.Errorf("switchable bank read = %#02x, want 0xFF", got)
	}
	if got := cart.Read(0x0000); got != 0x00 {
		t.Errorf("in-range read = %#02x, want 0x00", got)
	}
}

func TestMBC1RAMEnable(t *testing.T) {
	rom := makeROM(2, MBC1RAM, 0x02)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	// RAM is disabled at power-on
	cart.Write(0xA000, 0x42)
	if got := cart.Read(0xA000); got != 0xFF {
		t.Errorf("disabled RAM read = %#02x, want 0xFF", got)
	}

	cart.Write(0x0000, 0x0A)
	cart.Write(0xA000, 0x42)
	if got := cart.Read(0xA000); got != 0x42 {
		t.Errorf("enabled RAM read = %#02x, want 0x42", got)
	}

	cart.Write(0x0000, 0x00)
	if got := cart.Read(0xA000); got != 0xFF {
		t.Errorf("re-disabled RAM read = %#02x, want 0xFF", got)
	}
}

func TestMBC1StateRoundTrip(t *testing.T) {
	rom := makeROM(8, MBC1RAM, 0x02)
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	cart.Write(0x0000, 0x0A)
	cart.Write(0x2000, 0x03)
	cart.Write(0xA000, 0x77)

	s := types.NewState()
	cart.Save(s)

	restored, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	s.ResetPosition()
	restored.Load(s)

	if got := restored.Read(0x4000); got != 3 {
		t.Errorf("restored bank read = %#02x, want 0x03", got)
	}
	if got := restored.Read(0xA000); got != 0x77 {
		t.Errorf("restored RAM read = %#02x, want 0x77", got)
	}
}
