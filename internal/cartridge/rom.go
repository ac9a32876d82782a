package cartridge

import "github.com/kentrosaur/gbcore/internal/types"

// ROMCartridge is the simplest cartridge: up to 32KiB of ROM mapped
// flat, optionally with 8KiB of external RAM, and no banking.
type ROMCartridge struct {
	rom    []byte
	ram    []byte
	header *Header
}

// NewROMCartridge returns a new ROM cartridge for the given image.
func NewROMCartridge(rom []byte, header *Header) *ROMCartridge {
	return &ROMCartridge{
		rom:    rom,
		ram:    make([]byte, header.RAMSize),
		header: header,
	}
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if int(address) < len(r.rom) {
			return r.rom[address]
		}
	case address >= 0xA000 && address < 0xC000:
		if idx := int(address - 0xA000); idx < len(r.ram) {
			return r.ram[idx]
		}
	}
	return 0xFF
}

// Write stores into external RAM if present; ROM writes are ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		if idx := int(address - 0xA000); idx < len(r.ram) {
			r.ram[idx] = value
		}
	}
}

// Header returns the parsed cartridge header.
func (r *ROMCartridge) Header() *Header {
	return r.header
}

var _ types.Stater = (*ROMCartridge)(nil)

// Load implements the types.Stater interface. ROM is immutable, so
// only the external RAM is restored.
func (r *ROMCartridge) Load(s *types.State) {
	s.ReadData(r.ram)
}

// Save implements the types.Stater interface.
func (r *ROMCartridge) Save(s *types.State) {
	s.WriteData(r.ram)
}
