package cartridge

import "github.com/kentrosaur/gbcore/internal/types"

// MemoryBankedCartridge1 implements the MBC1 mapper: up to 2MiB of
// ROM in 16KiB banks and up to 32KiB of external RAM in 8KiB banks.
// Bank registers are driven by writes into the ROM window.
type MemoryBankedCartridge1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    uint32
	ramEnabled bool

	// mode selects between ROM banking (false) and RAM banking (true)
	// for the 2-bit upper register
	mode bool

	header *Header
}

// NewMemoryBankedCartridge1 returns a new MBC1 cartridge for the
// given image.
func NewMemoryBankedCartridge1(rom []byte, header *Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		header:  header,
	}
}

// Read returns the value from the cartridge's ROM or RAM, depending
// on the selected banks.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		// bank 0 is fixed
		if int(address) < len(m.rom) {
			return m.rom[address]
		}
	case address < 0x8000:
		offset := uint32(address-0x4000) + m.romBank*0x4000
		if offset < uint32(len(m.rom)) {
			return m.rom[offset]
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			offset := uint32(address-0xA000) + m.ramBank*0x2000
			if offset < uint32(len(m.ram)) {
				return m.ram[offset]
			}
		}
	}
	return 0xFF
}

// Write drives the bank registers, or stores into external RAM.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = len(m.ram) > 0 && value&0x0F == 0x0A
	case address < 0x4000:
		// low 5 bits of the ROM bank; 0 selects 1
		bank := uint32(value & 0x1F)
		if bank == 0 {
			bank = 1
		}
		m.romBank = m.romBank&0x60 | bank
		m.clampROMBank()
	case address < 0x6000:
		if m.mode {
			m.ramBank = uint32(value & 0x03)
			if len(m.ram) == 0 {
				m.ramBank = 0
			} else if m.ramBank*0x2000 >= uint32(len(m.ram)) {
				m.ramBank %= uint32(len(m.ram)) / 0x2000
			}
		} else {
			m.romBank = m.romBank&0x1F | uint32(value&0x03)<<5
			m.clampROMBank()
		}
	case address < 0x8000:
		m.mode = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			offset := uint32(address-0xA000) + m.ramBank*0x2000
			if offset < uint32(len(m.ram)) {
				m.ram[offset] = value
			}
		}
	}
}

// clampROMBank wraps the ROM bank register to the number of banks the
// image actually has.
func (m *MemoryBankedCartridge1) clampROMBank() {
	if banks := uint32(len(m.rom) / 0x4000); banks > 0 && m.romBank >= banks {
		m.romBank %= banks
		if m.romBank == 0 {
			m.romBank = 1
		}
	}
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge1) Header() *Header {
	return m.header
}

var _ types.Stater = (*MemoryBankedCartridge1)(nil)

// Load implements the types.Stater interface.
func (m *MemoryBankedCartridge1) Load(s *types.State) {
	m.romBank = uint32(s.Read16())
	m.ramBank = uint32(s.Read16())
	m.ramEnabled = s.ReadBool()
	m.mode = s.ReadBool()
	s.ReadData(m.ram)
}

// Save implements the types.Stater interface.
func (m *MemoryBankedCartridge1) Save(s *types.State) {
	s.Write16(uint16(m.romBank))
	s.Write16(uint16(m.ramBank))
	s.WriteBool(m.ramEnabled)
	s.WriteBool(m.mode)
	s.WriteData(m.ram)
}
