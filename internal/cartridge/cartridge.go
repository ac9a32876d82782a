// Package cartridge models the cartridge side of the bus: the parsed
// header and the mapper that serves ROM and external RAM accesses.
// Only the minimal mappers are provided; anything more exotic belongs
// to an external collaborator.
package cartridge

import (
	"fmt"

	"github.com/kentrosaur/gbcore/internal/types"
)

// Cartridge serves the cartridge address windows: ROM at
// 0x0000 - 0x7FFF and external RAM at 0xA000 - 0xBFFF. Writes into
// the ROM window drive the mapper's bank registers.
type Cartridge interface {
	types.Stater

	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() *Header
}

// New parses the header of the given image and returns a Cartridge
// backed by the mapper the header names. Unsupported mapper types
// return an error; the caller decides whether a collaborator can
// serve them instead.
func New(rom []byte) (Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("cartridge: image too small for a header: %d bytes", len(rom))
	}

	header := parseHeader(rom[0x100:0x150])

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	default:
		return nil, fmt.Errorf("cartridge: unsupported mapper type %#02x", uint8(header.CartridgeType))
	}
}
