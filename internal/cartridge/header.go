package cartridge

import "fmt"

// Type is the mapper type byte at header offset 0x47.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	ROMRAM      Type = 0x08
	ROMRAMBATT  Type = 0x09
)

func (t Type) String() string {
	switch t {
	case ROM, ROMRAM, ROMRAMBATT:
		return "ROM"
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return "MBC1"
	}
	return fmt.Sprintf("UNKNOWN(%#02x)", uint8(t))
}

// ramSizes maps the RAM size byte at header offset 0x49 to a size in
// bytes.
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed cartridge header, located at 0x0100 - 0x014F
// of every image. It names the hardware the cartridge expects.
type Header struct {
	// Title of the game, at 0x0134-0x0143.
	Title string
	// CartridgeType selects the mapper, at 0x0147.
	CartridgeType Type
	// ROMSize in bytes, decoded from 0x0148.
	ROMSize uint
	// RAMSize in bytes, decoded from 0x0149.
	RAMSize uint
	// MaskROMVersion of the game, at 0x014C.
	MaskROMVersion uint8
	// HeaderChecksum over 0x0134-0x014C, at 0x014D. The boot ROM
	// refuses to hand over control when it doesn't match.
	HeaderChecksum uint8
}

// parseHeader parses the 0x50 header bytes starting at image offset
// 0x100.
func parseHeader(header []byte) *Header {
	if len(header) != 0x50 {
		panic(fmt.Sprintf("cartridge: invalid header length: %d", len(header)))
	}

	h := &Header{}

	// the title is zero padded
	title := header[0x34:0x44]
	for i, c := range title {
		if c == 0 {
			title = title[:i]
			break
		}
	}
	h.Title = string(title)

	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramSizes[header[0x49]]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]

	return h
}

// ValidChecksum recomputes the header checksum the way the boot ROM
// does and compares it against the stored value.
func (h *Header) ValidChecksum(rom []byte) bool {
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum == h.HeaderChecksum
}

func (h *Header) String() string {
	return fmt.Sprintf("%s (%s, %dKiB ROM, %dKiB RAM)", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
