// Package boot wraps the 256-byte boot ROM image that is mapped over
// the bottom of the address space at power-on. The boot ROM scrolls
// the logo, verifies the cartridge header and hands control to the
// cartridge by writing to the boot ROM disable register.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Size is the length of a DMG-family boot ROM image.
const Size = 256

// ROM is a boot ROM image. Once loaded it is immutable; the bus
// unmaps it when the boot ROM disable register is written.
type ROM struct {
	raw      [Size]byte
	checksum string
}

// NewROM wraps the given image. It returns an error if the image is
// not exactly 256 bytes, the length of every DMG-family boot ROM.
func NewROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}

	sum := md5.Sum(b)

	r := &ROM{checksum: hex.EncodeToString(sum[:])}
	copy(r.raw[:], b)
	return r, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Checksum returns the MD5 checksum of the image.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the hardware model the image belongs to, determined
// by its checksum, or "unknown" for unrecognized images.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

const (
	// DMG0 is the checksum of the early DMG boot ROM found in the
	// first Japanese units. On a boot failure it flashes the screen
	// instead of hanging after the logo.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the boot ROM found in the common DMG-01
	// models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the Game Boy Pocket boot ROM. It differs
	// from DMG by a single byte, loading 0xFF into A instead of 0x01,
	// which games use to detect MGB hardware.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the Super Game Boy boot ROM.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is the checksum of the Super Game Boy 2 boot ROM.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)

var knownChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}
