package types

// Register represents an 8-bit CPU register. The SM83 has 8 of them:
// A, B, C, D, E, H, L and F. The F register is special in that it
// holds the flags in its high nibble; its low nibble always reads as
// zero.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit registers. The SM83
// exposes 4 pairs: AF, BC, DE and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is ANDed into the low register on every 16-bit set. The
	// AF pair uses it to hold F's low-nibble-zero invariant; the other
	// pairs pass all bits through.
	lowMask Register
}

// NewRegisterPair returns a 16-bit view over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: 0xFF}
}

// NewMaskedRegisterPair returns a 16-bit view that masks the low
// register on every set.
func NewMaskedRegisterPair(high, low *Register, mask Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers is the SM83 register file.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}
