package cpu

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(flagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(flagCarry))
	return decremented
}

// incrementNN increments the given RegisterPair by 1. No flags are
// affected.
//
//	INC nn
//	nn = BC, DE, HL
func (c *CPU) incrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() + 1)
}

// decrementNN decrements the given RegisterPair by 1. No flags are
// affected.
//
//	DEC nn
//	nn = BC, DE, HL
func (c *CPU) decrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() - 1)
}

// addHLRR adds the given value to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(value uint16) {
	c.HL.SetUint16(c.addUint16(c.HL.Uint16(), value))
}

// add is a helper function for adding two bytes together and setting
// the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	newCarry := c.isFlagSet(flagCarry) && shouldCarry
	sum := uint16(c.A) + uint16(n)
	sumHalf := c.A&0xF + n&0xF
	if newCarry {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// addUint16 is a helper function for adding two uint16 values
// together and setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(flagZero), false, a&0xFFF+b&0xFFF > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// sub is a helper function for subtracting two bytes and setting the
// flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	newCarry := c.isFlagSet(flagCarry) && shouldCarry
	sub := int16(c.A) - int16(n)
	subHalf := int16(c.A&0xF) - int16(n&0xF)
	if newCarry {
		sub--
		subHalf--
	}
	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	c.A = uint8(sub)
}

// addSPSigned adds the signed 8-bit operand to SP and returns the
// result.
//
// Used by:
//
//	ADD SP, e8
//	LD HL, SP+e8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))

	tmpVal := c.SP ^ uint16(int8(value)) ^ result
	c.setFlags(false, false, tmpVal&0x10 == 0x10, tmpVal&0x100 == 0x100)

	return result
}

func init() {
	// INC/DEC rr and SP
	DefineInstruction(0x03, "INC BC", 1, 2, func(c *CPU) { c.incrementNN(c.BC) })
	DefineInstruction(0x0B, "DEC BC", 1, 2, func(c *CPU) { c.decrementNN(c.BC) })
	DefineInstruction(0x13, "INC DE", 1, 2, func(c *CPU) { c.incrementNN(c.DE) })
	DefineInstruction(0x1B, "DEC DE", 1, 2, func(c *CPU) { c.decrementNN(c.DE) })
	DefineInstruction(0x23, "INC HL", 1, 2, func(c *CPU) { c.incrementNN(c.HL) })
	DefineInstruction(0x2B, "DEC HL", 1, 2, func(c *CPU) { c.decrementNN(c.HL) })
	DefineInstruction(0x33, "INC SP", 1, 2, func(c *CPU) { c.SP++ })
	DefineInstruction(0x3B, "DEC SP", 1, 2, func(c *CPU) { c.SP-- })

	// INC/DEC r
	for i, name := range [8]string{"B", "C", "D", "E", "H", "L", "", "A"} {
		if name == "" {
			continue
		}
		index := uint8(i)
		DefineInstruction(0x04+index*8, "INC "+name, 1, 1, func(c *CPU) {
			reg := c.registerIndex(index)
			*reg = c.increment(*reg)
		})
		DefineInstruction(0x05+index*8, "DEC "+name, 1, 1, func(c *CPU) {
			reg := c.registerIndex(index)
			*reg = c.decrement(*reg)
		})
	}
	DefineInstruction(0x34, "INC (HL)", 1, 3, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
	})
	DefineInstruction(0x35, "DEC (HL)", 1, 3, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
	})

	// ADD HL, rr
	DefineInstruction(0x09, "ADD HL, BC", 1, 2, func(c *CPU) { c.addHLRR(c.BC.Uint16()) })
	DefineInstruction(0x19, "ADD HL, DE", 1, 2, func(c *CPU) { c.addHLRR(c.DE.Uint16()) })
	DefineInstruction(0x29, "ADD HL, HL", 1, 2, func(c *CPU) { c.addHLRR(c.HL.Uint16()) })
	DefineInstruction(0x39, "ADD HL, SP", 1, 2, func(c *CPU) { c.addHLRR(c.SP) })

	// ADD/ADC/SUB/SBC A, r
	for i, name := range registerNames {
		index := uint8(i)
		if name == "(HL)" {
			DefineInstruction(0x86, "ADD A, (HL)", 1, 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), false) })
			DefineInstruction(0x8E, "ADC A, (HL)", 1, 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), true) })
			DefineInstruction(0x96, "SUB A, (HL)", 1, 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), false) })
			DefineInstruction(0x9E, "SBC A, (HL)", 1, 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), true) })
			continue
		}
		DefineInstruction(0x80+index, "ADD A, "+name, 1, 1, func(c *CPU) { c.add(*c.registerIndex(index), false) })
		DefineInstruction(0x88+index, "ADC A, "+name, 1, 1, func(c *CPU) { c.add(*c.registerIndex(index), true) })
		DefineInstruction(0x90+index, "SUB A, "+name, 1, 1, func(c *CPU) { c.sub(*c.registerIndex(index), false) })
		DefineInstruction(0x98+index, "SBC A, "+name, 1, 1, func(c *CPU) { c.sub(*c.registerIndex(index), true) })
	}

	DefineInstruction(0xC6, "ADD A, d8", 2, 2, func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, d8", 2, 2, func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB A, d8", 2, 2, func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, d8", 2, 2, func(c *CPU) { c.sub(c.readOperand(), true) })

	DefineInstruction(0xE8, "ADD SP, e8", 2, 4, func(c *CPU) { c.SP = c.addSPSigned() })
}
