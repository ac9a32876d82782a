package cpu

import "fmt"

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value off the stack.
func (c *CPU) popStack() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// condition evaluates the branch condition encoded in bits 3-4 of a
// conditional opcode (NZ, Z, NC, C) and records whether the branch was
// taken, so the engine can charge the extra cycles.
func (c *CPU) condition(code uint8) bool {
	var taken bool
	switch code {
	case 0:
		taken = !c.isFlagSet(flagZero)
	case 1:
		taken = c.isFlagSet(flagZero)
	case 2:
		taken = !c.isFlagSet(flagCarry)
	case 3:
		taken = c.isFlagSet(flagCarry)
	}
	if taken {
		c.branchTaken = true
	}
	return taken
}

// jumpRelative adds the signed operand to PC.
func (c *CPU) jumpRelative() {
	offset := int8(c.readOperand())
	c.PC = uint16(int32(c.PC) + int32(offset))
}

// call pushes the address of the next instruction and jumps to the
// operand address.
func (c *CPU) call() {
	addr := c.readOperand16()
	c.pushStack(c.PC)
	c.PC = addr
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	DefineInstruction(0x18, "JR e8", 2, 3, func(c *CPU) { c.jumpRelative() })
	DefineInstruction(0xC3, "JP a16", 3, 4, func(c *CPU) { c.PC = c.readOperand16() })
	// JP HL is a bare register copy; it never touches the bus
	DefineInstruction(0xE9, "JP HL", 1, 1, func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", 3, 6, func(c *CPU) { c.call() })
	DefineInstruction(0xC9, "RET", 1, 4, func(c *CPU) { c.PC = c.popStack() })
	DefineInstruction(0xD9, "RETI", 1, 4, func(c *CPU) {
		c.PC = c.popStack()
		// unlike EI, RETI raises IME immediately
		c.irq.IME = true
	})

	for i, name := range conditionNames {
		code := uint8(i)
		DefineConditionalInstruction(0x20+code*8, "JR "+name+", e8", 2, 2, 1, func(c *CPU) {
			if c.condition(code) {
				c.jumpRelative()
			} else {
				c.skipOperand()
			}
		})
		DefineConditionalInstruction(0xC2+code*8, "JP "+name+", a16", 3, 3, 1, func(c *CPU) {
			addr := c.readOperand16()
			if c.condition(code) {
				c.PC = addr
			}
		})
		DefineConditionalInstruction(0xC4+code*8, "CALL "+name+", a16", 3, 3, 3, func(c *CPU) {
			if c.condition(code) {
				c.call()
			} else {
				c.skipOperand()
				c.skipOperand()
			}
		})
		DefineConditionalInstruction(0xC0+code*8, "RET "+name, 1, 2, 3, func(c *CPU) {
			if c.condition(code) {
				c.PC = c.popStack()
			}
		})
	}

	// RST jumps to one of the 8 fixed restart vectors
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", vector), 1, 4, func(c *CPU) {
			c.pushStack(c.PC)
			c.PC = vector
		})
	}
}
