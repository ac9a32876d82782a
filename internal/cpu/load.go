package cpu

func init() {
	// LD r, r'
	for src, srcName := range registerNames {
		for dst, dstName := range registerNames {
			if src == 6 && dst == 6 {
				continue // 0x76 is HALT
			}
			opcode := 0x40 + uint8(dst)*8 + uint8(src)
			name := "LD " + dstName + ", " + srcName
			switch {
			case src == 6:
				dstIndex := uint8(dst)
				DefineInstruction(opcode, name, 1, 2, func(c *CPU) {
					*c.registerIndex(dstIndex) = c.readByte(c.HL.Uint16())
				})
			case dst == 6:
				srcIndex := uint8(src)
				DefineInstruction(opcode, name, 1, 2, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), *c.registerIndex(srcIndex))
				})
			default:
				srcIndex, dstIndex := uint8(src), uint8(dst)
				DefineInstruction(opcode, name, 1, 1, func(c *CPU) {
					*c.registerIndex(dstIndex) = *c.registerIndex(srcIndex)
				})
			}
		}
	}

	// LD B, B doubles as a debugger breakpoint when debug mode is on
	DefineInstruction(0x40, "LD B, B", 1, 1, func(c *CPU) {
		if c.Debug {
			c.DebugBreakpoint = true
		}
	})

	// LD r, d8
	for i, name := range registerNames {
		if name == "(HL)" {
			DefineInstruction(0x36, "LD (HL), d8", 2, 3, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.readOperand())
			})
			continue
		}
		index := uint8(i)
		DefineInstruction(0x06+index*8, "LD "+name+", d8", 2, 2, func(c *CPU) {
			*c.registerIndex(index) = c.readOperand()
		})
	}

	// LD rr, d16
	DefineInstruction(0x01, "LD BC, d16", 3, 3, func(c *CPU) { c.BC.SetUint16(c.readOperand16()) })
	DefineInstruction(0x11, "LD DE, d16", 3, 3, func(c *CPU) { c.DE.SetUint16(c.readOperand16()) })
	DefineInstruction(0x21, "LD HL, d16", 3, 3, func(c *CPU) { c.HL.SetUint16(c.readOperand16()) })
	DefineInstruction(0x31, "LD SP, d16", 3, 3, func(c *CPU) { c.SP = c.readOperand16() })

	// LD (rr), A and LD A, (rr), with the HL post-increment and
	// post-decrement variants
	DefineInstruction(0x02, "LD (BC), A", 1, 2, func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	DefineInstruction(0x12, "LD (DE), A", 1, 2, func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	DefineInstruction(0x22, "LD (HL+), A", 1, 2, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 1, 2, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x0A, "LD A, (BC)", 1, 2, func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", 1, 2, func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 2, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 2, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x08, "LD (a16), SP", 3, 5, func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	// high-page loads
	DefineInstruction(0xE0, "LDH (a8), A", 2, 3, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, 3, func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 1, 2, func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	DefineInstruction(0xF2, "LD A, (C)", 1, 2, func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	DefineInstruction(0xEA, "LD (a16), A", 3, 4, func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	DefineInstruction(0xFA, "LD A, (a16)", 3, 4, func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	DefineInstruction(0xF8, "LD HL, SP+e8", 2, 3, func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) })
	DefineInstruction(0xF9, "LD SP, HL", 1, 2, func(c *CPU) { c.SP = c.HL.Uint16() })

	// stack
	DefineInstruction(0xC1, "POP BC", 1, 3, func(c *CPU) { c.BC.SetUint16(c.popStack()) })
	DefineInstruction(0xD1, "POP DE", 1, 3, func(c *CPU) { c.DE.SetUint16(c.popStack()) })
	DefineInstruction(0xE1, "POP HL", 1, 3, func(c *CPU) { c.HL.SetUint16(c.popStack()) })
	DefineInstruction(0xF1, "POP AF", 1, 3, func(c *CPU) {
		// the AF pair masks F's low nibble
		c.AF.SetUint16(c.popStack())
	})
	DefineInstruction(0xC5, "PUSH BC", 1, 4, func(c *CPU) { c.pushStack(c.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", 1, 4, func(c *CPU) { c.pushStack(c.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", 1, 4, func(c *CPU) { c.pushStack(c.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", 1, 4, func(c *CPU) { c.pushStack(c.AF.Uint16()) })
}
