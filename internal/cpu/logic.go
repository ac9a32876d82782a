package cpu

func init() {
	// AND/XOR/OR/CP A, r
	for i, name := range registerNames {
		index := uint8(i)
		if name == "(HL)" {
			DefineInstruction(0xA6, "AND A, (HL)", 1, 2, func(c *CPU) { c.and(c.readByte(c.HL.Uint16())) })
			DefineInstruction(0xAE, "XOR A, (HL)", 1, 2, func(c *CPU) { c.xor(c.readByte(c.HL.Uint16())) })
			DefineInstruction(0xB6, "OR A, (HL)", 1, 2, func(c *CPU) { c.or(c.readByte(c.HL.Uint16())) })
			DefineInstruction(0xBE, "CP A, (HL)", 1, 2, func(c *CPU) { c.compare(c.readByte(c.HL.Uint16())) })
			continue
		}
		DefineInstruction(0xA0+index, "AND A, "+name, 1, 1, func(c *CPU) { c.and(*c.registerIndex(index)) })
		DefineInstruction(0xA8+index, "XOR A, "+name, 1, 1, func(c *CPU) { c.xor(*c.registerIndex(index)) })
		DefineInstruction(0xB0+index, "OR A, "+name, 1, 1, func(c *CPU) { c.or(*c.registerIndex(index)) })
		DefineInstruction(0xB8+index, "CP A, "+name, 1, 1, func(c *CPU) { c.compare(*c.registerIndex(index)) })
	}

	DefineInstruction(0xE6, "AND A, d8", 2, 2, func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR A, d8", 2, 2, func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR A, d8", 2, 2, func(c *CPU) { c.or(c.readOperand()) })
	DefineInstruction(0xFE, "CP A, d8", 2, 2, func(c *CPU) { c.compare(c.readOperand()) })
}
