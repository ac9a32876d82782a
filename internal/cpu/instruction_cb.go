package cpu

import "fmt"

// defineRotationCB registers the 8 operand encodings of a CB-prefixed
// read-modify-write operation. Register operands cost 2 machine
// cycles, the (HL) operand 4.
func defineRotationCB(base uint8, name string, fn func(*CPU, uint8) uint8) {
	for i, regName := range registerNames {
		index := uint8(i)
		if index == 6 {
			DefineInstructionCB(base+index, name+" (HL)", 4, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), fn(c, c.readByte(c.HL.Uint16())))
			})
			continue
		}
		DefineInstructionCB(base+index, name+" "+regName, 2, func(c *CPU) {
			reg := c.registerIndex(index)
			*reg = fn(c, *reg)
		})
	}
}

func init() {
	defineRotationCB(0x00, "RLC", (*CPU).rotateLeftCarry)
	defineRotationCB(0x08, "RRC", (*CPU).rotateRightCarry)
	defineRotationCB(0x10, "RL", (*CPU).rotateLeftThroughCarry)
	defineRotationCB(0x18, "RR", (*CPU).rotateRightThroughCarry)
	defineRotationCB(0x20, "SLA", (*CPU).shiftLeftArithmetic)
	defineRotationCB(0x28, "SRA", (*CPU).shiftRightArithmetic)
	defineRotationCB(0x30, "SWAP", (*CPU).swap)
	defineRotationCB(0x38, "SRL", (*CPU).shiftRightLogical)

	for b := uint8(0); b < 8; b++ {
		mask := uint8(1) << b
		for i, regName := range registerNames {
			index := uint8(i)
			if index == 6 {
				// BIT only reads its operand, so the (HL) form is a
				// machine cycle cheaper than RES and SET
				DefineInstructionCB(0x40+b*8+index, fmt.Sprintf("BIT %d, (HL)", b), 3, func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), mask)
				})
				DefineInstructionCB(0x80+b*8+index, fmt.Sprintf("RES %d, (HL)", b), 4, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())&^mask)
				})
				DefineInstructionCB(0xC0+b*8+index, fmt.Sprintf("SET %d, (HL)", b), 4, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())|mask)
				})
				continue
			}
			DefineInstructionCB(0x40+b*8+index, fmt.Sprintf("BIT %d, %s", b, regName), 2, func(c *CPU) {
				c.testBit(*c.registerIndex(index), mask)
			})
			DefineInstructionCB(0x80+b*8+index, fmt.Sprintf("RES %d, %s", b, regName), 2, func(c *CPU) {
				*c.registerIndex(index) &^= mask
			})
			DefineInstructionCB(0xC0+b*8+index, fmt.Sprintf("SET %d, %s", b, regName), 2, func(c *CPU) {
				*c.registerIndex(index) |= mask
			})
		}
	}
}
