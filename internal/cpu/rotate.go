package cpu

func init() {
	// the accumulator rotates always clear the zero flag, unlike their
	// CB-prefixed counterparts
	DefineInstruction(0x07, "RLCA", 1, 1, func(c *CPU) { c.rotateLeftCarryAccumulator() })
	DefineInstruction(0x0F, "RRCA", 1, 1, func(c *CPU) { c.rotateRightAccumulator() })
	DefineInstruction(0x17, "RLA", 1, 1, func(c *CPU) { c.rotateLeftAccumulatorThroughCarry() })
	DefineInstruction(0x1F, "RRA", 1, 1, func(c *CPU) { c.rotateRightAccumulatorThroughCarry() })
}
