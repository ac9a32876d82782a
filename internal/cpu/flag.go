package cpu

type flag = uint8

const (
	flagZero      flag = 7
	flagSubtract  flag = 6
	flagHalfCarry flag = 5
	flagCarry     flag = 4
)

// setFlags writes all four flags at once. The low nibble of F always
// ends up zero.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	v := uint8(0)
	if zero {
		v |= 1 << flagZero
	}
	if subtract {
		v |= 1 << flagSubtract
	}
	if halfCarry {
		v |= 1 << flagHalfCarry
	}
	if carry {
		v |= 1 << flagCarry
	}
	c.F = v
}

// setFlag sets the given flag, leaving the others untouched.
func (c *CPU) setFlag(f flag) {
	c.F |= 1 << f
}

// clearFlag clears the given flag, leaving the others untouched.
func (c *CPU) clearFlag(f flag) {
	c.F &^= 1 << f
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(f flag) bool {
	return c.F&(1<<f) != 0
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...flag) bool {
	for _, f := range flags {
		if !c.isFlagSet(f) {
			return false
		}
	}
	return true
}
