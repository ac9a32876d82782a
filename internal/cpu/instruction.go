package cpu

import (
	"fmt"

	"github.com/kentrosaur/gbcore/internal/types"
)

// Kind distinguishes descriptors the engine may execute from the 11
// opcode bytes the SM83 never assigned.
type Kind uint8

const (
	// KindValid marks an executable instruction.
	KindValid Kind = iota
	// KindIllegal marks an unassigned opcode byte; fetching one traps
	// the CPU instead of executing undefined behaviour.
	KindIllegal
)

// Instruction describes one opcode: its mnemonic, its encoded length
// in bytes (prefix and operands included), its base cost in machine
// cycles, the extra cost paid only when a conditional branch is
// taken, and the closure that executes it.
type Instruction struct {
	name         string
	length       uint8
	cycles       uint8
	branchCycles uint8
	kind         Kind
	fn           func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Length returns the encoded length in bytes, including the CB
// prefix and any operands.
func (i Instruction) Length() uint8 { return i.length }

// Cycles returns the base cost in machine cycles.
func (i Instruction) Cycles() uint8 { return i.cycles }

// BranchCycles returns the extra machine cycles paid when the
// instruction's condition holds.
func (i Instruction) BranchCycles() uint8 { return i.branchCycles }

// Kind reports whether the opcode is executable.
func (i Instruction) Kind() Kind { return i.kind }

// InstructionSet is the unprefixed opcode table. It is populated
// during package init and never mutated afterwards.
var InstructionSet [256]Instruction

// InstructionSetCB is the CB-prefixed opcode table.
var InstructionSetCB [256]Instruction

// DefineInstruction registers an unprefixed instruction in the
// InstructionSet with the provided opcode.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineConditionalInstruction registers an instruction whose cost
// grows by branchCycles when its condition holds during execution.
func DefineConditionalInstruction(opcode uint8, name string, length, cycles, branchCycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:         name,
		length:       length,
		cycles:       cycles,
		branchCycles: branchCycles,
		fn:           fn,
	}
}

// DefineInstructionCB registers a CB-prefixed instruction in the
// InstructionSetCB with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		length: 2,
		cycles: cycles,
		fn:     fn,
	}
}

// registerNames indexes the operand encoding common to most opcode
// blocks: B, C, D, E, H, L, (HL), A.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerIndex returns a pointer to the register encoded by index.
// Index 6 encodes (HL) and has no register to point at.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// illegalOpcodes are the 11 opcode bytes the SM83 never assigned.
// Fetching one of these on hardware locks the CPU up; the engine
// traps instead.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, opcode := range illegalOpcodes {
		InstructionSet[opcode] = Instruction{
			name:   fmt.Sprintf("ILLEGAL(%#02x)", opcode),
			length: 1,
			cycles: 1,
			kind:   KindIllegal,
		}
	}

	DefineInstruction(0x00, "NOP", 1, 1, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 2, 1, func(c *CPU) {
		// STOP is encoded with a padding byte, and resets DIV
		c.skipOperand()
		c.timer.Write(types.DIV, 0)
		c.mode = ModeStop
	})
	DefineInstruction(0x27, "DAA", 1, 1, func(c *CPU) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", 1, 1, func(c *CPU) {
		c.A = ^c.A
		c.setFlag(flagSubtract)
		c.setFlag(flagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", 1, 1, func(c *CPU) {
		c.setFlag(flagCarry)
		c.clearFlag(flagSubtract)
		c.clearFlag(flagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", 1, 1, func(c *CPU) {
		if c.isFlagSet(flagCarry) {
			c.clearFlag(flagCarry)
		} else {
			c.setFlag(flagCarry)
		}
		c.clearFlag(flagSubtract)
		c.clearFlag(flagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", 1, 1, func(c *CPU) {
		if c.irq.IME {
			c.mode = ModeHalt
		} else if c.irq.HasInterrupts() {
			// the HALT bug: the next opcode byte is fetched without
			// PC advancing, so it executes twice
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHaltDI
		}
	})
	DefineInstruction(0xF3, "DI", 1, 1, func(c *CPU) { c.irq.IME = false })
	DefineInstruction(0xFB, "EI", 1, 1, func(c *CPU) { c.mode = ModeEnableIME })
}
