// Package cpu implements the SM83 core found in the DMG and its
// derivatives: an 8-bit register file with 16-bit pair views, the two
// 256-entry opcode tables, and the fetch/decode/execute engine with
// its halt, stop and interrupt behaviour.
package cpu

import (
	"fmt"

	"github.com/kentrosaur/gbcore/internal/bus"
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/timer"
	"github.com/kentrosaur/gbcore/internal/types"
)

type (
	// Register is an 8-bit CPU register.
	Register = types.Register
	// RegisterPair is a 16-bit view over two 8-bit registers.
	RegisterPair = types.RegisterPair
)

// mode is the execution mode of the CPU, advanced by Step.
type mode = uint8

const (
	// ModeNormal fetches and executes instructions.
	ModeNormal mode = iota
	// ModeHalt idles until an interrupt is pending, then services it.
	ModeHalt
	// ModeStop idles until Wake is called. Entered by the STOP
	// instruction.
	ModeStop
	// ModeHaltBug executes the next opcode without advancing PC past
	// it, so the byte is fetched twice. Entered when HALT runs with
	// IME clear and an interrupt already pending.
	ModeHaltBug
	// ModeHaltDI idles until an interrupt is pending, then resumes
	// without servicing it. Entered when HALT runs with IME clear.
	ModeHaltDI
	// ModeEnableIME executes one more instruction before interrupts
	// are considered. Entered by EI.
	ModeEnableIME
	// ModeTrap is entered when an unassigned opcode is fetched. It is
	// permanent; every subsequent Step returns the same error.
	ModeTrap
)

// InvalidOpcodeError is returned by Step when one of the 11 unassigned
// opcode bytes is fetched. PC still addresses the offending byte.
type InvalidOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %#02x at %#04x", e.Opcode, e.PC)
}

// CPU is the SM83 core. It owns the register file and the execution
// mode, and drives the timer in lockstep with the cycles it consumes.
type CPU struct {
	// PC is the program counter.
	PC uint16
	// SP is the stack pointer.
	SP uint16
	types.Registers

	Debug           bool
	DebugBreakpoint bool

	bus   *bus.Bus
	irq   *interrupts.Service
	timer *timer.Controller

	mode          mode
	branchTaken   bool
	currentCycles uint8
	trapErr       error
}

// NewCPU returns a new CPU wired to the given bus, interrupt service
// and timer. All registers start at zero; the machine decides whether
// to run the boot ROM or load the post-boot register file.
func NewCPU(b *bus.Bus, irq *interrupts.Service, tmr *timer.Controller) *CPU {
	c := &CPU{
		bus:   b,
		irq:   irq,
		timer: tmr,
	}

	// the AF pair masks F's low nibble, which does not exist in
	// hardware
	c.AF = types.NewMaskedRegisterPair(&c.A, &c.F, 0xF0)
	c.BC = types.NewRegisterPair(&c.B, &c.C)
	c.DE = types.NewRegisterPair(&c.D, &c.E)
	c.HL = types.NewRegisterPair(&c.H, &c.L)

	return c
}

// Step advances the CPU by one instruction, one idle machine cycle, or
// one interrupt dispatch, depending on the current mode. It returns
// the number of machine cycles consumed. Once the CPU has trapped on
// an unassigned opcode, every call returns the same error without
// advancing the machine.
func (c *CPU) Step() (uint8, error) {
	c.currentCycles = 0

	switch c.mode {
	case ModeTrap:
		return 0, c.trapErr
	case ModeNormal:
		if c.irq.IME && c.irq.HasInterrupts() {
			c.executeInterrupt()
			break
		}
		c.executeInstruction()
	case ModeHalt:
		if c.irq.HasInterrupts() {
			c.mode = ModeNormal
			c.executeInterrupt()
			break
		}
		c.cycle(1)
	case ModeHaltDI:
		if c.irq.HasInterrupts() {
			// the pending interrupt wakes the CPU but is not serviced
			c.mode = ModeNormal
			break
		}
		c.cycle(1)
	case ModeHaltBug:
		opcode := c.readByte(c.PC)
		c.mode = ModeNormal
		c.execute(c.PC, opcode)
	case ModeStop:
		// frozen until Wake
	case ModeEnableIME:
		// IME is raised during the instruction after EI, so a DI here
		// leaves interrupts disabled
		c.mode = ModeNormal
		c.irq.IME = true
		c.executeInstruction()
	}

	if c.mode == ModeTrap {
		return 0, c.trapErr
	}
	return c.currentCycles, nil
}

// Reset returns the CPU to its power-on state: all registers zero,
// normal execution mode, and any pending trap cleared.
func (c *CPU) Reset() {
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.SP = 0
	c.PC = 0
	c.mode = ModeNormal
	c.branchTaken = false
	c.trapErr = nil
}

// Wake leaves stop mode. The surrounding machine calls this when a
// selected joypad line goes low.
func (c *CPU) Wake() {
	if c.mode == ModeStop {
		c.mode = ModeNormal
	}
}

// Halted reports whether the CPU is idling in one of the halt or stop
// modes.
func (c *CPU) Halted() bool {
	switch c.mode {
	case ModeHalt, ModeHaltDI, ModeStop:
		return true
	}
	return false
}

func (c *CPU) executeInstruction() {
	addr := c.PC
	opcode := c.readByte(addr)
	c.PC++
	c.execute(addr, opcode)
}

// execute runs the instruction whose opcode byte was fetched from
// addr, then pays its cycle cost. PC has already moved past the opcode
// byte, except when the halt bug suppressed the advance.
func (c *CPU) execute(addr uint16, opcode uint8) {
	if opcode == 0xCB {
		instr := &InstructionSetCB[c.readOperand()]
		instr.fn(c)
		c.cycle(instr.cycles)
		return
	}

	instr := &InstructionSet[opcode]
	if instr.kind == KindIllegal {
		c.PC = addr
		c.trapErr = InvalidOpcodeError{PC: addr, Opcode: opcode}
		c.mode = ModeTrap
		return
	}

	c.branchTaken = false
	instr.fn(c)

	cycles := instr.cycles
	if c.branchTaken {
		cycles += instr.branchCycles
	}
	c.cycle(cycles)
}

// executeInterrupt pushes PC, jumps to the pending vector and clears
// IME. Dispatch costs 5 machine cycles.
func (c *CPU) executeInterrupt() {
	c.irq.IME = false

	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))
	c.SP--
	c.writeByte(c.SP, uint8(c.PC))

	c.PC = c.irq.Vector()
	c.cycle(5)
}

// cycle advances the machine by m machine cycles, driving the timer at
// 4 T-cycles each.
func (c *CPU) cycle(m uint8) {
	c.currentCycles += m
	c.timer.Tick(m * 4)
}

// readOperand reads the byte PC addresses and advances PC past it.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word PC addresses and advances
// PC past it.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// skipOperand advances PC past an operand byte without reading it.
func (c *CPU) skipOperand() {
	c.PC++
}

func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read8(addr)
}

func (c *CPU) writeByte(addr uint16, value uint8) {
	c.bus.Write8(addr, value)
}

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.mode = s.Read8()
	if c.mode == ModeTrap {
		c.trapErr = InvalidOpcodeError{PC: c.PC, Opcode: c.readByte(c.PC)}
	}
}

// Save implements the types.Stater interface.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(c.mode)
}
