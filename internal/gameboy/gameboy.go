// Package gameboy assembles the emulation core: the cartridge, the
// memory bus, the timer, the interrupt service and the CPU, wired
// together and stepped as one machine.
package gameboy

import (
	"io"

	"github.com/cespare/xxhash"
	"github.com/kentrosaur/gbcore/internal/boot"
	"github.com/kentrosaur/gbcore/internal/bus"
	"github.com/kentrosaur/gbcore/internal/cartridge"
	"github.com/kentrosaur/gbcore/internal/cpu"
	"github.com/kentrosaur/gbcore/internal/interrupts"
	"github.com/kentrosaur/gbcore/internal/timer"
	"github.com/kentrosaur/gbcore/internal/types"
	"github.com/kentrosaur/gbcore/pkg/log"
)

// GameBoy is the assembled machine.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *bus.Bus
	Timer      *timer.Controller
	Interrupts *interrupts.Service

	Logger log.Logger

	cart    cartridge.Cartridge
	bootROM *boot.ROM
	lcd     *lcd

	cycles uint64

	// set by options before the machine is wired
	bootImage []byte
	serialOut io.Writer
	debug     bool
}

// NewGameBoy parses rom, applies the given options and wires the
// machine. Without a boot ROM the register file is loaded with the
// values the DMG boot ROM leaves behind and execution starts at
// 0x0100; with one, everything starts at zero and the boot ROM runs
// first.
func NewGameBoy(rom []byte, opts ...GameBoyOpt) (*GameBoy, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	gb := &GameBoy{
		cart:       cart,
		Interrupts: interrupts.NewService(),
		Logger:     log.New(),
	}
	gb.Timer = timer.NewController(gb.Interrupts)

	for _, opt := range opts {
		opt(gb)
	}

	if gb.bootImage != nil {
		if gb.bootROM, err = boot.NewROM(gb.bootImage); err != nil {
			return nil, err
		}
		gb.Logger.Debugf("boot ROM: %s", gb.bootROM.Model())
	}

	gb.Bus = bus.New(cart, gb.bootROM, gb.Interrupts, gb.Timer)
	gb.CPU = cpu.NewCPU(gb.Bus, gb.Interrupts, gb.Timer)
	gb.CPU.Debug = gb.debug

	gb.lcd = newLCD(gb.Bus)
	gb.Bus.AttachPeripheral(gb.lcd, types.LCDC, types.WX)

	if gb.serialOut != nil {
		attachSerialDebugger(gb.Bus, gb.Interrupts, gb.serialOut)
	}

	if gb.bootROM == nil {
		gb.loadPostBootState()
	}

	gb.Logger.Debugf("loaded cartridge: %s", cart.Header())

	return gb, nil
}

// loadPostBootState loads the register file the DMG boot ROM leaves
// behind when it hands control to the cartridge.
func (gb *GameBoy) loadPostBootState() {
	c := gb.CPU
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Reset returns the whole machine to its power-on state without
// reparsing the cartridge.
func (gb *GameBoy) Reset() {
	gb.CPU.Reset()
	gb.Timer.Reset()
	gb.Bus.Reset()
	gb.Interrupts.IME = false
	gb.Interrupts.Flag = 0
	gb.Interrupts.Enable = 0
	gb.cycles = 0

	if gb.bootROM == nil {
		gb.loadPostBootState()
	}
}

// Step advances the machine by one CPU operation, idle cycle or
// interrupt dispatch, and returns the machine cycles consumed.
func (gb *GameBoy) Step() (uint8, error) {
	cycles, err := gb.CPU.Step()
	gb.cycles += uint64(cycles)
	return cycles, err
}

// RunFor runs the machine until at least machineCycles more machine
// cycles have elapsed. It returns early when the CPU traps on an
// invalid opcode, hits a debug breakpoint, or with a nil error when
// the machine stops and only Wake can resume it.
func (gb *GameBoy) RunFor(machineCycles uint64) error {
	target := gb.cycles + machineCycles
	for gb.cycles < target {
		n, err := gb.Step()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if gb.CPU.DebugBreakpoint {
			gb.Logger.Infof("breakpoint at %#04x", gb.CPU.PC)
			return nil
		}
	}
	return nil
}

// Wake leaves stop mode, as a low joypad line would.
func (gb *GameBoy) Wake() {
	gb.CPU.Wake()
}

// Cycles returns the machine cycles elapsed since power-on.
func (gb *GameBoy) Cycles() uint64 {
	return gb.cycles
}

func (gb *GameBoy) staters() []types.Stater {
	return []types.Stater{gb.CPU, gb.Interrupts, gb.Timer, gb.Bus, gb.cart}
}

// State returns a snapshot of the full machine.
func (gb *GameBoy) State() *types.State {
	s := types.NewState()
	for _, st := range gb.staters() {
		st.Save(s)
	}
	return s
}

// LoadState restores the machine from a snapshot taken by State.
func (gb *GameBoy) LoadState(s *types.State) {
	s.ResetPosition()
	for _, st := range gb.staters() {
		st.Load(s)
	}
}

// StateHash returns a 64-bit digest of the full machine snapshot.
// Two machines that executed the same inputs hash identically.
func (gb *GameBoy) StateHash() uint64 {
	return xxhash.Sum64(gb.State().Bytes())
}
