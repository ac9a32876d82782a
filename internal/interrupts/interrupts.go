// Package interrupts tracks the interrupt state of the machine: the
// master enable (IME), the enable register (IE) and the flag register
// (IF), and resolves which pending source is serviced next.
package interrupts

import (
	"github.com/kentrosaur/gbcore/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested every
	// time the PPU enters VBlank.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1), requested by the
	// STAT register when one of its enabled conditions is met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when
	// TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested when
	// a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested when
	// a selected P1 input line goes low.
	JoypadFlag = types.Bit4
)

// Interrupt vectors, in priority order. When multiple sources are
// pending and enabled, the lowest-numbered vector wins.
const (
	VBlankVector uint16 = 0x0040
	LCDVector    uint16 = 0x0048
	TimerVector  uint16 = 0x0050
	SerialVector uint16 = 0x0058
	JoypadVector uint16 = 0x0060
)

// Service is the interrupt service. Peripherals request interrupts by
// setting bits in the Flag register; the CPU gates dispatch on IME and
// the Enable register, and asks Vector for the next source to service.
type Service struct {
	// IME is the interrupt master enable. It gates all dispatch but
	// not the pending check that wakes a halted CPU.
	IME bool
	// Flag is the interrupt flag register (types.IF).
	Flag uint8
	// Enable is the interrupt enable register (types.IE).
	Enable uint8
}

// NewService returns a new Service with all sources disabled.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// HasInterrupts returns true if any interrupt is both requested and
// enabled, regardless of IME.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag != 0
}

// Vector returns the vector of the highest-priority interrupt that is
// both requested and enabled, clearing exactly that source's Flag bit.
// It returns 0 if no interrupt is pending.
func (s *Service) Vector() uint16 {
	if s.Enable&s.Flag == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return VBlankVector + uint16(i)*8
		}
	}

	return 0
}

// ReadFlag returns the value of the IF register. The upper 3 bits are
// unimplemented in hardware and always read as set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag sets the IF register. Only the low 5 bits are stored.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F
}

// ReadEnable returns the value of the IE register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable sets the IE register.
func (s *Service) WriteEnable(v uint8) {
	s.Enable = v
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
func (s *Service) Load(st *types.State) {
	s.IME = st.ReadBool()
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
func (s *Service) Save(st *types.State) {
	st.WriteBool(s.IME)
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
