package interrupts

import (
	"testing"

	"github.com/kentrosaur/gbcore/internal/types"
)

func TestRequestSetsFlag(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	s.Request(JoypadFlag)
	if s.Flag != TimerFlag|JoypadFlag {
		t.Errorf("Flag = %#02x, want %#02x", s.Flag, TimerFlag|JoypadFlag)
	}
}

func TestHasInterruptsIgnoresIME(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	if s.HasInterrupts() {
		t.Error("pending with nothing enabled")
	}
	s.Enable = TimerFlag
	if !s.HasInterrupts() {
		t.Error("not pending with the source enabled")
	}
	// IME gates dispatch, not the pending check
	s.IME = false
	if !s.HasInterrupts() {
		t.Error("IME affected the pending check")
	}
}

func TestVectorPriority(t *testing.T) {
	tests := []struct {
		name string
		flag uint8
		want uint16
	}{
		{name: "VBlank", flag: VBlankFlag, want: VBlankVector},
		{name: "LCD", flag: LCDFlag, want: LCDVector},
		{name: "Timer", flag: TimerFlag, want: TimerVector},
		{name: "Serial", flag: SerialFlag, want: SerialVector},
		{name: "Joypad", flag: JoypadFlag, want: JoypadVector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService()
			s.Enable = 0x1F
			// every lower-priority source is pending too
			s.Flag = 0x1F &^ (tt.flag - 1)
			if got := s.Vector(); got != tt.want {
				t.Errorf("Vector() = %#04x, want %#04x", got, tt.want)
			}
			if s.Flag&tt.flag != 0 {
				t.Error("serviced flag not cleared")
			}
		})
	}
}

func TestVectorClearsExactlyOneFlag(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.Flag = VBlankFlag | TimerFlag | JoypadFlag

	if got := s.Vector(); got != VBlankVector {
		t.Fatalf("Vector() = %#04x, want the VBlank vector", got)
	}
	if s.Flag != TimerFlag|JoypadFlag {
		t.Errorf("Flag = %#02x, want the other sources left pending", s.Flag)
	}
}

func TestVectorSkipsDisabledSources(t *testing.T) {
	s := NewService()
	s.Enable = TimerFlag
	s.Flag = VBlankFlag | TimerFlag

	if got := s.Vector(); got != TimerVector {
		t.Errorf("Vector() = %#04x, want the timer vector", got)
	}
	if s.Flag&VBlankFlag == 0 {
		t.Error("disabled VBlank flag was cleared")
	}
}

func TestVectorWithNothingPending(t *testing.T) {
	s := NewService()
	if got := s.Vector(); got != 0 {
		t.Errorf("Vector() = %#04x, want 0", got)
	}
}

func TestFlagRegisterBits(t *testing.T) {
	s := NewService()
	s.WriteFlag(0xFF)
	if s.Flag != 0x1F {
		t.Errorf("Flag = %#02x, want the upper bits discarded", s.Flag)
	}
	if got := s.ReadFlag(); got != 0xFF {
		t.Errorf("ReadFlag() = %#02x, want 0xFF", got)
	}
	s.WriteFlag(0x00)
	if got := s.ReadFlag(); got != 0xE0 {
		t.Errorf("ReadFlag() = %#02x, want 0xE0", got)
	}
}

func TestEnableRegisterKeepsAllBits(t *testing.T) {
	s := NewService()
	s.WriteEnable(0xFF)
	if got := s.ReadEnable(); got != 0xFF {
		t.Errorf("ReadEnable() = %#02x, want 0xFF", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := NewService()
	s.IME = true
	s.Flag = 0x0A
	s.Enable = 0x15

	st := types.NewState()
	s.Save(st)

	restored := NewService()
	st.ResetPosition()
	restored.Load(st)

	if restored.IME != s.IME || restored.Flag != s.Flag || restored.Enable != s.Enable {
		t.Error("interrupt state did not survive the round trip")
	}
}
