package cpu

import "testing"

func TestInstructionTablesComplete(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		if opcode == 0xCB {
			continue // prefix byte, dispatched to the CB table
		}
		instr := InstructionSet[opcode]
		if instr.Kind() == KindIllegal {
			continue
		}
		if instr.fn == nil {
			t.Errorf("opcode %#02x has no handler", opcode)
		}
		if instr.Name() == "" {
			t.Errorf("opcode %#02x has no mnemonic", opcode)
		}
		if instr.Length() == 0 || instr.Cycles() == 0 {
			t.Errorf("opcode %#02x (%s) has zero length or cycles", opcode, instr.Name())
		}
	}

	for opcode := 0; opcode < 256; opcode++ {
		instr := InstructionSetCB[opcode]
		if instr.fn == nil {
			t.Errorf("CB opcode %#02x has no handler", opcode)
		}
		if instr.Length() != 2 {
			t.Errorf("CB opcode %#02x (%s) has length %d, want 2", opcode, instr.Name(), instr.Length())
		}
	}
}

func TestIllegalOpcodesTagged(t *testing.T) {
	tagged := 0
	for opcode := 0; opcode < 256; opcode++ {
		if InstructionSet[opcode].Kind() == KindIllegal {
			tagged++
		}
	}
	if tagged != len(illegalOpcodes) {
		t.Errorf("%d opcodes tagged illegal, want %d", tagged, len(illegalOpcodes))
	}
	for _, opcode := range illegalOpcodes {
		if InstructionSet[opcode].Kind() != KindIllegal {
			t.Errorf("opcode %#02x not tagged illegal", opcode)
		}
	}
}

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		opcode         uint8
		cb             bool
		name           string
		length, cycles uint8
		branchCycles   uint8
	}{
		{opcode: 0x00, name: "NOP", length: 1, cycles: 1},
		{opcode: 0x20, name: "JR NZ, e8", length: 2, cycles: 2, branchCycles: 1},
		{opcode: 0x36, name: "LD (HL), d8", length: 2, cycles: 3},
		{opcode: 0x76, name: "HALT", length: 1, cycles: 1},
		{opcode: 0x80, name: "ADD A, B", length: 1, cycles: 1},
		{opcode: 0xC4, name: "CALL NZ, a16", length: 3, cycles: 3, branchCycles: 3},
		{opcode: 0xC3, name: "JP a16", length: 3, cycles: 4},
		{opcode: 0xC7, name: "RST 00H", length: 1, cycles: 4},
		{opcode: 0xE9, name: "JP HL", length: 1, cycles: 1},
		{opcode: 0x08, name: "LD (a16), SP", length: 3, cycles: 5},
		{opcode: 0x11, cb: true, name: "RL C", length: 2, cycles: 2},
		{opcode: 0x46, cb: true, name: "BIT 0, (HL)", length: 2, cycles: 3},
		{opcode: 0x86, cb: true, name: "RES 0, (HL)", length: 2, cycles: 4},
		{opcode: 0xFF, cb: true, name: "SET 7, A", length: 2, cycles: 2},
	}

	for _, tt := range tests {
		instr := InstructionSet[tt.opcode]
		if tt.cb {
			instr = InstructionSetCB[tt.opcode]
		}
		if instr.Name() != tt.name {
			t.Errorf("opcode %#02x: name = %q, want %q", tt.opcode, instr.Name(), tt.name)
		}
		if instr.Length() != tt.length || instr.Cycles() != tt.cycles {
			t.Errorf("%s: length/cycles = %d/%d, want %d/%d",
				tt.name, instr.Length(), instr.Cycles(), tt.length, tt.cycles)
		}
		if instr.BranchCycles() != tt.branchCycles {
			t.Errorf("%s: branch cycles = %d, want %d", tt.name, instr.BranchCycles(), tt.branchCycles)
		}
	}
}
