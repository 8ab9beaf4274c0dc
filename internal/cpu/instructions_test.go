package cpu

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		ins := Decode(uint8(i))
		assert.Equal(t, uint8(i), ins.Opcode)
		assert.True(t, ins.Cycles[0] > 0, fmt.Sprintf("opcode %#02x has no base cycle cost", i))
	}
}

func TestDecodeKnownOpcodes(t *testing.T) {
	tests := []struct {
		name       string
		opcode     uint8
		mode       AddrMode
		operation  Operation
		cycles     uint8
		pageCycles uint8
	}{
		{"BRK", 0x00, Implied, BRK, 7, 0},
		{"ORA indirect x", 0x01, IndirectX, ORA, 6, 0},
		{"JSR", 0x20, Absolute, JSR, 6, 0},
		{"JMP absolute", 0x4C, Absolute, JMP, 3, 0},
		{"JMP indirect", 0x6C, Indirect, JMP, 5, 0},
		{"STA indirect y never awards page cycle", 0x91, IndirectY, STA, 6, 0},
		{"STX zero page y", 0x96, ZeroPageY, STX, 4, 0},
		{"LDA immediate", 0xA9, Immediate, LDA, 2, 0},
		{"LDA absolute x", 0xBD, AbsoluteX, LDA, 4, 1},
		{"BNE", 0xD0, Relative, BNE, 2, 1},
		{"undocumented SLO", 0x03, IndirectX, SLO, 8, 0},
		{"undocumented LAX", 0xB3, IndirectY, LAX, 5, 1},
		{"undocumented SBC alias", 0xEB, Immediate, SBC, 2, 0},
		{"AXS", 0xCB, Immediate, AXS, 2, 0},
		{"DCP zero page x", 0xD7, ZeroPageX, DCP, 6, 0},
		{"CMP absolute y", 0xD9, AbsoluteY, CMP, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)
			assert.Equal(t, tt.mode, ins.Mode)
			assert.Equal(t, tt.operation, ins.Operation)
			assert.Equal(t, tt.cycles, ins.Cycles[0])
			assert.Equal(t, tt.pageCycles, ins.Cycles[1])
		})
	}
}

func TestDecodeHaltOpcodes(t *testing.T) {
	halts := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2}

	for _, opcode := range halts {
		ins := Decode(opcode)
		assert.Equal(t, KIL, ins.Operation)
		assert.Equal(t, Implied, ins.Mode)
		assert.Equal(t, uint8(1), ins.Cycles[0])
		assert.Equal(t, uint8(0), ins.Cycles[1])
	}
}

func TestBranchesAwardExtraCycle(t *testing.T) {
	branches := []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0}

	for _, opcode := range branches {
		ins := Decode(opcode)
		assert.Equal(t, Relative, ins.Mode)
		assert.Equal(t, uint8(2), ins.Cycles[0])
		assert.Equal(t, uint8(1), ins.Cycles[1])
	}
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "Instruction{opcode: 0xa9, op/addr: LDA/IMM, cycles: 2}", Decode(0xA9).String())
	assert.Equal(t, "Instruction{opcode: 0xbd, op/addr: LDA/ABX, cycles: 4(+1)}", Decode(0xBD).String())
}
