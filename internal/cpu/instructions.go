// Package cpu implements instruction decoding for the 6502 CPU core.
package cpu

import "fmt"

// AddrMode is the operand addressing mode of an instruction. The twelve
// modes are a closed set; no opcode references anything outside it.
type AddrMode uint8

const (
	Implied   AddrMode = iota // operand implied by the operation
	Immediate                 // operand is the next byte
	ZeroPage                  // one-byte address into page zero
	ZeroPageX                 // zero page indexed by X
	ZeroPageY                 // zero page indexed by Y
	Relative                  // signed offset, branches only
	Absolute                  // two-byte address
	AbsoluteX                 // absolute indexed by X
	AbsoluteY                 // absolute indexed by Y
	Indirect                  // JMP (addr)
	IndirectX                 // pre-indexed indirect, (zp,X)
	IndirectY                 // post-indexed indirect, (zp),Y
)

var addrModeNames = [...]string{
	"IMP", "IMM", "ZP0", "ZPX", "ZPY", "REL",
	"ABS", "ABX", "ABY", "IND", "IZX", "IZY",
}

func (m AddrMode) String() string {
	if int(m) >= len(addrModeNames) {
		return fmt.Sprintf("AddrMode(%d)", m)
	}
	return addrModeNames[m]
}

// Operation is the instruction mnemonic. The set covers the documented
// 6502 instructions plus the commonly emulated undocumented ones.
type Operation uint8

const (
	ADC Operation = iota
	AHX
	ALR
	ANC
	AND
	ARR
	ASL
	AXS
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DCP
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	ISB
	JMP
	JSR
	KIL
	LAS
	LAX
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	RLA
	ROL
	ROR
	RRA
	RTI
	RTS
	SAX
	SBC
	SEC
	SED
	SEI
	SHX
	SHY
	SLO
	SRE
	STA
	STX
	STY
	TAS
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	XAA
)

var operationNames = [...]string{
	"ADC", "AHX", "ALR", "ANC", "AND", "ARR", "ASL", "AXS",
	"BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL", "BRK",
	"BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DCP", "DEC", "DEX", "DEY", "EOR", "INC", "INX",
	"INY", "ISB", "JMP", "JSR", "KIL", "LAS", "LAX", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA",
	"PLP", "RLA", "ROL", "ROR", "RRA", "RTI", "RTS", "SAX",
	"SBC", "SEC", "SED", "SEI", "SHX", "SHY", "SLO", "SRE",
	"STA", "STX", "STY", "TAS", "TAX", "TAY", "TSX", "TXA",
	"TXS", "TYA", "XAA",
}

func (op Operation) String() string {
	if int(op) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", op)
	}
	return operationNames[op]
}

// Instruction is one immutable decode table entry.
type Instruction struct {
	Opcode    uint8
	Mode      AddrMode
	Operation Operation

	// Cycles[0] is the base cycle cost. Cycles[1] is the extra cycle
	// awarded on a page-boundary cross or a taken branch, 0 if never
	// applicable.
	Cycles [2]uint8
}

func (i Instruction) String() string {
	if i.Cycles[1] == 0 {
		return fmt.Sprintf("Instruction{opcode: %#02x, op/addr: %v/%v, cycles: %d}",
			i.Opcode, i.Operation, i.Mode, i.Cycles[0])
	}
	return fmt.Sprintf("Instruction{opcode: %#02x, op/addr: %v/%v, cycles: %d(+%d)}",
		i.Opcode, i.Operation, i.Mode, i.Cycles[0], i.Cycles[1])
}

// Decode returns the table entry for an opcode byte. Decoding is total:
// every value 0x00-0xFF has exactly one entry.
func Decode(opcode uint8) Instruction {
	return instructionSet[opcode]
}

// The table is indexed directly by opcode, which makes a missing entry
// structurally impossible. init still cross-checks the recorded opcodes
// against their slots; a mismatch is a defect in the table itself.
func init() {
	for i := range instructionSet {
		if int(instructionSet[i].Opcode) != i {
			panic(fmt.Sprintf("instruction table corrupt at %#02x: %v", i, instructionSet[i]))
		}
	}
}

var instructionSet = [256]Instruction{
	// 0x00
	{0x00, Implied, BRK, [2]uint8{7, 0}},
	{0x01, IndirectX, ORA, [2]uint8{6, 0}},
	{0x02, Implied, KIL, [2]uint8{1, 0}},
	{0x03, IndirectX, SLO, [2]uint8{8, 0}},
	{0x04, ZeroPage, NOP, [2]uint8{3, 0}},
	{0x05, ZeroPage, ORA, [2]uint8{3, 0}},
	{0x06, ZeroPage, ASL, [2]uint8{5, 0}},
	{0x07, ZeroPage, SLO, [2]uint8{5, 0}},
	{0x08, Implied, PHP, [2]uint8{3, 0}},
	{0x09, Immediate, ORA, [2]uint8{2, 0}},
	{0x0A, Implied, ASL, [2]uint8{2, 0}},
	{0x0B, Immediate, ANC, [2]uint8{2, 0}},
	{0x0C, Absolute, NOP, [2]uint8{4, 0}},
	{0x0D, Absolute, ORA, [2]uint8{4, 0}},
	{0x0E, Absolute, ASL, [2]uint8{6, 0}},
	{0x0F, Absolute, SLO, [2]uint8{6, 0}},
	// 0x10
	{0x10, Relative, BPL, [2]uint8{2, 1}},
	{0x11, IndirectY, ORA, [2]uint8{5, 1}},
	{0x12, Implied, KIL, [2]uint8{1, 0}},
	{0x13, IndirectY, SLO, [2]uint8{8, 0}},
	{0x14, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0x15, ZeroPageX, ORA, [2]uint8{4, 0}},
	{0x16, ZeroPageX, ASL, [2]uint8{6, 0}},
	{0x17, ZeroPageX, SLO, [2]uint8{6, 0}},
	{0x18, Implied, CLC, [2]uint8{2, 0}},
	{0x19, AbsoluteY, ORA, [2]uint8{4, 1}},
	{0x1A, Implied, NOP, [2]uint8{2, 0}},
	{0x1B, AbsoluteY, SLO, [2]uint8{7, 0}},
	{0x1C, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0x1D, AbsoluteX, ORA, [2]uint8{4, 1}},
	{0x1E, AbsoluteX, ASL, [2]uint8{7, 0}},
	{0x1F, AbsoluteX, SLO, [2]uint8{7, 0}},
	// 0x20
	{0x20, Absolute, JSR, [2]uint8{6, 0}},
	{0x21, IndirectX, AND, [2]uint8{6, 0}},
	{0x22, Implied, KIL, [2]uint8{1, 0}},
	{0x23, IndirectX, RLA, [2]uint8{8, 0}},
	{0x24, ZeroPage, BIT, [2]uint8{3, 0}},
	{0x25, ZeroPage, AND, [2]uint8{3, 0}},
	{0x26, ZeroPage, ROL, [2]uint8{5, 0}},
	{0x27, ZeroPage, RLA, [2]uint8{5, 0}},
	{0x28, Implied, PLP, [2]uint8{4, 0}},
	{0x29, Immediate, AND, [2]uint8{2, 0}},
	{0x2A, Implied, ROL, [2]uint8{2, 0}},
	{0x2B, Immediate, ANC, [2]uint8{2, 0}},
	{0x2C, Absolute, BIT, [2]uint8{4, 0}},
	{0x2D, Absolute, AND, [2]uint8{4, 0}},
	{0x2E, Absolute, ROL, [2]uint8{6, 0}},
	{0x2F, Absolute, RLA, [2]uint8{6, 0}},
	// 0x30
	{0x30, Relative, BMI, [2]uint8{2, 1}},
	{0x31, IndirectY, AND, [2]uint8{5, 1}},
	{0x32, Implied, KIL, [2]uint8{1, 0}},
	{0x33, IndirectY, RLA, [2]uint8{8, 0}},
	{0x34, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0x35, ZeroPageX, AND, [2]uint8{4, 0}},
	{0x36, ZeroPageX, ROL, [2]uint8{6, 0}},
	{0x37, ZeroPageX, RLA, [2]uint8{6, 0}},
	{0x38, Implied, SEC, [2]uint8{2, 0}},
	{0x39, AbsoluteY, AND, [2]uint8{4, 1}},
	{0x3A, Implied, NOP, [2]uint8{2, 0}},
	{0x3B, AbsoluteY, RLA, [2]uint8{7, 0}},
	{0x3C, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0x3D, AbsoluteX, AND, [2]uint8{4, 1}},
	{0x3E, AbsoluteX, ROL, [2]uint8{7, 0}},
	{0x3F, AbsoluteX, RLA, [2]uint8{7, 0}},
	// 0x40
	{0x40, Implied, RTI, [2]uint8{6, 0}},
	{0x41, IndirectX, EOR, [2]uint8{6, 0}},
	{0x42, Implied, KIL, [2]uint8{1, 0}},
	{0x43, IndirectX, SRE, [2]uint8{8, 0}},
	{0x44, ZeroPage, NOP, [2]uint8{3, 0}},
	{0x45, ZeroPage, EOR, [2]uint8{3, 0}},
	{0x46, ZeroPage, LSR, [2]uint8{5, 0}},
	{0x47, ZeroPage, SRE, [2]uint8{5, 0}},
	{0x48, Implied, PHA, [2]uint8{3, 0}},
	{0x49, Immediate, EOR, [2]uint8{2, 0}},
	{0x4A, Implied, LSR, [2]uint8{2, 0}},
	{0x4B, Immediate, ALR, [2]uint8{2, 0}},
	{0x4C, Absolute, JMP, [2]uint8{3, 0}},
	{0x4D, Absolute, EOR, [2]uint8{4, 0}},
	{0x4E, Absolute, LSR, [2]uint8{6, 0}},
	{0x4F, Absolute, SRE, [2]uint8{6, 0}},
	// 0x50
	{0x50, Relative, BVC, [2]uint8{2, 1}},
	{0x51, IndirectY, EOR, [2]uint8{5, 1}},
	{0x52, Implied, KIL, [2]uint8{1, 0}},
	{0x53, IndirectY, SRE, [2]uint8{8, 0}},
	{0x54, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0x55, ZeroPageX, EOR, [2]uint8{4, 0}},
	{0x56, ZeroPageX, LSR, [2]uint8{6, 0}},
	{0x57, ZeroPageX, SRE, [2]uint8{6, 0}},
	{0x58, Implied, CLI, [2]uint8{2, 0}},
	{0x59, AbsoluteY, EOR, [2]uint8{4, 1}},
	{0x5A, Implied, NOP, [2]uint8{2, 0}},
	{0x5B, AbsoluteY, SRE, [2]uint8{7, 0}},
	{0x5C, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0x5D, AbsoluteX, EOR, [2]uint8{4, 1}},
	{0x5E, AbsoluteX, LSR, [2]uint8{7, 0}},
	{0x5F, AbsoluteX, SRE, [2]uint8{7, 0}},
	// 0x60
	{0x60, Implied, RTS, [2]uint8{6, 0}},
	{0x61, IndirectX, ADC, [2]uint8{6, 0}},
	{0x62, Implied, KIL, [2]uint8{1, 0}},
	{0x63, IndirectX, RRA, [2]uint8{8, 0}},
	{0x64, ZeroPage, NOP, [2]uint8{3, 0}},
	{0x65, ZeroPage, ADC, [2]uint8{3, 0}},
	{0x66, ZeroPage, ROR, [2]uint8{5, 0}},
	{0x67, ZeroPage, RRA, [2]uint8{5, 0}},
	{0x68, Implied, PLA, [2]uint8{4, 0}},
	{0x69, Immediate, ADC, [2]uint8{2, 0}},
	{0x6A, Implied, ROR, [2]uint8{2, 0}},
	{0x6B, Immediate, ARR, [2]uint8{2, 0}},
	{0x6C, Indirect, JMP, [2]uint8{5, 0}},
	{0x6D, Absolute, ADC, [2]uint8{4, 0}},
	{0x6E, Absolute, ROR, [2]uint8{6, 0}},
	{0x6F, Absolute, RRA, [2]uint8{6, 0}},
	// 0x70
	{0x70, Relative, BVS, [2]uint8{2, 1}},
	{0x71, IndirectY, ADC, [2]uint8{5, 1}},
	{0x72, Implied, KIL, [2]uint8{1, 0}},
	{0x73, IndirectY, RRA, [2]uint8{8, 0}},
	{0x74, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0x75, ZeroPageX, ADC, [2]uint8{4, 0}},
	{0x76, ZeroPageX, ROR, [2]uint8{6, 0}},
	{0x77, ZeroPageX, RRA, [2]uint8{6, 0}},
	{0x78, Implied, SEI, [2]uint8{2, 0}},
	{0x79, AbsoluteY, ADC, [2]uint8{4, 1}},
	{0x7A, Implied, NOP, [2]uint8{2, 0}},
	{0x7B, AbsoluteY, RRA, [2]uint8{7, 0}},
	{0x7C, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0x7D, AbsoluteX, ADC, [2]uint8{4, 1}},
	{0x7E, AbsoluteX, ROR, [2]uint8{7, 0}},
	{0x7F, AbsoluteX, RRA, [2]uint8{7, 0}},
	// 0x80
	{0x80, Immediate, NOP, [2]uint8{2, 0}},
	{0x81, IndirectX, STA, [2]uint8{6, 0}},
	{0x82, Immediate, NOP, [2]uint8{2, 0}},
	{0x83, IndirectX, SAX, [2]uint8{6, 0}},
	{0x84, ZeroPage, STY, [2]uint8{3, 0}},
	{0x85, ZeroPage, STA, [2]uint8{3, 0}},
	{0x86, ZeroPage, STX, [2]uint8{3, 0}},
	{0x87, ZeroPage, SAX, [2]uint8{3, 0}},
	{0x88, Implied, DEY, [2]uint8{2, 0}},
	{0x89, Immediate, NOP, [2]uint8{2, 0}},
	{0x8A, Implied, TXA, [2]uint8{2, 0}},
	{0x8B, Immediate, XAA, [2]uint8{2, 0}},
	{0x8C, Absolute, STY, [2]uint8{4, 0}},
	{0x8D, Absolute, STA, [2]uint8{4, 0}},
	{0x8E, Absolute, STX, [2]uint8{4, 0}},
	{0x8F, Absolute, SAX, [2]uint8{4, 0}},
	// 0x90
	{0x90, Relative, BCC, [2]uint8{2, 1}},
	{0x91, IndirectY, STA, [2]uint8{6, 0}},
	{0x92, Implied, KIL, [2]uint8{1, 0}},
	{0x93, IndirectY, AHX, [2]uint8{6, 0}},
	{0x94, ZeroPageX, STY, [2]uint8{4, 0}},
	{0x95, ZeroPageX, STA, [2]uint8{4, 0}},
	{0x96, ZeroPageY, STX, [2]uint8{4, 0}},
	{0x97, ZeroPageY, SAX, [2]uint8{4, 0}},
	{0x98, Implied, TYA, [2]uint8{2, 0}},
	{0x99, AbsoluteY, STA, [2]uint8{5, 0}},
	{0x9A, Implied, TXS, [2]uint8{2, 0}},
	{0x9B, AbsoluteY, TAS, [2]uint8{5, 0}},
	{0x9C, AbsoluteX, SHY, [2]uint8{5, 0}},
	{0x9D, AbsoluteX, STA, [2]uint8{5, 0}},
	{0x9E, AbsoluteY, SHX, [2]uint8{5, 0}},
	{0x9F, AbsoluteY, AHX, [2]uint8{5, 0}},
	// 0xA0
	{0xA0, Immediate, LDY, [2]uint8{2, 0}},
	{0xA1, IndirectX, LDA, [2]uint8{6, 0}},
	{0xA2, Immediate, LDX, [2]uint8{2, 0}},
	{0xA3, IndirectX, LAX, [2]uint8{6, 0}},
	{0xA4, ZeroPage, LDY, [2]uint8{3, 0}},
	{0xA5, ZeroPage, LDA, [2]uint8{3, 0}},
	{0xA6, ZeroPage, LDX, [2]uint8{3, 0}},
	{0xA7, ZeroPage, LAX, [2]uint8{3, 0}},
	{0xA8, Implied, TAY, [2]uint8{2, 0}},
	{0xA9, Immediate, LDA, [2]uint8{2, 0}},
	{0xAA, Implied, TAX, [2]uint8{2, 0}},
	{0xAB, Immediate, LAX, [2]uint8{2, 0}},
	{0xAC, Absolute, LDY, [2]uint8{4, 0}},
	{0xAD, Absolute, LDA, [2]uint8{4, 0}},
	{0xAE, Absolute, LDX, [2]uint8{4, 0}},
	{0xAF, Absolute, LAX, [2]uint8{4, 0}},
	// 0xB0
	{0xB0, Relative, BCS, [2]uint8{2, 1}},
	{0xB1, IndirectY, LDA, [2]uint8{5, 1}},
	{0xB2, Implied, KIL, [2]uint8{1, 0}},
	{0xB3, IndirectY, LAX, [2]uint8{5, 1}},
	{0xB4, ZeroPageX, LDY, [2]uint8{4, 0}},
	{0xB5, ZeroPageX, LDA, [2]uint8{4, 0}},
	{0xB6, ZeroPageY, LDX, [2]uint8{4, 0}},
	{0xB7, ZeroPageY, LAX, [2]uint8{4, 0}},
	{0xB8, Implied, CLV, [2]uint8{2, 0}},
	{0xB9, AbsoluteY, LDA, [2]uint8{4, 1}},
	{0xBA, Implied, TSX, [2]uint8{2, 0}},
	{0xBB, AbsoluteY, LAS, [2]uint8{4, 1}},
	{0xBC, AbsoluteX, LDY, [2]uint8{4, 1}},
	{0xBD, AbsoluteX, LDA, [2]uint8{4, 1}},
	{0xBE, AbsoluteY, LDX, [2]uint8{4, 1}},
	{0xBF, AbsoluteY, LAX, [2]uint8{4, 1}},
	// 0xC0
	{0xC0, Immediate, CPY, [2]uint8{2, 0}},
	{0xC1, IndirectX, CMP, [2]uint8{6, 0}},
	{0xC2, Immediate, NOP, [2]uint8{2, 0}},
	{0xC3, IndirectX, DCP, [2]uint8{8, 0}},
	{0xC4, ZeroPage, CPY, [2]uint8{3, 0}},
	{0xC5, ZeroPage, CMP, [2]uint8{3, 0}},
	{0xC6, ZeroPage, DEC, [2]uint8{5, 0}},
	{0xC7, ZeroPage, DCP, [2]uint8{5, 0}},
	{0xC8, Implied, INY, [2]uint8{2, 0}},
	{0xC9, Immediate, CMP, [2]uint8{2, 0}},
	{0xCA, Implied, DEX, [2]uint8{2, 0}},
	{0xCB, Immediate, AXS, [2]uint8{2, 0}},
	{0xCC, Absolute, CPY, [2]uint8{4, 0}},
	{0xCD, Absolute, CMP, [2]uint8{4, 0}},
	{0xCE, Absolute, DEC, [2]uint8{6, 0}},
	{0xCF, Absolute, DCP, [2]uint8{6, 0}},
	// 0xD0
	{0xD0, Relative, BNE, [2]uint8{2, 1}},
	{0xD1, IndirectY, CMP, [2]uint8{5, 1}},
	{0xD2, Implied, KIL, [2]uint8{1, 0}},
	{0xD3, IndirectY, DCP, [2]uint8{8, 0}},
	{0xD4, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0xD5, ZeroPageX, CMP, [2]uint8{4, 0}},
	{0xD6, ZeroPageX, DEC, [2]uint8{6, 0}},
	{0xD7, ZeroPageX, DCP, [2]uint8{6, 0}},
	{0xD8, Implied, CLD, [2]uint8{2, 0}},
	{0xD9, AbsoluteY, CMP, [2]uint8{4, 1}},
	{0xDA, Implied, NOP, [2]uint8{2, 0}},
	{0xDB, AbsoluteY, DCP, [2]uint8{7, 0}},
	{0xDC, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0xDD, AbsoluteX, CMP, [2]uint8{4, 1}},
	{0xDE, AbsoluteX, DEC, [2]uint8{7, 0}},
	{0xDF, AbsoluteX, DCP, [2]uint8{7, 0}},
	// 0xE0
	{0xE0, Immediate, CPX, [2]uint8{2, 0}},
	{0xE1, IndirectX, SBC, [2]uint8{6, 0}},
	{0xE2, Immediate, NOP, [2]uint8{2, 0}},
	{0xE3, IndirectX, ISB, [2]uint8{8, 0}},
	{0xE4, ZeroPage, CPX, [2]uint8{3, 0}},
	{0xE5, ZeroPage, SBC, [2]uint8{3, 0}},
	{0xE6, ZeroPage, INC, [2]uint8{5, 0}},
	{0xE7, ZeroPage, ISB, [2]uint8{5, 0}},
	{0xE8, Implied, INX, [2]uint8{2, 0}},
	{0xE9, Immediate, SBC, [2]uint8{2, 0}},
	{0xEA, Implied, NOP, [2]uint8{2, 0}},
	{0xEB, Immediate, SBC, [2]uint8{2, 0}},
	{0xEC, Absolute, CPX, [2]uint8{4, 0}},
	{0xED, Absolute, SBC, [2]uint8{4, 0}},
	{0xEE, Absolute, INC, [2]uint8{6, 0}},
	{0xEF, Absolute, ISB, [2]uint8{6, 0}},
	// 0xF0
	{0xF0, Relative, BEQ, [2]uint8{2, 1}},
	{0xF1, IndirectY, SBC, [2]uint8{5, 1}},
	{0xF2, Implied, KIL, [2]uint8{1, 0}},
	{0xF3, IndirectY, ISB, [2]uint8{8, 0}},
	{0xF4, ZeroPageX, NOP, [2]uint8{4, 0}},
	{0xF5, ZeroPageX, SBC, [2]uint8{4, 0}},
	{0xF6, ZeroPageX, INC, [2]uint8{6, 0}},
	{0xF7, ZeroPageX, ISB, [2]uint8{6, 0}},
	{0xF8, Implied, SED, [2]uint8{2, 0}},
	{0xF9, AbsoluteY, SBC, [2]uint8{4, 1}},
	{0xFA, Implied, NOP, [2]uint8{2, 0}},
	{0xFB, AbsoluteY, ISB, [2]uint8{7, 0}},
	{0xFC, AbsoluteX, NOP, [2]uint8{4, 1}},
	{0xFD, AbsoluteX, SBC, [2]uint8{4, 1}},
	{0xFE, AbsoluteX, INC, [2]uint8{7, 0}},
	{0xFF, AbsoluteX, ISB, [2]uint8{7, 0}},
}
