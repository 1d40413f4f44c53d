package cpu

// An OpCode is associated with a unique byte value (0x00-0xff). The
// entry carries everything the dispatcher and the trace need: how the
// operand is addressed, how many bytes the instruction occupies, and
// how many clock cycles it costs on hardware.
//
// Multiple opcode bytes may execute the same instruction, differing
// only in how the operand is retrieved; that is handled by the mode,
// not the handler.
type OpCode struct {
	Name string
	Mode AddressingMode

	// Bytes is the full instruction length including the opcode
	// byte, always 1 to 3.
	Bytes uint16

	// Cycles is the base cost; page-crossing penalties are not
	// modelled.
	Cycles byte

	// Illegal marks the undocumented instructions; the trace
	// prefixes them with an asterisk the way the nestest log does.
	Illegal bool

	Run func(*Cpu, AddressingMode) bool
}

// The Opcodes table lists every byte value the Cpu recognises: the 151
// documented values plus the undocumented forms a nestest run executes.
// Anything absent is reported at dispatch time.
var Opcodes = map[byte]OpCode{
	// Generated from http://www.6502.org/tutorials/6502opcodes.html

	0x69: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 2, Cycles: 2, Mode: Immediate},
	0x65: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x75: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x6D: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 3, Cycles: 4, Mode: Absolute},
	0x7D: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0x79: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0x61: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0x71: {Run: (*Cpu).ADC, Name: "ADC", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0x29: {Run: (*Cpu).AND, Name: "AND", Bytes: 2, Cycles: 2, Mode: Immediate},
	0x25: {Run: (*Cpu).AND, Name: "AND", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x35: {Run: (*Cpu).AND, Name: "AND", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x2D: {Run: (*Cpu).AND, Name: "AND", Bytes: 3, Cycles: 4, Mode: Absolute},
	0x3D: {Run: (*Cpu).AND, Name: "AND", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0x39: {Run: (*Cpu).AND, Name: "AND", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0x21: {Run: (*Cpu).AND, Name: "AND", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0x31: {Run: (*Cpu).AND, Name: "AND", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0x0A: {Run: (*Cpu).ASL, Name: "ASL", Bytes: 1, Cycles: 2, Mode: Accumulator},
	0x06: {Run: (*Cpu).ASL, Name: "ASL", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0x16: {Run: (*Cpu).ASL, Name: "ASL", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0x0E: {Run: (*Cpu).ASL, Name: "ASL", Bytes: 3, Cycles: 6, Mode: Absolute},
	0x1E: {Run: (*Cpu).ASL, Name: "ASL", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0x24: {Run: (*Cpu).BIT, Name: "BIT", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x2C: {Run: (*Cpu).BIT, Name: "BIT", Bytes: 3, Cycles: 4, Mode: Absolute},

	0x00: {Run: (*Cpu).BRK, Name: "BRK", Bytes: 1, Cycles: 7, Mode: Implied},

	0xC9: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xC5: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xD5: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0xCD: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 3, Cycles: 4, Mode: Absolute},
	0xDD: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0xD9: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0xC1: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0xD1: {Run: (*Cpu).CMP, Name: "CMP", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0xE0: {Run: (*Cpu).CPX, Name: "CPX", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xE4: {Run: (*Cpu).CPX, Name: "CPX", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xEC: {Run: (*Cpu).CPX, Name: "CPX", Bytes: 3, Cycles: 4, Mode: Absolute},

	0xC0: {Run: (*Cpu).CPY, Name: "CPY", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xC4: {Run: (*Cpu).CPY, Name: "CPY", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xCC: {Run: (*Cpu).CPY, Name: "CPY", Bytes: 3, Cycles: 4, Mode: Absolute},

	0xC6: {Run: (*Cpu).DEC, Name: "DEC", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0xD6: {Run: (*Cpu).DEC, Name: "DEC", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0xCE: {Run: (*Cpu).DEC, Name: "DEC", Bytes: 3, Cycles: 6, Mode: Absolute},
	0xDE: {Run: (*Cpu).DEC, Name: "DEC", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0x49: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 2, Cycles: 2, Mode: Immediate},
	0x45: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x55: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x4D: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 3, Cycles: 4, Mode: Absolute},
	0x5D: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0x59: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0x41: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0x51: {Run: (*Cpu).EOR, Name: "EOR", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0xE6: {Run: (*Cpu).INC, Name: "INC", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0xF6: {Run: (*Cpu).INC, Name: "INC", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0xEE: {Run: (*Cpu).INC, Name: "INC", Bytes: 3, Cycles: 6, Mode: Absolute},
	0xFE: {Run: (*Cpu).INC, Name: "INC", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0x4C: {Run: (*Cpu).JMP, Name: "JMP", Bytes: 3, Cycles: 3, Mode: Absolute},
	0x6C: {Run: (*Cpu).JMP, Name: "JMP", Bytes: 3, Cycles: 5, Mode: Indirect},
	0x20: {Run: (*Cpu).JSR, Name: "JSR", Bytes: 3, Cycles: 6, Mode: Absolute},

	0xA9: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xA5: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xB5: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0xAD: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 3, Cycles: 4, Mode: Absolute},
	0xBD: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0xB9: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0xA1: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0xB1: {Run: (*Cpu).LDA, Name: "LDA", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0xA2: {Run: (*Cpu).LDX, Name: "LDX", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xA6: {Run: (*Cpu).LDX, Name: "LDX", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xB6: {Run: (*Cpu).LDX, Name: "LDX", Bytes: 2, Cycles: 4, Mode: ZeroPageY},
	0xAE: {Run: (*Cpu).LDX, Name: "LDX", Bytes: 3, Cycles: 4, Mode: Absolute},
	0xBE: {Run: (*Cpu).LDX, Name: "LDX", Bytes: 3, Cycles: 4, Mode: AbsoluteY},

	0xA0: {Run: (*Cpu).LDY, Name: "LDY", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xA4: {Run: (*Cpu).LDY, Name: "LDY", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xB4: {Run: (*Cpu).LDY, Name: "LDY", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0xAC: {Run: (*Cpu).LDY, Name: "LDY", Bytes: 3, Cycles: 4, Mode: Absolute},
	0xBC: {Run: (*Cpu).LDY, Name: "LDY", Bytes: 3, Cycles: 4, Mode: AbsoluteX},

	0x4A: {Run: (*Cpu).LSR, Name: "LSR", Bytes: 1, Cycles: 2, Mode: Accumulator},
	0x46: {Run: (*Cpu).LSR, Name: "LSR", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0x56: {Run: (*Cpu).LSR, Name: "LSR", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0x4E: {Run: (*Cpu).LSR, Name: "LSR", Bytes: 3, Cycles: 6, Mode: Absolute},
	0x5E: {Run: (*Cpu).LSR, Name: "LSR", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0xEA: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied},

	0x09: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 2, Cycles: 2, Mode: Immediate},
	0x05: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x15: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x0D: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 3, Cycles: 4, Mode: Absolute},
	0x1D: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0x19: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0x01: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0x11: {Run: (*Cpu).ORA, Name: "ORA", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0x2A: {Run: (*Cpu).ROL, Name: "ROL", Bytes: 1, Cycles: 2, Mode: Accumulator},
	0x26: {Run: (*Cpu).ROL, Name: "ROL", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0x36: {Run: (*Cpu).ROL, Name: "ROL", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0x2E: {Run: (*Cpu).ROL, Name: "ROL", Bytes: 3, Cycles: 6, Mode: Absolute},
	0x3E: {Run: (*Cpu).ROL, Name: "ROL", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0x6A: {Run: (*Cpu).ROR, Name: "ROR", Bytes: 1, Cycles: 2, Mode: Accumulator},
	0x66: {Run: (*Cpu).ROR, Name: "ROR", Bytes: 2, Cycles: 5, Mode: ZeroPage},
	0x76: {Run: (*Cpu).ROR, Name: "ROR", Bytes: 2, Cycles: 6, Mode: ZeroPageX},
	0x6E: {Run: (*Cpu).ROR, Name: "ROR", Bytes: 3, Cycles: 6, Mode: Absolute},
	0x7E: {Run: (*Cpu).ROR, Name: "ROR", Bytes: 3, Cycles: 7, Mode: AbsoluteX},

	0x40: {Run: (*Cpu).RTI, Name: "RTI", Bytes: 1, Cycles: 6, Mode: Implied},
	0x60: {Run: (*Cpu).RTS, Name: "RTS", Bytes: 1, Cycles: 6, Mode: Implied},

	0xE9: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 2, Mode: Immediate},
	0xE5: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0xF5: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0xED: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 3, Cycles: 4, Mode: Absolute},
	0xFD: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 3, Cycles: 4, Mode: AbsoluteX},
	0xF9: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 3, Cycles: 4, Mode: AbsoluteY},
	0xE1: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0xF1: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 5, Mode: IndirectY},

	0x85: {Run: (*Cpu).STA, Name: "STA", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x95: {Run: (*Cpu).STA, Name: "STA", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x8D: {Run: (*Cpu).STA, Name: "STA", Bytes: 3, Cycles: 4, Mode: Absolute},
	0x9D: {Run: (*Cpu).STA, Name: "STA", Bytes: 3, Cycles: 5, Mode: AbsoluteX},
	0x99: {Run: (*Cpu).STA, Name: "STA", Bytes: 3, Cycles: 5, Mode: AbsoluteY},
	0x81: {Run: (*Cpu).STA, Name: "STA", Bytes: 2, Cycles: 6, Mode: IndirectX},
	0x91: {Run: (*Cpu).STA, Name: "STA", Bytes: 2, Cycles: 6, Mode: IndirectY},

	0x86: {Run: (*Cpu).STX, Name: "STX", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x96: {Run: (*Cpu).STX, Name: "STX", Bytes: 2, Cycles: 4, Mode: ZeroPageY},
	0x8E: {Run: (*Cpu).STX, Name: "STX", Bytes: 3, Cycles: 4, Mode: Absolute},

	0x84: {Run: (*Cpu).STY, Name: "STY", Bytes: 2, Cycles: 3, Mode: ZeroPage},
	0x94: {Run: (*Cpu).STY, Name: "STY", Bytes: 2, Cycles: 4, Mode: ZeroPageX},
	0x8C: {Run: (*Cpu).STY, Name: "STY", Bytes: 3, Cycles: 4, Mode: Absolute},

	// clear, set
	0x18: {Run: (*Cpu).CLC, Name: "CLC", Bytes: 1, Cycles: 2, Mode: Implied},
	0x38: {Run: (*Cpu).SEC, Name: "SEC", Bytes: 1, Cycles: 2, Mode: Implied},
	0x58: {Run: (*Cpu).CLI, Name: "CLI", Bytes: 1, Cycles: 2, Mode: Implied},
	0x78: {Run: (*Cpu).SEI, Name: "SEI", Bytes: 1, Cycles: 2, Mode: Implied},
	0xB8: {Run: (*Cpu).CLV, Name: "CLV", Bytes: 1, Cycles: 2, Mode: Implied},
	0xD8: {Run: (*Cpu).CLD, Name: "CLD", Bytes: 1, Cycles: 2, Mode: Implied},
	0xF8: {Run: (*Cpu).SED, Name: "SED", Bytes: 1, Cycles: 2, Mode: Implied},

	// increment, decrement, transfer
	0xAA: {Run: (*Cpu).TAX, Name: "TAX", Bytes: 1, Cycles: 2, Mode: Implied},
	0x8A: {Run: (*Cpu).TXA, Name: "TXA", Bytes: 1, Cycles: 2, Mode: Implied},
	0xCA: {Run: (*Cpu).DEX, Name: "DEX", Bytes: 1, Cycles: 2, Mode: Implied},
	0xE8: {Run: (*Cpu).INX, Name: "INX", Bytes: 1, Cycles: 2, Mode: Implied},
	0xA8: {Run: (*Cpu).TAY, Name: "TAY", Bytes: 1, Cycles: 2, Mode: Implied},
	0x98: {Run: (*Cpu).TYA, Name: "TYA", Bytes: 1, Cycles: 2, Mode: Implied},
	0x88: {Run: (*Cpu).DEY, Name: "DEY", Bytes: 1, Cycles: 2, Mode: Implied},
	0xC8: {Run: (*Cpu).INY, Name: "INY", Bytes: 1, Cycles: 2, Mode: Implied},

	// branch
	0x10: {Run: (*Cpu).BPL, Name: "BPL", Bytes: 2, Cycles: 2, Mode: Relative},
	0x30: {Run: (*Cpu).BMI, Name: "BMI", Bytes: 2, Cycles: 2, Mode: Relative},
	0x50: {Run: (*Cpu).BVC, Name: "BVC", Bytes: 2, Cycles: 2, Mode: Relative},
	0x70: {Run: (*Cpu).BVS, Name: "BVS", Bytes: 2, Cycles: 2, Mode: Relative},
	0x90: {Run: (*Cpu).BCC, Name: "BCC", Bytes: 2, Cycles: 2, Mode: Relative},
	0xB0: {Run: (*Cpu).BCS, Name: "BCS", Bytes: 2, Cycles: 2, Mode: Relative},
	0xD0: {Run: (*Cpu).BNE, Name: "BNE", Bytes: 2, Cycles: 2, Mode: Relative},
	0xF0: {Run: (*Cpu).BEQ, Name: "BEQ", Bytes: 2, Cycles: 2, Mode: Relative},

	// stack
	0x9A: {Run: (*Cpu).TXS, Name: "TXS", Bytes: 1, Cycles: 2, Mode: Implied},
	0xBA: {Run: (*Cpu).TSX, Name: "TSX", Bytes: 1, Cycles: 2, Mode: Implied},
	0x48: {Run: (*Cpu).PHA, Name: "PHA", Bytes: 1, Cycles: 3, Mode: Implied},
	0x68: {Run: (*Cpu).PLA, Name: "PLA", Bytes: 1, Cycles: 4, Mode: Implied},
	0x08: {Run: (*Cpu).PHP, Name: "PHP", Bytes: 1, Cycles: 3, Mode: Implied},
	0x28: {Run: (*Cpu).PLP, Name: "PLP", Bytes: 1, Cycles: 4, Mode: Implied},

	// Undocumented instructions below. Values and costs from
	// https://www.nesdev.org/undocumented_opcodes.txt

	// implied NOPs
	0x1A: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},
	0x3A: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},
	0x5A: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},
	0x7A: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},
	0xDA: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},
	0xFA: {Run: (*Cpu).NOP, Name: "NOP", Bytes: 1, Cycles: 2, Mode: Implied, Illegal: true},

	// skip-byte: immediate operand, read and discarded
	0x80: {Run: (*Cpu).SKB, Name: "SKB", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},
	0x82: {Run: (*Cpu).SKB, Name: "SKB", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},
	0x89: {Run: (*Cpu).SKB, Name: "SKB", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},
	0xC2: {Run: (*Cpu).SKB, Name: "SKB", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},
	0xE2: {Run: (*Cpu).SKB, Name: "SKB", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},

	// ignore: memory operand, read for its side effects only
	0x04: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 3, Mode: ZeroPage, Illegal: true},
	0x44: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 3, Mode: ZeroPage, Illegal: true},
	0x64: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 3, Mode: ZeroPage, Illegal: true},
	0x14: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0x34: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0x54: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0x74: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0xD4: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0xF4: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 2, Cycles: 4, Mode: ZeroPageX, Illegal: true},
	0x0C: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: Absolute, Illegal: true},
	0x1C: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},
	0x3C: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},
	0x5C: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},
	0x7C: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},
	0xDC: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},
	0xFC: {Run: (*Cpu).IGN, Name: "IGN", Bytes: 3, Cycles: 4, Mode: AbsoluteX, Illegal: true},

	0xA7: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 2, Cycles: 3, Mode: ZeroPage, Illegal: true},
	0xB7: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, Illegal: true},
	0xAF: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 3, Cycles: 4, Mode: Absolute, Illegal: true},
	0xBF: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 3, Cycles: 4, Mode: AbsoluteY, Illegal: true},
	0xA3: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 2, Cycles: 6, Mode: IndirectX, Illegal: true},
	0xB3: {Run: (*Cpu).LAX, Name: "LAX", Bytes: 2, Cycles: 5, Mode: IndirectY, Illegal: true},

	0x87: {Run: (*Cpu).SAX, Name: "SAX", Bytes: 2, Cycles: 3, Mode: ZeroPage, Illegal: true},
	0x97: {Run: (*Cpu).SAX, Name: "SAX", Bytes: 2, Cycles: 4, Mode: ZeroPageY, Illegal: true},
	0x8F: {Run: (*Cpu).SAX, Name: "SAX", Bytes: 3, Cycles: 4, Mode: Absolute, Illegal: true},
	0x83: {Run: (*Cpu).SAX, Name: "SAX", Bytes: 2, Cycles: 6, Mode: IndirectX, Illegal: true},

	// 0xEB behaves exactly like the official SBC immediate
	0xEB: {Run: (*Cpu).SBC, Name: "SBC", Bytes: 2, Cycles: 2, Mode: Immediate, Illegal: true},

	0xC7: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0xD7: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0xCF: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0xDF: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0xDB: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0xC3: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0xD3: {Run: (*Cpu).DCP, Name: "DCP", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},

	0xE7: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0xF7: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0xEF: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0xFF: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0xFB: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0xE3: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0xF3: {Run: (*Cpu).ISC, Name: "ISC", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},

	0x07: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0x17: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0x0F: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0x1F: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0x1B: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0x03: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0x13: {Run: (*Cpu).SLO, Name: "SLO", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},

	0x27: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0x37: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0x2F: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0x3F: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0x3B: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0x23: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0x33: {Run: (*Cpu).RLA, Name: "RLA", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},

	0x47: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0x57: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0x4F: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0x5F: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0x5B: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0x43: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0x53: {Run: (*Cpu).SRE, Name: "SRE", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},

	0x67: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 2, Cycles: 5, Mode: ZeroPage, Illegal: true},
	0x77: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 2, Cycles: 6, Mode: ZeroPageX, Illegal: true},
	0x6F: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 3, Cycles: 6, Mode: Absolute, Illegal: true},
	0x7F: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 3, Cycles: 7, Mode: AbsoluteX, Illegal: true},
	0x7B: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 3, Cycles: 7, Mode: AbsoluteY, Illegal: true},
	0x63: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 2, Cycles: 8, Mode: IndirectX, Illegal: true},
	0x73: {Run: (*Cpu).RRA, Name: "RRA", Bytes: 2, Cycles: 8, Mode: IndirectY, Illegal: true},
}
