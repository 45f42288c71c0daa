// Package disasm supplies the opcode-name lookup the log sink uses to
// annotate instruction-fetch reads. It is not a full disassembler: the
// orchestrator only ever needs the mnemonic of the byte it just fetched,
// not operand formatting, so this package is a flat 256-entry table
// rather than the addressing-mode-aware instruction set the teacher's
// dis/disassembler package builds for its standalone CLI.
package disasm

// Name returns the mnemonic for opcode, or "???" for bytes that decode
// to no defined WDC 65C02 instruction.
func Name(opcode uint8) string {
	name := opcodeNames[opcode]
	if name == "" {
		return "???"
	}
	return name
}

// opcodeNames mirrors original_source/emulator/src/system.rs's OPCODES
// table, extended with the 65C02 mnemonics cpu/opcodes.go actually emits
// (BRA, STZ, PHX/PHY/PLX/PLY, TRB/TSB, WAI, STP) in place of the
// original's "<invalid: NOP ...>" placeholders for those slots.
var opcodeNames = [256]string{
	0x00: "BRK", 0x01: "ORA (zp,X)", 0x04: "TSB zp", 0x05: "ORA zp", 0x06: "ASL zp",
	0x08: "PHP", 0x09: "ORA #", 0x0A: "ASL A", 0x0C: "TSB abs", 0x0D: "ORA abs", 0x0E: "ASL abs",

	0x10: "BPL rel", 0x11: "ORA (zp),Y", 0x12: "ORA (zp)", 0x14: "TRB zp", 0x15: "ORA zp,X",
	0x16: "ASL zp,X", 0x18: "CLC", 0x19: "ORA abs,Y", 0x1A: "INC A", 0x1C: "TRB abs",
	0x1D: "ORA abs,X", 0x1E: "ASL abs,X",

	0x20: "JSR abs", 0x21: "AND (zp,X)", 0x24: "BIT zp", 0x25: "AND zp", 0x26: "ROL zp",
	0x28: "PLP", 0x29: "AND #", 0x2A: "ROL A", 0x2C: "BIT abs", 0x2D: "AND abs", 0x2E: "ROL abs",

	0x30: "BMI rel", 0x31: "AND (zp),Y", 0x32: "AND (zp)", 0x34: "BIT zp,X", 0x35: "AND zp,X",
	0x36: "ROL zp,X", 0x38: "SEC", 0x39: "AND abs,Y", 0x3A: "DEC A", 0x3C: "BIT abs,X",
	0x3D: "AND abs,X", 0x3E: "ROL abs,X",

	0x40: "RTI", 0x41: "EOR (zp,X)", 0x45: "EOR zp", 0x46: "LSR zp", 0x48: "PHA",
	0x49: "EOR #", 0x4A: "LSR A", 0x4C: "JMP abs", 0x4D: "EOR abs", 0x4E: "LSR abs",

	0x50: "BVC rel", 0x51: "EOR (zp),Y", 0x52: "EOR (zp)", 0x55: "EOR zp,X", 0x56: "LSR zp,X",
	0x58: "CLI", 0x59: "EOR abs,Y", 0x5A: "PHY", 0x5D: "EOR abs,X", 0x5E: "LSR abs,X",

	0x60: "RTS", 0x61: "ADC (zp,X)", 0x64: "STZ zp", 0x65: "ADC zp", 0x66: "ROR zp",
	0x68: "PLA", 0x69: "ADC #", 0x6A: "ROR A", 0x6C: "JMP (abs)", 0x6D: "ADC abs", 0x6E: "ROR abs",

	0x70: "BVS rel", 0x71: "ADC (zp),Y", 0x72: "ADC (zp)", 0x74: "STZ zp,X", 0x75: "ADC zp,X",
	0x76: "ROR zp,X", 0x78: "SEI", 0x79: "ADC abs,Y", 0x7A: "PLY", 0x7C: "JMP (abs,X)",
	0x7D: "ADC abs,X", 0x7E: "ROR abs,X",

	0x80: "BRA rel", 0x81: "STA (zp,X)", 0x84: "STY zp", 0x85: "STA zp", 0x86: "STX zp",
	0x88: "DEY", 0x89: "BIT #", 0x8A: "TXA", 0x8C: "STY abs", 0x8D: "STA abs", 0x8E: "STX abs",

	0x90: "BCC rel", 0x91: "STA (zp),Y", 0x92: "STA (zp)", 0x94: "STY zp,X", 0x95: "STA zp,X",
	0x96: "STX zp,Y", 0x98: "TYA", 0x99: "STA abs,Y", 0x9A: "TXS", 0x9C: "STZ abs",
	0x9D: "STA abs,X", 0x9E: "STZ abs,X",

	0xA0: "LDY #", 0xA1: "LDA (zp,X)", 0xA2: "LDX #", 0xA4: "LDY zp", 0xA5: "LDA zp",
	0xA6: "LDX zp", 0xA8: "TAY", 0xA9: "LDA #", 0xAA: "TAX", 0xAC: "LDY abs", 0xAD: "LDA abs",
	0xAE: "LDX abs",

	0xB0: "BCS rel", 0xB1: "LDA (zp),Y", 0xB2: "LDA (zp)", 0xB4: "LDY zp,X", 0xB5: "LDA zp,X",
	0xB6: "LDX zp,Y", 0xB8: "CLV", 0xB9: "LDA abs,Y", 0xBA: "TSX", 0xBC: "LDY abs,X",
	0xBD: "LDA abs,X", 0xBE: "LDX abs,Y",

	0xC0: "CPY #", 0xC1: "CMP (zp,X)", 0xC4: "CPY zp", 0xC5: "CMP zp", 0xC6: "DEC zp",
	0xC8: "INY", 0xC9: "CMP #", 0xCA: "DEX", 0xCB: "WAI", 0xCC: "CPY abs", 0xCD: "CMP abs",
	0xCE: "DEC abs",

	0xD0: "BNE rel", 0xD1: "CMP (zp),Y", 0xD2: "CMP (zp)", 0xD5: "CMP zp,X", 0xD6: "DEC zp,X",
	0xD8: "CLD", 0xD9: "CMP abs,Y", 0xDA: "PHX", 0xDB: "STP", 0xDD: "CMP abs,X", 0xDE: "DEC abs,X",

	0xE0: "CPX #", 0xE1: "SBC (zp,X)", 0xE4: "CPX zp", 0xE5: "SBC zp", 0xE6: "INC zp",
	0xE8: "INX", 0xE9: "SBC #", 0xEA: "NOP", 0xEC: "CPX abs", 0xED: "SBC abs", 0xEE: "INC abs",

	0xF0: "BEQ rel", 0xF1: "SBC (zp),Y", 0xF2: "SBC (zp)", 0xF5: "SBC zp,X", 0xF6: "INC zp,X",
	0xF8: "SED", 0xF9: "SBC abs,Y", 0xFA: "PLX", 0xFD: "SBC abs,X", 0xFE: "INC abs,X",
}
