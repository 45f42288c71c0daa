package cpu

// Opcode values, matching the WDC 65C02 instruction set. Mnemonics follow
// the suffix convention IMM/ZP/ZPX/ZPY/ABS/ABX/ABY/INX/INY/IZP/ACC for
// addressing mode.
const (
	BRK     uint8 = 0x00
	ORA_INX uint8 = 0x01
	TSB_ZP  uint8 = 0x04
	ORA_ZP  uint8 = 0x05
	ASL_ZP  uint8 = 0x06
	PHP     uint8 = 0x08
	ORA_IMM uint8 = 0x09
	ASL_ACC uint8 = 0x0A
	TSB_ABS uint8 = 0x0C
	ORA_ABS uint8 = 0x0D
	ASL_ABS uint8 = 0x0E

	BPL     uint8 = 0x10
	ORA_INY uint8 = 0x11
	ORA_IZP uint8 = 0x12
	TRB_ZP  uint8 = 0x14
	ORA_ZPX uint8 = 0x15
	ASL_ZPX uint8 = 0x16
	CLC     uint8 = 0x18
	ORA_ABY uint8 = 0x19
	INC_A   uint8 = 0x1A
	TRB_ABS uint8 = 0x1C
	ORA_ABX uint8 = 0x1D
	ASL_ABX uint8 = 0x1E

	JSR_ABS uint8 = 0x20
	AND_INX uint8 = 0x21
	BIT_ZP  uint8 = 0x24
	AND_ZP  uint8 = 0x25
	ROL_ZP  uint8 = 0x26
	PLP     uint8 = 0x28
	AND_IMM uint8 = 0x29
	ROL_ACC uint8 = 0x2A
	BIT_ABS uint8 = 0x2C
	AND_ABS uint8 = 0x2D
	ROL_ABS uint8 = 0x2E

	BMI     uint8 = 0x30
	AND_INY uint8 = 0x31
	AND_IZP uint8 = 0x32
	BIT_ZPX uint8 = 0x34
	AND_ZPX uint8 = 0x35
	ROL_ZPX uint8 = 0x36
	SEC     uint8 = 0x38
	AND_ABY uint8 = 0x39
	DEC_A   uint8 = 0x3A
	BIT_ABX uint8 = 0x3C
	AND_ABX uint8 = 0x3D
	ROL_ABX uint8 = 0x3E

	RTI     uint8 = 0x40
	EOR_INX uint8 = 0x41
	EOR_ZP  uint8 = 0x45
	LSR_ZP  uint8 = 0x46
	PHA     uint8 = 0x48
	EOR_IMM uint8 = 0x49
	LSR_ACC uint8 = 0x4A
	JMP_ABS uint8 = 0x4C
	EOR_ABS uint8 = 0x4D
	LSR_ABS uint8 = 0x4E

	BVC     uint8 = 0x50
	EOR_INY uint8 = 0x51
	EOR_IZP uint8 = 0x52
	EOR_ZPX uint8 = 0x55
	LSR_ZPX uint8 = 0x56
	CLI     uint8 = 0x58
	EOR_ABY uint8 = 0x59
	PHY     uint8 = 0x5A
	EOR_ABX uint8 = 0x5D
	LSR_ABX uint8 = 0x5E

	RTS     uint8 = 0x60
	ADC_INX uint8 = 0x61
	STZ_ZP  uint8 = 0x64
	ADC_ZP  uint8 = 0x65
	ROR_ZP  uint8 = 0x66
	PLA     uint8 = 0x68
	ADC_IMM uint8 = 0x69
	ROR_ACC uint8 = 0x6A
	JMP_IND uint8 = 0x6C
	ADC_ABS uint8 = 0x6D
	ROR_ABS uint8 = 0x6E

	BVS      uint8 = 0x70
	ADC_INY  uint8 = 0x71
	ADC_IZP  uint8 = 0x72
	STZ_ZPX  uint8 = 0x74
	ADC_ZPX  uint8 = 0x75
	ROR_ZPX  uint8 = 0x76
	SEI      uint8 = 0x78
	ADC_ABY  uint8 = 0x79
	PLY      uint8 = 0x7A
	JMP_INDX uint8 = 0x7C
	ADC_ABX  uint8 = 0x7D
	ROR_ABX  uint8 = 0x7E

	BRA      uint8 = 0x80
	STA_INX  uint8 = 0x81
	STY_ZP   uint8 = 0x84
	STA_ZP   uint8 = 0x85
	STX_ZP   uint8 = 0x86
	DEY      uint8 = 0x88
	BIT_IMM  uint8 = 0x89
	TXA      uint8 = 0x8A
	STY_ABS  uint8 = 0x8C
	STA_ABS  uint8 = 0x8D
	STX_ABS  uint8 = 0x8E

	BCC     uint8 = 0x90
	STA_INY uint8 = 0x91
	STA_IZP uint8 = 0x92
	STY_ZPX uint8 = 0x94
	STA_ZPX uint8 = 0x95
	STX_ZPY uint8 = 0x96
	TYA     uint8 = 0x98
	STA_ABY uint8 = 0x99
	TXS     uint8 = 0x9A
	STZ_ABS uint8 = 0x9C
	STA_ABX uint8 = 0x9D
	STZ_ABX uint8 = 0x9E

	LDY_IMM uint8 = 0xA0
	LDA_INX uint8 = 0xA1
	LDX_IMM uint8 = 0xA2
	LDY_ZP  uint8 = 0xA4
	LDA_ZP  uint8 = 0xA5
	LDX_ZP  uint8 = 0xA6
	TAY     uint8 = 0xA8
	LDA_IMM uint8 = 0xA9
	TAX     uint8 = 0xAA
	LDY_ABS uint8 = 0xAC
	LDA_ABS uint8 = 0xAD
	LDX_ABS uint8 = 0xAE

	BCS      uint8 = 0xB0
	LDA_INY  uint8 = 0xB1
	LDA_IZP  uint8 = 0xB2
	LDY_ZPX  uint8 = 0xB4
	LDA_ZPX  uint8 = 0xB5
	LDX_ZPY  uint8 = 0xB6
	CLV      uint8 = 0xB8
	LDA_ABY  uint8 = 0xB9
	TSX      uint8 = 0xBA
	LDY_ABX  uint8 = 0xBC
	LDA_ABX  uint8 = 0xBD
	LDX_ABY  uint8 = 0xBE

	CPY_IMM uint8 = 0xC0
	CMP_INX uint8 = 0xC1
	CPY_ZP  uint8 = 0xC4
	CMP_ZP  uint8 = 0xC5
	DEC_ZP  uint8 = 0xC6
	INY     uint8 = 0xC8
	CMP_IMM uint8 = 0xC9
	DEX     uint8 = 0xCA
	WAI     uint8 = 0xCB
	CPY_ABS uint8 = 0xCC
	CMP_ABS uint8 = 0xCD
	DEC_ABS uint8 = 0xCE

	BNE     uint8 = 0xD0
	CMP_INY uint8 = 0xD1
	CMP_IZP uint8 = 0xD2
	CMP_ZPX uint8 = 0xD5
	DEC_ZPX uint8 = 0xD6
	CLD     uint8 = 0xD8
	CMP_ABY uint8 = 0xD9
	PHX     uint8 = 0xDA
	STP     uint8 = 0xDB
	CMP_ABX uint8 = 0xDD
	DEC_ABX uint8 = 0xDE

	CPX_IMM uint8 = 0xE0
	SBC_INX uint8 = 0xE1
	CPX_ZP  uint8 = 0xE4
	SBC_ZP  uint8 = 0xE5
	INC_ZP  uint8 = 0xE6
	INX     uint8 = 0xE8
	SBC_IMM uint8 = 0xE9
	NOP     uint8 = 0xEA
	CPX_ABS uint8 = 0xEC
	SBC_ABS uint8 = 0xED
	INC_ABS uint8 = 0xEE

	BEQ     uint8 = 0xF0
	SBC_INY uint8 = 0xF1
	SBC_IZP uint8 = 0xF2
	SBC_ZPX uint8 = 0xF5
	INC_ZPX uint8 = 0xF6
	SED     uint8 = 0xF8
	SBC_ABY uint8 = 0xF9
	PLX     uint8 = 0xFA
	SBC_ABX uint8 = 0xFD
	INC_ABX uint8 = 0xFE
)
