package disasm_test

import (
	"testing"

	"github.com/sbc65c02/emulator/disasm"
	"github.com/stretchr/testify/assert"
)

func TestNameKnownOpcodes(t *testing.T) {
	cases := map[uint8]string{
		0x00: "BRK",
		0xEA: "NOP",
		0xA9: "LDA #",
		0x80: "BRA rel",
		0xDB: "STP",
		0xCB: "WAI",
	}
	for opcode, want := range cases {
		assert.Equal(t, want, disasm.Name(opcode), "opcode 0x%02X", opcode)
	}
}

func TestNameUnknownOpcodeReturnsPlaceholder(t *testing.T) {
	// 0x02 is not a defined WDC 65C02 opcode.
	assert.Equal(t, "???", disasm.Name(0x02))
}
