package cpu_test

import (
	"testing"

	"github.com/sbc65c02/emulator/cpu"
	"github.com/stretchr/testify/assert"
)

func TestTransferInstructions(t *testing.T) {
	cases := []struct {
		name   string
		opcode uint8
		setup  func(c *cpu.CPU)
		check  func(t *testing.T, c *cpu.CPU)
	}{
		{"TAX", cpu.TAX, func(c *cpu.CPU) { c.A = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.X) }},
		{"TAY", cpu.TAY, func(c *cpu.CPU) { c.A = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.Y) }},
		{"TXA", cpu.TXA, func(c *cpu.CPU) { c.X = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.A) }},
		{"TYA", cpu.TYA, func(c *cpu.CPU) { c.Y = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.A) }},
		{"TSX", cpu.TSX, func(c *cpu.CPU) { c.SP = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.X) }},
		{"TXS", cpu.TXS, func(c *cpu.CPU) { c.X = 0x42 }, func(t *testing.T, c *cpu.CPU) { assert.Equal(t, uint8(0x42), c.SP) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &testBus{}
			c := cpu.NewCPU()
			tc.setup(c)
			load(bus, 0x0200, tc.opcode)
			c.PC = 0x0200

			c.Step(bus)

			tc.check(t, c)
		})
	}
}

func TestIncDecRegistersAndAccumulator(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.X, c.Y, c.A = 0x10, 0x10, 0x10
	load(bus, 0x0200, cpu.INX, cpu.INY, cpu.DEX, cpu.DEY, cpu.INC_A, cpu.DEC_A)
	c.PC = 0x0200

	c.Step(bus)
	assert.Equal(t, uint8(0x11), c.X)
	c.Step(bus)
	assert.Equal(t, uint8(0x11), c.Y)
	c.Step(bus)
	assert.Equal(t, uint8(0x10), c.X)
	c.Step(bus)
	assert.Equal(t, uint8(0x10), c.Y)
	c.Step(bus)
	assert.Equal(t, uint8(0x11), c.A, "INC A is a 65C02 addition, no absolute addressing involved")
	c.Step(bus)
	assert.Equal(t, uint8(0x10), c.A)
}

func TestIncDecMemoryWraps(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	bus.Write(0x0042, 0xFF)
	load(bus, 0x0200, cpu.INC_ZP, 0x42)
	c.PC = 0x0200

	c.Step(bus)

	assert.Equal(t, uint8(0x00), bus.Read(0x0042))
	assert.NotZero(t, c.P&cpu.FlagZ)
}
