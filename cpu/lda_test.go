package cpu_test

import (
	"testing"

	"github.com/sbc65c02/emulator/cpu"
	"github.com/stretchr/testify/assert"
)

func TestLDAAddressingModes(t *testing.T) {
	cases := []struct {
		name  string
		setup func(bus *testBus, c *cpu.CPU)
		want  uint8
	}{
		{
			name: "immediate zero sets Z",
			setup: func(bus *testBus, c *cpu.CPU) {
				load(bus, 0x0200, cpu.LDA_IMM, 0x00)
			},
			want: 0x00,
		},
		{
			name: "zero page",
			setup: func(bus *testBus, c *cpu.CPU) {
				load(bus, 0x0200, cpu.LDA_ZP, 0x42)
				bus.Write(0x0042, 0x37)
			},
			want: 0x37,
		},
		{
			name: "zero page,X wraps",
			setup: func(bus *testBus, c *cpu.CPU) {
				c.X = 0x02
				load(bus, 0x0200, cpu.LDA_ZPX, 0xFF)
				bus.Write(0x0001, 0x55)
			},
			want: 0x55,
		},
		{
			name: "absolute",
			setup: func(bus *testBus, c *cpu.CPU) {
				load(bus, 0x0200, cpu.LDA_ABS, 0x34, 0x12)
				bus.Write(0x1234, 0x42)
			},
			want: 0x42,
		},
		{
			name: "absolute,X",
			setup: func(bus *testBus, c *cpu.CPU) {
				c.X = 0x01
				load(bus, 0x0200, cpu.LDA_ABX, 0xFF, 0x12)
				bus.Write(0x1300, 0x42)
			},
			want: 0x42,
		},
		{
			name: "absolute,Y",
			setup: func(bus *testBus, c *cpu.CPU) {
				c.Y = 0x04
				load(bus, 0x0200, cpu.LDA_ABY, 0x34, 0x12)
				bus.Write(0x1238, 0x42)
			},
			want: 0x42,
		},
		{
			name: "(zp,X)",
			setup: func(bus *testBus, c *cpu.CPU) {
				c.X = 0x04
				load(bus, 0x0200, cpu.LDA_INX, 0x20)
				load(bus, 0x0024, 0x34, 0x12)
				bus.Write(0x1234, 0x42)
			},
			want: 0x42,
		},
		{
			name: "(zp),Y",
			setup: func(bus *testBus, c *cpu.CPU) {
				c.Y = 0x04
				load(bus, 0x0200, cpu.LDA_INY, 0x20)
				load(bus, 0x0020, 0x34, 0x12)
				bus.Write(0x1238, 0x42)
			},
			want: 0x42,
		},
		{
			name: "(zp) without index, the 65C02 addition",
			setup: func(bus *testBus, c *cpu.CPU) {
				load(bus, 0x0200, cpu.LDA_IZP, 0x20)
				load(bus, 0x0020, 0x34, 0x12)
				bus.Write(0x1234, 0x42)
			},
			want: 0x42,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &testBus{}
			c := cpu.NewCPU()
			c.PC = 0x0200
			tc.setup(bus, c)

			c.Step(bus)

			assert.Equal(t, tc.want, c.A)
			assert.Equal(t, tc.want == 0, c.P&cpu.FlagZ != 0)
			assert.Equal(t, tc.want&0x80 != 0, c.P&cpu.FlagN != 0)
		})
	}
}
