package cpu_test

import (
	"testing"

	"github.com/sbc65c02/emulator/cpu"
	"github.com/stretchr/testify/assert"
)

func TestPHAPLARoundTrip(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.SP = 0xFF
	c.A = 0x42
	load(bus, 0x0200, cpu.PHA)
	c.PC = 0x0200
	c.Step(bus)

	assert.Equal(t, uint8(0xFE), c.SP)
	assert.Equal(t, uint8(0x42), bus.Read(0x01FF))

	c.A = 0x00
	load(bus, 0x0201, cpu.PLA)
	c.Step(bus)

	assert.Equal(t, uint8(0xFF), c.SP)
	assert.Equal(t, uint8(0x42), c.A)
}

func TestPHXPHYPLXPLY(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.SP = 0xFF
	c.X = 0x11
	c.Y = 0x22
	load(bus, 0x0200, cpu.PHX, cpu.PHY)
	c.PC = 0x0200
	c.Step(bus)
	c.Step(bus)

	assert.Equal(t, uint8(0xFD), c.SP)

	c.X, c.Y = 0, 0
	load(bus, 0x0202, cpu.PLY, cpu.PLX)
	c.Step(bus)
	c.Step(bus)

	assert.Equal(t, uint8(0x22), c.Y)
	assert.Equal(t, uint8(0x11), c.X)
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.SP = 0xFF
	load(bus, 0x0200, cpu.JSR_ABS, 0x00, 0x03)
	load(bus, 0x0300, cpu.RTS)
	c.PC = 0x0200

	c.Step(bus) // JSR
	assert.Equal(t, uint16(0x0300), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)

	c.Step(bus) // RTS
	assert.Equal(t, uint16(0x0203), c.PC, "RTS must resume at the instruction after JSR")
	assert.Equal(t, uint8(0xFF), c.SP)
}

func TestPHPSetsBreakAndUnusedBits(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.SP = 0xFF
	c.P = cpu.FlagN
	load(bus, 0x0200, cpu.PHP)
	c.PC = 0x0200
	c.Step(bus)

	pushed := bus.Read(0x01FF)
	assert.NotZero(t, pushed&cpu.FlagB)
	assert.NotZero(t, pushed&cpu.Flag1)
	assert.NotZero(t, pushed&cpu.FlagN)
}
