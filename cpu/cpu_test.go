package cpu_test

import (
	"testing"

	"github.com/sbc65c02/emulator/cpu"
	"github.com/stretchr/testify/assert"
)

// testBus is a flat 64KB array satisfying cpu.Bus, used by every test in
// this package as the simplest possible host.
type testBus [65536]uint8

func (b *testBus) Read(addr uint16) uint8     { return b[addr] }
func (b *testBus) Write(addr uint16, v uint8) { b[addr] = v }

func load(bus *testBus, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		bus[addr+uint16(i)] = b
	}
}

func TestCPUMemoryIntegration(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()

	load(bus, 0x0200, cpu.LDA_IMM, 0x42, cpu.BRK)
	c.PC = 0x0200

	c.Step(bus)

	assert.Equal(t, uint8(0x42), c.A)
}

func TestResetReadsVectorFromBus(t *testing.T) {
	bus := &testBus{}
	load(bus, 0xFFFC, 0x00, 0xF0)

	c := cpu.NewCPU()
	c.Reset(bus)

	assert.Equal(t, uint16(0xF000), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
	assert.NotZero(t, c.P&cpu.FlagI)
}

func TestBRKPushesPCPlus2AndSetsBreakThenVectorsToIRQ(t *testing.T) {
	bus := &testBus{}
	load(bus, 0xFFFE, 0x00, 0xF0)
	load(bus, 0x0200, cpu.BRK, 0x00)

	c := cpu.NewCPU()
	c.PC = 0x0200
	c.SP = 0xFF
	c.P = 0

	c.Step(bus)

	assert.Equal(t, uint16(0xF000), c.PC)
	assert.NotZero(t, c.P&cpu.FlagI)

	pushedFlags := bus.Read(0x01FD)
	pcLo := bus.Read(0x01FE)
	pcHi := bus.Read(0x01FF)
	assert.NotZero(t, pushedFlags&cpu.FlagB)
	assert.Equal(t, uint16(0x0202), uint16(pcHi)<<8|uint16(pcLo))
}

func TestRTIRestoresPCAndClearsBreak(t *testing.T) {
	bus := &testBus{}
	c := cpu.NewCPU()
	c.SP = 0xFF

	// Simulate the stack state an interrupt would have left behind.
	c.PC = 0x0300
	savedP := uint8(cpu.FlagN | cpu.FlagB | cpu.Flag1)
	bus.Write(0x01FF, 0x03) // PC hi
	bus.Write(0x01FE, 0x00) // PC lo
	bus.Write(0x01FD, savedP)
	c.SP = 0xFC

	load(bus, 0x0300, cpu.RTI)
	c.PC = 0x0300
	c.Step(bus)

	assert.Equal(t, uint16(0x0300), c.PC)
	assert.Zero(t, c.P&cpu.FlagB)
	assert.NotZero(t, c.P&cpu.FlagN)
}

func TestLevelSensitiveIRQRepeatsWhileLineHeld(t *testing.T) {
	bus := &testBus{}
	load(bus, 0xFFFE, 0x00, 0xF0)
	load(bus, 0xF000, cpu.NOP)
	load(bus, 0x0200, cpu.NOP)

	c := cpu.NewCPU()
	c.PC = 0x0200
	c.P = 0
	c.SetIRQ(true)

	c.Step(bus) // services the interrupt instead of executing the NOP at 0x0200
	assert.Equal(t, uint16(0xF001), c.PC)
	assert.NotZero(t, c.P&cpu.FlagI)

	// The line is still held: once I is cleared it is serviced again.
	sp := c.SP
	c.P &^= cpu.FlagI
	c.Step(bus)
	assert.Equal(t, uint16(0xF001), c.PC)
	assert.Equal(t, sp-3, c.SP)
}

func TestWAIParksUntilInterruptLine(t *testing.T) {
	bus := &testBus{}
	load(bus, 0xFFFE, 0x00, 0xF0)
	load(bus, 0x0200, cpu.WAI)

	c := cpu.NewCPU()
	c.PC = 0x0200
	c.P = 0

	c.Step(bus)
	pcAfterWai := c.PC
	c.Step(bus)
	assert.Equal(t, pcAfterWai, c.PC, "WAI should not advance without a pending interrupt")

	c.SetIRQ(true)
	c.Step(bus)
	assert.Equal(t, uint16(0xF000), c.PC)
}

func TestSTPHaltsPermanently(t *testing.T) {
	bus := &testBus{}
	load(bus, 0x0200, cpu.STP, cpu.NOP)

	c := cpu.NewCPU()
	c.PC = 0x0200

	state := c.Step(bus)
	assert.Equal(t, cpu.StateStopped, state)

	state = c.Step(bus)
	assert.Equal(t, cpu.StateStopped, state)
	assert.Equal(t, uint16(0x0201), c.PC, "a stopped core must not fetch again")
}
