package bus_test

import (
	"testing"

	"github.com/sbc65c02/emulator/bus"
	"github.com/sbc65c02/emulator/via"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a no-op via.Host: these tests exercise the bus's address
// decoding, not VIA register semantics (those are via_test.go's job).
type fakeHost struct{}

func (fakeHost) ReadPortA() uint8       { return 0 }
func (fakeHost) ReadPortB() uint8       { return 0 }
func (fakeHost) WritePortA(uint8, bool) {}
func (fakeHost) WritePortB(uint8, bool) {}
func (fakeHost) WriteCB2(bool)          {}
func (fakeHost) UpdateIRQ(bool)         {}

func newTestBus(t *testing.T, policy bus.GarbagePolicy) *bus.Bus {
	t.Helper()
	v := via.NewVIA()
	b := bus.NewBus(v, fakeHost{}, policy, nil)
	return b
}

func TestRAMWriteThenReadRoundTrips(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	b.Write(0x0200, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x0200))
}

func TestStrictGarbageReadPanics(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	assert.Panics(t, func() { b.Read(0x0200) })
}

func TestStackIsExemptFromGarbageChecking(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	assert.NotPanics(t, func() { b.Read(0x01FF) })
}

func TestPermissiveGarbageReadReturnsInsteadOfPanicking(t *testing.T) {
	b := newTestBus(t, bus.Permissive)
	assert.NotPanics(t, func() { b.Read(0x0200) })
}

func TestRAMAliasReadIsAlwaysGarbage(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	b.Write(0x0200, 0x99) // backing cell via the primary window
	assert.Panics(t, func() { b.Read(0x4200) }, "alias reads are defined as garbage regardless of the backing cell")
}

func TestUnmappedWriteIsDiscarded(t *testing.T) {
	b := newTestBus(t, bus.Permissive)
	assert.NotPanics(t, func() { b.Write(0x6010, 0xFF) })
}

func TestROMLoadAndRead(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	rom := make([]byte, 0x8000)
	rom[0] = 0xEA
	require.NoError(t, b.LoadROM(rom))
	assert.Equal(t, uint8(0xEA), b.Read(0x8000))
}

func TestROMImageTooLargeFails(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	rom := make([]byte, 0x8001)
	assert.Error(t, b.LoadROM(rom))
}

func TestVIAWindowDispatchesRegisterSelect(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	b.Write(0x6002, 0xFF) // DDRB
	b.Write(0x6000, 0x42) // ORB
	assert.Equal(t, uint8(0x42), b.Read(0x6000))
}

func TestCycleCountIncrementsPerAccess(t *testing.T) {
	b := newTestBus(t, bus.Strict)
	before := b.CycleCount()
	b.Write(0x0200, 1)
	b.Read(0x0200)
	assert.Equal(t, before+2, b.CycleCount())
}
