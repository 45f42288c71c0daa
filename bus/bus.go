// Package bus implements the address decoder that sits between the CPU
// core and the rest of the machine: 16 KiB of RAM, a 32 KiB ROM image,
// and the VIA's 16-byte register window, plus the power-on
// garbage-byte semantics that make reading uninitialized memory an
// explicit, loggable event rather than silent zero.
package bus

import (
	"fmt"
	"math/rand"

	"github.com/sbc65c02/emulator/via"
)

const (
	ramStart     = 0x0000
	ramEnd       = 0x3FFF
	ramAliasEnd  = 0x5FFF
	viaStart     = 0x6000
	viaEnd       = 0x600F
	unmappedEnd  = 0x7FFF
	romStart     = 0x8000
	stackStart   = 0x0100
	stackEnd     = 0x01FF
	ramSize      = ramEnd - ramStart + 1
	romSize      = 0x10000 - romStart
)

// GarbagePolicy controls what happens when a read observes a byte that
// was never legitimately written.
type GarbagePolicy int

const (
	// Strict aborts the read by panicking with a *GarbageAccessError.
	Strict GarbagePolicy = iota
	// Permissive logs a warning and returns a pseudo-random byte instead.
	Permissive
)

// Logger is the minimal surface the bus needs for warnings; logsink.Sink
// satisfies it.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// GarbageAccessError is panicked (in Strict mode) when a read observes
// an uninitialized byte.
type GarbageAccessError struct {
	Address uint16
	Label   string
}

func (e *GarbageAccessError) Error() string {
	return fmt.Sprintf("bus: read of garbage %s at 0x%04X", e.Label, e.Address)
}

// VIAHost is implemented by whatever owns the bus (the system
// orchestrator) and is forwarded verbatim into the VIA on every
// register access.
type VIAHost = via.Host

// Bus is the memory map described in the spec: RAM, RAM aliases, a VIA
// register window, an unmapped gap, and ROM.
type Bus struct {
	ram [ramSize]via.Data[uint8]
	rom [romSize]uint8

	chip   *via.VIA
	host   VIAHost
	policy GarbagePolicy
	log    Logger
	rng    *rand.Rand
	cycles uint64

	// onRead/onWrite, if set, are invoked after every bus access and let
	// the orchestrator annotate its log with addresses, values, and (for
	// the opcode-fetch read) the decoded mnemonic, without the bus
	// needing to know anything about logging itself.
	onRead  func(addr uint16, value uint8)
	onWrite func(addr uint16, value uint8)
}

// NewBus returns a bus with all RAM cells marked garbage and an empty
// ROM, matching power-on state. chip and host wire in the VIA register
// window; log may be nil to discard warnings.
func NewBus(chip *via.VIA, host VIAHost, policy GarbagePolicy, log Logger) *Bus {
	if log == nil {
		log = nopLogger{}
	}
	b := &Bus{
		chip:   chip,
		host:   host,
		policy: policy,
		log:    log,
		rng:    rand.New(rand.NewSource(1)),
	}
	for i := range b.ram {
		b.ram[i] = via.Data[uint8]{Garbage: true}
	}
	return b
}

// SetAccessHooks installs the orchestrator's log-annotation callbacks.
// Either argument may be nil.
func (b *Bus) SetAccessHooks(onRead, onWrite func(addr uint16, value uint8)) {
	b.onRead = onRead
	b.onWrite = onWrite
}

// CycleCount returns the number of bus accesses (reads plus writes)
// observed so far, the unit spec.md's CycleCount snapshot reports.
func (b *Bus) CycleCount() uint64 {
	return b.cycles
}

// LoadROM copies a ROM image into the top of the address space. Images
// smaller than 32 KiB are placed at the start of the window; the
// remainder stays zeroed.
func (b *Bus) LoadROM(data []uint8) error {
	if len(data) > romSize {
		return fmt.Errorf("bus: ROM image of %d bytes exceeds %d-byte window", len(data), romSize)
	}
	copy(b.rom[:], data)
	return nil
}

// Read implements cpu.Bus. Every read is one bus cycle: the VIA ticks
// before the read is dispatched, matching system.rs::read's
// cycle_count += 1; via.clock_pulse(cpu) prologue.
func (b *Bus) Read(addr uint16) uint8 {
	b.tick()
	value := b.dispatchRead(addr)
	if b.onRead != nil {
		b.onRead(addr, value)
	}
	return value
}

func (b *Bus) dispatchRead(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.readRAM(addr)
	case addr <= ramAliasEnd:
		return b.garbageValue(addr, "RAM alias")
	case addr >= viaStart && addr <= viaEnd:
		v, err := b.chip.Read(b.host, uint8(addr&0x0F))
		if err != nil {
			panic(err)
		}
		return v
	case addr <= unmappedEnd:
		return b.garbageValue(addr, "unmapped region")
	default:
		return b.rom[addr-romStart]
	}
}

// Write implements cpu.Bus. Every write is one bus cycle, same as Read.
func (b *Bus) Write(addr uint16, value uint8) {
	b.tick()
	switch {
	case addr <= ramEnd:
		b.ram[addr-ramStart] = via.Data[uint8]{Value: value}
	case addr <= ramAliasEnd:
		// The alias window's address decoding only lands the write; it
		// never clears the garbage flag on the region it reads from.
		b.ram[(addr-ramStart-0x4000)%ramSize] = via.Data[uint8]{Value: value}
	case addr >= viaStart && addr <= viaEnd:
		if err := b.chip.Write(b.host, uint8(addr&0x0F), value); err != nil {
			panic(err)
		}
	case addr <= unmappedEnd:
		// Discarded: nothing is mapped here.
	default:
		// Discarded: ROM is immutable after load.
	}
	if b.onWrite != nil {
		b.onWrite(addr, value)
	}
}

// tick advances the bus cycle counter and the VIA by one bus cycle.
func (b *Bus) tick() {
	b.cycles++
	b.chip.Tick(b.host)
}

func (b *Bus) readRAM(addr uint16) uint8 {
	cell := b.ram[addr-ramStart]
	if !cell.Garbage || b.stackExempt(addr) {
		return cell.Value
	}
	return b.onGarbage(addr, "RAM")
}

func (b *Bus) garbageValue(addr uint16, label string) uint8 {
	return b.onGarbage(addr, label)
}

func (b *Bus) stackExempt(addr uint16) bool {
	return addr >= stackStart && addr <= stackEnd
}

func (b *Bus) onGarbage(addr uint16, label string) uint8 {
	if b.policy == Strict {
		panic(&GarbageAccessError{Address: addr, Label: label})
	}
	b.log.Warnf("permissive read of garbage %s at 0x%04X", label, addr)
	return uint8(b.rng.Intn(256))
}

// PeekOpcode returns the byte at addr for log annotation only: it never
// touches the garbage flag, never panics, and never dispatches into the
// VIA (a VIA register read can have side effects, such as clearing an
// interrupt flag, that a log line must not trigger). Addresses outside
// RAM/ROM return 0.
func (b *Bus) PeekOpcode(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr-ramStart].Value
	case addr >= romStart:
		return b.rom[addr-romStart]
	default:
		return 0
	}
}
