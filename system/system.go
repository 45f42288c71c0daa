// Package system implements the orchestrator: it owns the CPU, bus, and
// VIA, drives the run/pause/step/exit state machine, throttles snapshot
// traffic to the frontend, and forwards VIA port-B pin changes to the
// LCD worker. It is grounded on original_source/emulator/src/system.rs's
// PhysSystem (the run loop, the step-wait-derived screen_update_period
// table, the PA-breakpoint mechanism) reshaped into a goroutine driven
// by typed channels instead of mpsc senders held by a RefCell, and on
// the teacher's c64/c64/c64.go for the general owns-CPU-and-peripherals
// run-loop shape (minus its SDL2 video/audio concerns, which this
// machine has no equivalent of).
package system

import (
	"fmt"
	"time"

	"github.com/sbc65c02/emulator/bus"
	"github.com/sbc65c02/emulator/cpu"
	"github.com/sbc65c02/emulator/disasm"
	"github.com/sbc65c02/emulator/messages"
	"github.com/sbc65c02/emulator/via"
)

// DefaultStepWait is the wait time between steps (microseconds) a fresh
// System starts with, matching system.rs's DEFAULT_STEP_WAIT (expressed
// there in milliseconds; this spec's ChangeWaitTime is in microseconds).
const DefaultStepWait = 50_000

// State is the orchestrator's run/pause state machine (spec.md §4.4).
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Idle"
	}
}

// VIA PORTB bit assignments this board wires to the LCD: PB7 = RS,
// PB6 = R/W, PB5 = Enable, PB3:0 = the LCD's DB7:4 data nibble,
// matching system.rs's PORTB write handler.
const (
	pbRS   = 7
	pbRW   = 6
	pbE    = 5
	pbData = 0 // occupies bits 0-3
)

// Config configures a System at construction time.
type Config struct {
	LCDEnabled      bool
	GarbagePolicy   bus.GarbagePolicy
	PAAsBreakpoint  bool
	InitialWaitTime uint32 // microseconds; 0 means DefaultStepWait
}

// System is the orchestrator goroutine's private state. Nothing here is
// shared with any other goroutine except through the channels it is
// constructed with; via.Host and bus.Logger are implemented directly on
// *System in host.go.
type System struct {
	cfg Config

	cpu *cpu.CPU
	bus *bus.Bus
	via *via.VIA

	state          State
	sentCycleCount uint64
	stepCount      uint64
	stepWaitMicros uint32
	paAsBreakpoint bool
	opcodeFetching bool

	pa [8]bool // last level driven on each PORTA bit
	pb [8]bool // last level driven on each PORTB bit

	controlCh  <-chan messages.Control
	snapshotCh chan<- messages.Snapshot
	lcdCh      chan<- messages.PinEdge
	logCh      chan<- messages.Log
}

// New builds a System around a freshly loaded ROM image. rom must be no
// larger than the 32 KiB ROM window; bus.LoadROM enforces this.
func New(
	cfg Config,
	rom []uint8,
	controlCh <-chan messages.Control,
	snapshotCh chan<- messages.Snapshot,
	lcdCh chan<- messages.PinEdge,
	logCh chan<- messages.Log,
) (*System, error) {
	s := &System{
		cfg:            cfg,
		via:            via.NewVIA(),
		paAsBreakpoint: cfg.PAAsBreakpoint,
		stepWaitMicros: cfg.InitialWaitTime,
		controlCh:      controlCh,
		snapshotCh:     snapshotCh,
		lcdCh:          lcdCh,
		logCh:          logCh,
	}
	if s.stepWaitMicros == 0 {
		s.stepWaitMicros = DefaultStepWait
	}
	s.cpu = cpu.NewCPU()
	s.bus = bus.NewBus(s.via, s, cfg.GarbagePolicy, s)
	s.bus.SetAccessHooks(s.onBusRead, s.onBusWrite)
	if err := s.bus.LoadROM(rom); err != nil {
		return nil, err
	}
	s.cpu.Reset(s.bus)
	return s, nil
}

// Run is the orchestrator's goroutine body. It returns when the CPU
// halts (STP) or the frontend sends Exit, after logging the total cycle
// count and, when the LCD is enabled, sending ExitLCD to the LCD worker.
// It does not wait for the LCD worker to return.
func (s *System) Run() {
	s.updateFrontend(true)

	for s.state != StateStopped {
		if s.state == StateRunning {
			if s.step() == cpu.StateStopped {
				s.state = StateStopped
				break
			}
			spinSleep(time.Duration(s.stepWaitMicros) * time.Microsecond)

			select {
			case msg, ok := <-s.controlCh:
				if !ok {
					s.shutdown(true)
					return
				}
				if s.handle(msg) {
					s.shutdown(true)
					return
				}
			default:
			}
			continue
		}

		msg, ok := <-s.controlCh
		if !ok {
			s.shutdown(true)
			return
		}
		if s.handle(msg) {
			s.shutdown(true)
			return
		}
	}

	s.shutdown(false)
}

// handle applies one control message and reports whether the
// orchestrator must now exit.
func (s *System) handle(msg messages.Control) bool {
	switch m := msg.(type) {
	case messages.Run:
		if s.state == StateIdle {
			s.state = StateRunning
		}
	case messages.Stop:
		if s.state == StateRunning {
			s.state = StateIdle
			s.updateFrontend(true)
		}
	case messages.Step:
		if s.state == StateIdle {
			if s.step() == cpu.StateStopped {
				s.state = StateStopped
			}
		}
	case messages.ChangeWaitTime:
		s.stepWaitMicros = m.Microseconds
	case messages.ShowLog:
		s.logCh <- messages.ChangePrintLog{Enabled: m.Enabled}
	case messages.Breakpoint:
		s.paAsBreakpoint = m.Enabled
	case messages.ExitControl:
		return true
	}
	return false
}

// step executes exactly one instruction, throttling the frontend
// snapshot rate per the screen_update_period table derived from
// stepWaitMicros (spec.md §4.4). Breakpoint tripping (via WritePortA, in
// host.go) may drop state to StateIdle partway through; the caller sees
// that reflected in s.state once step returns.
func (s *System) step() cpu.RunState {
	required := screenUpdatePeriod(s.stepWaitMicros)
	cycles := s.bus.CycleCount()
	if cycles > s.sentCycleCount+required || s.state != StateRunning {
		s.sentCycleCount = cycles
		s.snapshotCh <- messages.CycleCount{Count: cycles}
		if s.cfg.LCDEnabled {
			s.lcdCh <- messages.AllowOneUpdate{}
		}
	}

	s.opcodeFetching = true
	s.log("step %d:", s.stepCount)
	s.stepCount++

	return s.cpu.Step(s.bus)
}

// screenUpdatePeriod implements the wait-time -> cycle-period table from
// spec.md §4.4, grounded on system.rs::step's required_delta ladder.
func screenUpdatePeriod(waitMicros uint32) uint64 {
	switch {
	case waitMicros == 0:
		return 100_000
	case waitMicros <= 100:
		return 10_000
	case waitMicros <= 1_000:
		return 1_000
	case waitMicros <= 10_000:
		return 100
	default:
		return 0
	}
}

func (s *System) updateFrontend(forceLCD bool) {
	s.snapshotCh <- messages.CycleCount{Count: s.bus.CycleCount()}
	s.snapshotCh <- messages.PortB{Value: packBits(s.pb)}
	s.snapshotCh <- messages.PortA{Value: packBits(s.pa)}
	if s.cfg.LCDEnabled && forceLCD {
		s.lcdCh <- messages.AllowAllUpdates{}
	}
}

// shutdown writes the final cycle count to the log and tears down the
// LCD worker. viaExit is true when the frontend itself requested the
// exit (messages.ExitControl or a closed control channel); in that case
// the frontend already knows it is shutting down and does not need a
// Stopped snapshot. A CPU halt (STP) is the only other path here, and it
// always emits Stopped so the frontend learns the run ended on its own.
func (s *System) shutdown(viaExit bool) {
	s.log("total cycle count: %d", s.bus.CycleCount())
	if !viaExit {
		s.updateFrontend(true)
		s.snapshotCh <- messages.Stopped{}
	}
	if s.cfg.LCDEnabled {
		s.lcdCh <- messages.ExitLCD{}
	}
}

// onBusRead annotates the log with every bus read, decoding the opcode
// mnemonic on the first read of a step (the instruction fetch),
// matching system.rs::read's log! lines.
func (s *System) onBusRead(addr uint16, value uint8) {
	if s.opcodeFetching {
		s.opcodeFetching = false
		s.log("read  %02X at %04X  %s", value, addr, disasm.Name(value))
		return
	}
	s.log("read  %02X at %04X", value, addr)
}

func (s *System) onBusWrite(addr uint16, value uint8) {
	s.log("write %02X at %04X", value, addr)
}

func (s *System) log(format string, args ...any) {
	s.logCh <- messages.LogLine{Text: fmt.Sprintf(format, args...)}
}

func packBits(bits [8]bool) uint8 {
	var v uint8
	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}

// spinSleep is a placeholder for the original's spin_sleep::sleep: since
// spec.md explicitly excludes cycle-accurate wall-clock timing, a plain
// time.Sleep is sufficient here.
func spinSleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
