package system

import "github.com/sbc65c02/emulator/messages"

// ReadPortA supplies the external input level for PORTA bits configured
// as inputs. Nothing on this board drives PORTA from outside the CPU
// (the only external consumer, a breakpoint switch, is modeled as pure
// output-observation in WritePortA), so every input bit floats low.
func (s *System) ReadPortA() uint8 { return 0 }

// ReadPortB supplies the external input level for PORTB bits configured
// as inputs. The LCD this board drives never drives data back onto
// PORTB (its busy flag is not wired up; see SPEC_FULL.md's Non-goals),
// so every input bit floats low.
func (s *System) ReadPortB() uint8 { return 0 }

// WritePortA is called once per PORTA bit the VIA has configured as an
// output, every time the VIA redrives the port. When the paAsBreakpoint
// feature is armed, any PORTA write observed while Running is treated as
// hitting a breakpoint: the orchestrator drops to Idle and tells the
// frontend. Checking s.state here is what keeps this idempotent across
// the multiple per-bit calls a single register write produces: the
// first call flips state away from Running, so the rest are no-ops.
func (s *System) WritePortA(bit uint8, level bool) {
	s.pa[bit] = level
	if s.paAsBreakpoint && s.state == StateRunning {
		s.state = StateIdle
		s.updateFrontend(true)
		s.snapshotCh <- messages.Paused{}
	}
}

// WritePortB tracks the pin this board wires to the LCD and forwards
// the transition to the LCD worker as a granular PinEdge message,
// matching the PORTB bit assignments documented on the pb* constants.
// Only actual transitions are forwarded, not every redrive, so the LCD
// worker's own pin mirror never drifts from what the VIA last asserted.
func (s *System) WritePortB(bit uint8, level bool) {
	if s.pb[bit] == level {
		return
	}
	s.pb[bit] = level
	if !s.cfg.LCDEnabled {
		return
	}
	switch {
	case bit == pbRS:
		s.lcdCh <- messages.RegisterSelectPinChange{Level: level}
	case bit == pbRW:
		s.lcdCh <- messages.ReadWritePinChange{Level: level}
	case bit == pbE:
		s.lcdCh <- messages.EnablePinChange{Level: level}
	case bit >= pbData && bit < pbData+4:
		s.lcdCh <- messages.DataPinChange{Bit: bit + 4, Level: level}
	}
}

// WriteCB2 is unused: nothing on this board is wired to CB2.
func (s *System) WriteCB2(level bool) {}

// UpdateIRQ forwards the VIA's IRQB level straight to the CPU's
// level-sensitive IRQ input.
func (s *System) UpdateIRQ(level bool) {
	s.cpu.SetIRQ(level)
}

// Warnf implements bus.Logger by routing permissive-mode garbage-read
// warnings through the same log channel every other log line travels,
// rather than writing to console directly from the orchestrator
// goroutine.
func (s *System) Warnf(format string, args ...any) {
	s.log(format, args...)
}
