package system

import (
	"time"

	"github.com/sbc65c02/emulator/lcd"
	"github.com/sbc65c02/emulator/messages"
)

// lcdTickPeriod is the cadence lcd.rs drives its blink countdown at
// (timer.schedule_repeating(Duration::microseconds(4))). The controller
// itself only cares about tick counts, not wall-clock accuracy, so any
// steady cadence reproduces the same blink period.
const lcdTickPeriod = 4 * time.Microsecond

// RunLCD is the LCD worker goroutine body: it accumulates the granular
// PORTB pin edges the orchestrator forwards into composed bus
// transactions, drives them into l, and reports the resulting
// framebuffer back to the frontend. It returns when ExitLCD arrives.
func RunLCD(l *lcd.LCD, edgeCh <-chan messages.PinEdge, snapshotCh chan<- messages.Snapshot, logCh chan<- messages.Log) {
	w := &lcdWorker{lcd: l, snapshotCh: snapshotCh, logCh: logCh}
	ticker := time.NewTicker(lcdTickPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-edgeCh:
			if !ok {
				return
			}
			if w.handle(msg) {
				return
			}
		case <-ticker.C:
			l.Tick()
		}
	}
}

type lcdWorker struct {
	lcd *lcd.LCD

	rs, rw bool
	enable bool
	nibble uint8 // bits 4-7, matching the composed data byte lcd.PinEdge expects

	allowOnce bool
	allowAll  bool

	snapshotCh chan<- messages.Snapshot
	logCh      chan<- messages.Log
}

// handle applies one PinEdge message and reports whether the worker
// must now exit.
func (w *lcdWorker) handle(msg messages.PinEdge) bool {
	switch m := msg.(type) {
	case messages.RegisterSelectPinChange:
		w.rs = m.Level
		w.dispatch()
	case messages.ReadWritePinChange:
		w.rw = m.Level
		w.dispatch()
	case messages.EnablePinChange:
		w.enable = m.Level
		w.dispatch()
	case messages.DataPinChange:
		if m.Level {
			w.nibble |= 1 << m.Bit
		} else {
			w.nibble &^= 1 << m.Bit
		}
		w.dispatch()
	case messages.AllowOneUpdate:
		w.allowOnce = true
		w.maybeSnapshot()
	case messages.AllowAllUpdates:
		w.allowAll = true
		w.maybeSnapshot()
	case messages.ExitLCD:
		return true
	}
	return false
}

// dispatch forwards the currently latched pin state into the LCD
// controller whenever Enable is asserted, mirroring system.rs's write
// handler: a composed transaction is sent on every PORTB change
// observed while the Enable bit reads high, not only on its rising
// edge.
func (w *lcdWorker) dispatch() {
	if !w.enable {
		return
	}
	if err := w.lcd.PinEdge(w.rs, w.rw, w.nibble); err != nil {
		w.logCh <- messages.LogLine{Text: "lcd: " + err.Error()}
		return
	}
	w.maybeSnapshot()
}

func (w *lcdWorker) maybeSnapshot() {
	if !w.allowOnce && !w.allowAll {
		return
	}
	w.allowOnce = false
	w.snapshotCh <- messages.LcdScreen{Text: w.lcd.Screen()}
}
