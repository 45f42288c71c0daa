// Package messages defines the typed payloads carried over the four
// channels that connect the frontend, orchestrator, LCD, and log-sink
// goroutines. It is grounded directly on original_source's
// ToSysMessage/ToGuiMessage/CpuToLcdMessage/LogMessage enums: a sum type
// per direction, translated into Go as a small closed interface plus one
// struct per variant rather than an enum, matching the discriminated
// shape the teacher's own packages use for e.g. via register selects.
package messages

// Control is sent from the frontend to the orchestrator. Every type
// below implements it, and only these types do.
type Control interface{ isControl() }

type Run struct{}
type Stop struct{}
type Step struct{}
type ChangeWaitTime struct{ Microseconds uint32 }
type ShowLog struct{ Enabled bool }
type Breakpoint struct{ Enabled bool }
type ExitControl struct{}

func (Run) isControl()            {}
func (Stop) isControl()           {}
func (Step) isControl()           {}
func (ChangeWaitTime) isControl() {}
func (ShowLog) isControl()        {}
func (Breakpoint) isControl()     {}
func (ExitControl) isControl()    {}

// Snapshot is sent to the frontend from the orchestrator and the LCD.
type Snapshot interface{ isSnapshot() }

type PortB struct{ Value uint8 }
type PortA struct{ Value uint8 }
type CycleCount struct{ Count uint64 }
type LcdScreen struct{ Text string }
type Paused struct{}
type Stopped struct{}

func (PortB) isSnapshot()      {}
func (PortA) isSnapshot()      {}
func (CycleCount) isSnapshot() {}
func (LcdScreen) isSnapshot()  {}
func (Paused) isSnapshot()     {}
func (Stopped) isSnapshot()    {}

// PinEdge is sent from the orchestrator to the LCD worker, one message
// per changed VIA pin that the LCD cares about, plus the three control
// variants that gate snapshot production and shut the worker down.
type PinEdge interface{ isPinEdge() }

// DataPinChange reports a change on one of the LCD's four data lines,
// DB4-DB7 (Bit holds the LCD pin number, 4-7), which this board wires to
// PORTB's low nibble.
type DataPinChange struct {
	Bit   uint8
	Level bool
}
type EnablePinChange struct{ Level bool }
type ReadWritePinChange struct{ Level bool }
type RegisterSelectPinChange struct{ Level bool }
type AllowOneUpdate struct{}
type AllowAllUpdates struct{}
type ExitLCD struct{}

func (DataPinChange) isPinEdge()          {}
func (EnablePinChange) isPinEdge()        {}
func (ReadWritePinChange) isPinEdge()     {}
func (RegisterSelectPinChange) isPinEdge() {}
func (AllowOneUpdate) isPinEdge()         {}
func (AllowAllUpdates) isPinEdge()        {}
func (ExitLCD) isPinEdge()                {}

// Log is sent by any goroutine able to log, to the log sink.
type Log interface{ isLog() }

type LogLine struct{ Text string }
type ChangePrintLog struct{ Enabled bool }
type ExitLog struct{}

func (LogLine) isLog()        {}
func (ChangePrintLog) isLog() {}
func (ExitLog) isLog()        {}
