// Package lcd models a Hitachi HD44780-style character LCD controller
// wired in parallel (4-bit or 8-bit) mode: DDRAM, addressing modes,
// cursor/blink state, and instruction decode. It is grounded directly on
// original_source/emulator/src/lcd.rs, translated from an owned
// message-loop actor into a struct whose methods the system goroutine
// drives via messages.PinEdge values.
package lcd

import (
	"errors"
	"fmt"
	"strings"
)

// cyclesBeforeBlink is the tick countdown lcd.rs reloads on every blink
// toggle; it is not a property of any global tick counter, just this
// controller's own countdown.
const cyclesBeforeBlink = 102_400

// ErrProtocolMismatch is returned when a 4-bit transaction's second edge
// carries RS/R-W pins that disagree with the first, or when the
// instruction byte is all-zero (undefined per the datasheet).
var ErrProtocolMismatch = errors.New("lcd: protocol mismatch")

// ErrUnimplemented is returned for the three branches original_source
// itself leaves as todo!(): CGRAM addressing, busy-flag/address-counter
// readback, and DDRAM/CGRAM read.
var ErrUnimplemented = errors.New("lcd: unimplemented")

// ErrIllegalAddress is returned when a Set-DDRAM-address instruction
// names an address outside the valid set for the current line mode.
var ErrIllegalAddress = errors.New("lcd: illegal DDRAM address")

type dataLength int

const (
	dataLength8 dataLength = iota
	dataLength4
)

type lineMode int

const (
	oneLine lineMode = iota
	twoLine
)

type font int

const (
	font5x8 font = iota
	font5x10
)

type shiftDir int

const (
	shiftRight shiftDir = iota
	shiftLeft
)

type displayBehavior int

const (
	behaviorMoveCursor displayBehavior = iota
	behaviorShiftDisplay
	behaviorBoth
)

type addrCounter int

const (
	counterDDRAM addrCounter = iota
	counterCGRAM
)

type config struct {
	dataLength      dataLength
	lines           lineMode
	font            font
	displayOn       bool
	cursorOn        bool
	blinkOn         bool
	shiftDir        shiftDir
	displayBehavior displayBehavior
}

// pins mirrors the assembled bus transaction: RS, R/W, and the 8-bit
// data value (already composed from nibbles in 4-bit mode).
type pins struct {
	rs   bool
	rw   bool
	data uint8
}

// LCD is a single HD44780 controller. Zero value is not ready; call New.
type LCD struct {
	pins            pins
	waitingForNibble bool

	screen string

	blinkOn       bool
	blinkCountdown int

	displayAddr uint8
	addrCounter addrCounter
	ddram       [0x80]uint8
	ddramAddr   uint8

	cfg config
}

// New returns an LCD in its documented power-on configuration: 8-bit,
// 1-line, 5x8 font, display on, cursor/blink off, entry mode
// move-cursor/shift-right. DDRAM starts all-0xFF, matching lcd.rs::new.
func New() *LCD {
	l := &LCD{
		blinkCountdown: cyclesBeforeBlink,
		cfg: config{
			dataLength: dataLength8,
			lines:      oneLine,
			font:       font5x8,
			displayOn:  true,
			shiftDir:   shiftRight,
		},
	}
	for i := range l.ddram {
		l.ddram[i] = 0xFF
	}
	l.render()
	return l
}

// Tick advances the blink countdown by one step. The caller supplies the
// cadence (a periodic ticker or channel-driven scheduler per spec.md
// §4.2); LCD itself has no notion of wall-clock time.
func (l *LCD) Tick() {
	if !l.cfg.blinkOn {
		return
	}
	if l.blinkCountdown == 0 {
		l.blinkCountdown = cyclesBeforeBlink
		l.blinkOn = !l.blinkOn
		l.render()
		return
	}
	l.blinkCountdown--
}

// PinEdge delivers one assembled bus transaction's worth of pin state:
// RS, R/W, and the high nibble (or full byte, in 8-bit mode) present on
// the data lines while E is asserted. In 4-bit mode the first call of a
// pair only records the nibble; the second completes the byte and
// dispatches it, matching CpuToLcdMessage::PinChange's two-call
// accumulation in lcd.rs.
func (l *LCD) PinEdge(rs, rw bool, dataHighNibble uint8) error {
	edge := pins{rs: rs, rw: rw, data: dataHighNibble}

	if l.waitingForNibble {
		l.pins = edge
		l.waitingForNibble = false
		return nil
	}

	if l.cfg.dataLength == dataLength4 {
		l.pins.data |= edge.data >> 4
		if l.pins.rs != edge.rs || l.pins.rw != edge.rw {
			return fmt.Errorf("%w: control pins differ between nibble halves", ErrProtocolMismatch)
		}
		l.waitingForNibble = true
		return l.readPins()
	}

	l.pins = edge
	return l.readPins()
}

// Screen returns the most recently rendered framebuffer string.
func (l *LCD) Screen() string {
	return l.screen
}

func (l *LCD) readPins() error {
	switch {
	case !l.pins.rs && !l.pins.rw:
		return l.writeInstruction()
	case !l.pins.rs && l.pins.rw:
		return fmt.Errorf("lcd: read busy flag/address counter: %w", ErrUnimplemented)
	case l.pins.rs && !l.pins.rw:
		return l.writeData()
	default:
		return fmt.Errorf("lcd: read DDRAM/CGRAM: %w", ErrUnimplemented)
	}
}

// writeInstruction decodes an instruction-register write by the
// position of the highest set bit, exactly as lcd.rs::read_pins'
// leading_zeros match does.
func (l *LCD) writeInstruction() error {
	data := l.pins.data
	switch highBit(data) {
	case -1:
		return fmt.Errorf("%w: instruction byte 0x00 is undefined", ErrProtocolMismatch)
	case 0: // Clear display
		for i := range l.ddram {
			l.ddram[i] = 0x20
		}
		l.addrCounter = counterDDRAM
		l.ddramAddr = 0
		l.displayAddr = 0
		l.cfg.shiftDir = shiftRight
		l.render()
	case 1: // Return home
		l.addrCounter = counterDDRAM
		l.ddramAddr = 0
		l.displayAddr = 0
		l.render()
	case 2: // Entry mode set
		if data&0x02 == 0 {
			l.cfg.shiftDir = shiftLeft
		} else {
			l.cfg.shiftDir = shiftRight
		}
		if data&0x01 == 0 {
			l.cfg.displayBehavior = behaviorMoveCursor
		} else {
			l.cfg.displayBehavior = behaviorBoth
		}
	case 3: // Display on/off control
		l.cfg.displayOn = data&0x04 != 0
		l.cfg.cursorOn = data&0x02 != 0
		if data&0x01 == 0 {
			l.cfg.blinkOn = false
			l.blinkOn = false
		} else {
			l.cfg.blinkOn = true
			l.blinkCountdown = cyclesBeforeBlink
		}
		l.render()
	case 4: // Cursor/display shift
		cursorOrDisplay := data & 0x08
		leftOrRight := data & 0x04
		behavior := behaviorMoveCursor
		if cursorOrDisplay != 0 {
			behavior = behaviorShiftDisplay
		}
		dir := shiftLeft
		if leftOrRight != 0 {
			dir = shiftRight
		}
		l.cursorDisplayShift(dir, behavior)
		l.render()
	case 5: // Function set
		fullyValid := true
		if data&0x10 == 0 {
			l.waitingForNibble = true
			if l.cfg.dataLength == dataLength8 {
				fullyValid = false
			}
			l.cfg.dataLength = dataLength4
		} else {
			l.cfg.dataLength = dataLength8
		}
		if fullyValid {
			if data&0x08 == 0 {
				l.cfg.lines = oneLine
			} else {
				l.cfg.lines = twoLine
			}
			if data&0x04 == 0 {
				l.cfg.font = font5x8
			} else {
				l.cfg.font = font5x10
			}
			for i := range l.ddram {
				l.ddram[i] = 0x20
			}
			l.render()
		}
	case 6: // Set CGRAM address
		l.addrCounter = counterCGRAM
		return fmt.Errorf("lcd: set CGRAM address: %w", ErrUnimplemented)
	case 7: // Set DDRAM address
		l.addrCounter = counterDDRAM
		addr := data & 0x7F
		if err := l.validDDRAMAddr(addr); err != nil {
			return err
		}
		l.ddramAddr = addr
		l.render()
	}
	return nil
}

func (l *LCD) writeData() error {
	switch l.addrCounter {
	case counterDDRAM:
		l.ddram[l.ddramAddr] = l.pins.data
		l.cursorDisplayShift(l.cfg.shiftDir, l.cfg.displayBehavior)
		return nil
	default:
		return fmt.Errorf("lcd: write CGRAM: %w", ErrUnimplemented)
	}
}

func highBit(b uint8) int {
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

func (l *LCD) validDDRAMAddr(addr uint8) error {
	switch l.cfg.lines {
	case oneLine:
		if addr > 0x4F {
			return fmt.Errorf("%w: 0x%02X outside 1-line range 0x00-0x4F", ErrIllegalAddress, addr)
		}
	case twoLine:
		if (addr >= 0x28 && addr <= 0x3F) || addr >= 0x68 {
			return fmt.Errorf("%w: 0x%02X outside 2-line range", ErrIllegalAddress, addr)
		}
	}
	return nil
}

// cursorDisplayShift advances the DDRAM cursor and/or the display window
// start address, wrapping through the valid-address set per line mode.
// The wrap table is carried verbatim from lcd.rs::cursor_display_shift.
func (l *LCD) cursorDisplayShift(dir shiftDir, behavior displayBehavior) {
	if behavior != behaviorShiftDisplay {
		if dir == shiftLeft {
			l.ddramAddr--
		} else {
			l.ddramAddr++
		}
		switch l.cfg.lines {
		case oneLine:
			switch l.ddramAddr {
			case 0xFF:
				l.ddramAddr = 0x4F
			case 0x50:
				l.ddramAddr = 0x00
			}
		case twoLine:
			switch l.ddramAddr {
			case 0xFF:
				l.ddramAddr = 0x67
			case 0x28:
				l.ddramAddr = 0x40
			case 0x3F:
				l.ddramAddr = 0x27
			case 0x68:
				l.ddramAddr = 0x00
			}
		}
	}

	if behavior != behaviorMoveCursor {
		if dir == shiftLeft {
			l.displayAddr--
		} else {
			l.displayAddr++
		}
		switch l.cfg.lines {
		case oneLine:
			switch l.displayAddr {
			case 0xFF:
				l.displayAddr = 0x4F
			case 0x50:
				l.displayAddr = 0x00
			}
		case twoLine:
			switch l.displayAddr {
			case 0xFF:
				l.displayAddr = 0x27
			case 0x28:
				l.displayAddr = 0x00
			}
		}
	}

	l.render()
}

// ddramToString renders ddram[start:end] through the font table,
// underlaying the cursor glyph and, while blinking, the inverse glyph
// at ddramAddr.
func (l *LCD) ddramToString(start, end uint8) string {
	var b strings.Builder
	for i, code := range l.ddram[start:end] {
		addr := start + uint8(i)
		if l.cfg.cursorOn && addr == l.ddramAddr {
			b.WriteString("‌̲")
		}
		if l.blinkOn && addr == l.ddramAddr {
			b.WriteRune(fontTable[0xFF])
		} else {
			b.WriteRune(fontTable[code])
		}
	}
	return b.String()
}

// render rebuilds the boxed 16-column window starting at displayAddr,
// matching lcd.rs::update_screen's layout exactly.
func (l *LCD) render() {
	addr := l.displayAddr
	var b strings.Builder
	b.WriteString("╔════════════════╗\n║")

	switch l.cfg.lines {
	case oneLine:
		if addr > 0x40 {
			b.WriteString(l.ddramToString(addr, 0x50))
			b.WriteString(l.ddramToString(0x00, addr-0x40))
		} else {
			b.WriteString(l.ddramToString(addr, addr+0x10))
		}
		b.WriteString("║\n║                ")
	case twoLine:
		if addr > 0x18 {
			b.WriteString(l.ddramToString(addr, 0x28))
			b.WriteString(l.ddramToString(0x00, addr-0x18))
			b.WriteString("║\n║")
			b.WriteString(l.ddramToString(addr+0x40, 0x68))
			b.WriteString(l.ddramToString(0x40, addr+0x28))
		} else {
			b.WriteString(l.ddramToString(addr, addr+0x10))
			b.WriteString("║\n║")
			b.WriteString(l.ddramToString(addr+0x40, addr+0x50))
		}
	}

	b.WriteString("║\n╚════════════════╝")
	l.screen = b.String()
}
