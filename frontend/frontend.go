// Package frontend is the bubbletea TUI: it renders the snapshots the
// orchestrator publishes (PORTA/PORTB levels, cycle count, LCD screen,
// Paused/Stopped) and turns keystrokes into messages.Control values.
// It is adapted from teacher monitor/main.go's Model/Update/View shape
// and lipgloss styling, replacing direct *cpu.CPU/*Memory field access
// with the spec's channel protocol: nothing in this package ever reads
// CPU or VIA state directly.
package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sbc65c02/emulator/messages"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	portStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(30)

	lcdStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// snapshotMsg adapts a messages.Snapshot value into a tea.Msg so it can
// flow through bubbletea's Update loop like any keypress.
type snapshotMsg struct{ messages.Snapshot }

// Model is the TUI's bubbletea model. It owns neither the CPU nor the
// VIA: everything it shows arrived over snapshotCh, and everything it
// requests leaves over controlCh.
type Model struct {
	controlCh  chan<- messages.Control
	snapshotCh <-chan messages.Snapshot

	portA, portB uint8
	cycleCount   uint64
	lcdScreen    string
	running      bool
	stopped      bool

	waitInput      textinput.Model
	showingWait    bool
	breakpointsOn  bool
	width, height  int
}

// New returns a Model wired to the given channel pair. controlCh must be
// the same channel the orchestrator's Run method reads from; snapshotCh
// must be the same channel it writes to.
func New(controlCh chan<- messages.Control, snapshotCh <-chan messages.Snapshot) Model {
	ti := textinput.New()
	ti.Placeholder = "microseconds (e.g. 50000)"
	ti.CharLimit = 8
	ti.Width = 12
	return Model{
		controlCh:  controlCh,
		snapshotCh: snapshotCh,
		waitInput:  ti,
	}
}

// waitForSnapshot blocks on snapshotCh and turns the next value into a
// tea.Msg; Update re-issues this command after every snapshot so the
// model keeps draining the channel for as long as the program runs.
func waitForSnapshot(ch <-chan messages.Snapshot) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{msg}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.snapshotCh)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		switch s := msg.Snapshot.(type) {
		case messages.PortA:
			m.portA = s.Value
		case messages.PortB:
			m.portB = s.Value
		case messages.CycleCount:
			m.cycleCount = s.Count
		case messages.LcdScreen:
			m.lcdScreen = s.Text
		case messages.Paused:
			m.running = false
		case messages.Stopped:
			m.running = false
			m.stopped = true
		}
		return m, waitForSnapshot(m.snapshotCh)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if m.showingWait {
			switch msg.Type {
			case tea.KeyEnter:
				if micros, err := strconv.ParseUint(m.waitInput.Value(), 10, 32); err == nil {
					m.controlCh <- messages.ChangeWaitTime{Microseconds: uint32(micros)}
				}
				m.showingWait = false
				return m, nil
			case tea.KeyEsc:
				m.showingWait = false
				return m, nil
			}
			var cmd tea.Cmd
			m.waitInput, cmd = m.waitInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.controlCh <- messages.ExitControl{}
			return m, tea.Quit
		case "r":
			if !m.stopped {
				m.running = true
				m.controlCh <- messages.Run{}
			}
		case "p":
			if !m.stopped && m.running {
				m.running = false
				m.controlCh <- messages.Stop{}
			}
		case "s":
			if !m.stopped && !m.running {
				m.controlCh <- messages.Step{}
			}
		case "w":
			m.showingWait = true
			m.waitInput.Focus()
			return m, textinput.Blink
		case "b":
			m.breakpointsOn = !m.breakpointsOn
			m.controlCh <- messages.Breakpoint{Enabled: m.breakpointsOn}
		case "l":
			m.controlCh <- messages.ShowLog{Enabled: true}
		}
	}
	return m, nil
}

func (m Model) formatPort(name string, value uint8) string {
	var bits strings.Builder
	for bit := 7; bit >= 0; bit-- {
		if value&(1<<uint(bit)) != 0 {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	return fmt.Sprintf("%s: %s ($%02X)", name, bits.String(), value)
}

func (m Model) View() string {
	state := "Idle"
	if m.stopped {
		state = "Stopped"
	} else if m.running {
		state = "Running"
	}

	portPanel := portStyle.Render(fmt.Sprintf(
		"State: %s\nCycles: %d\n\n%s\n%s",
		state, m.cycleCount, m.formatPort("PORTA", m.portA), m.formatPort("PORTB", m.portB),
	))

	screen := m.lcdScreen
	if screen == "" {
		screen = "(LCD disabled)"
	}
	lcdPanel := lcdStyle.Render(fmt.Sprintf("LCD\n\n%s", screen))

	content := lipgloss.JoinHorizontal(lipgloss.Top, portPanel, lipgloss.PlaceHorizontal(3, lipgloss.Left, lcdPanel))

	help := titleStyle.Render("r: run • p: pause • s: step • w: wait time • b: breakpoint • l: show log • q: quit")
	if m.stopped {
		help = pausedStyle.Render("CPU stopped (STP) — q: quit")
	}

	view := lipgloss.JoinVertical(lipgloss.Left, content, help)

	if m.showingWait {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			Width(30).
			Render("Step wait time (microseconds):\n\n" + m.waitInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, view, dialog)
	}
	return view
}
