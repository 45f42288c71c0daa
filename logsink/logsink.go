// Package logsink is the sole writer of the log file/console: a single
// goroutine draining a channel of messages.Log values, adapted from
// original_source/emulator/src/logger.rs's Logger actor onto
// github.com/rs/zerolog instead of hand-rolled fmt.Fprintf.
package logsink

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/sbc65c02/emulator/messages"
)

// Sink owns the log file (if any) and the print-to-stdout toggle. It is
// driven entirely by messages read off its channel; nothing outside
// this package ever touches the underlying zerolog.Logger or file
// handle directly.
type Sink struct {
	console  zerolog.Logger
	file     *os.File
	printLog bool
	ch       <-chan messages.Log
}

// New returns a Sink. file may be nil, matching the original's
// Option<File> (the CLI run without -l). Print-to-stdout starts
// disabled, matching logger.rs's Logger::new default.
func New(file *os.File, ch <-chan messages.Log) *Sink {
	return &Sink{
		console: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).
			With().Timestamp().Logger(),
		file: file,
		ch:   ch,
	}
}

// Warnf implements bus.Logger, letting the bus log permissive-mode
// garbage-read warnings straight to the console logger without routing
// through the channel (those calls already happen on the orchestrator
// goroutine, which owns no other writer).
func (s *Sink) Warnf(format string, args ...any) {
	s.console.Warn().Msgf(format, args...)
}

// Run drains ch until an ExitLog message arrives or ch is closed, writing each LogLine
// to the file (always, if configured) and to stdout (only while
// printLog is enabled), matching logger.rs's run loop exactly.
func (s *Sink) Run() {
	for msg := range s.ch {
		switch m := msg.(type) {
		case messages.LogLine:
			if s.printLog {
				s.console.Info().Msg(m.Text)
			}
			if s.file != nil {
				if _, err := s.file.WriteString(m.Text + "\n"); err != nil {
					// Best-effort: a failing log write must not crash the
					// emulator it is merely observing.
					s.console.Error().Err(err).Msg("failed to write log file")
				}
			}
		case messages.ChangePrintLog:
			s.printLog = m.Enabled
		case messages.ExitLog:
			return
		}
	}
}
