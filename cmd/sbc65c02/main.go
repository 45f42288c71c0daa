// Command sbc65c02 loads a 32 KiB ROM image and runs it on the emulated
// board: a WDC 65C02 CPU, a WDC 65C22 VIA, and (unless disabled) an
// HD44780 character LCD, driven through a bubbletea TUI. It is adapted
// from the teacher's c64emu/main.go and mon/main.go entry points: flat
// flag.String/flag.Bool parsing, a positional binary-image argument, no
// CLI framework, replacing the teacher's single-threaded run loop with
// the spec's three-actor protocol supervised by an errgroup.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/sbc65c02/emulator/bus"
	"github.com/sbc65c02/emulator/frontend"
	"github.com/sbc65c02/emulator/lcd"
	"github.com/sbc65c02/emulator/logsink"
	"github.com/sbc65c02/emulator/messages"
	"github.com/sbc65c02/emulator/system"
)

// romWindowSize is the size of the ROM address window (0x8000-0xFFFF).
const romWindowSize = 0x10000 - 0x8000

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sbc65c02:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sbc65c02", flag.ContinueOnError)
	logDir := fs.String("l", "", "directory to write a log file into (disabled if empty)")
	noLCD := fs.Bool("d", false, "disable the LCD subsystem")
	allowGarbage := fs.Bool("allow-garbage", false, "log garbage-memory reads instead of aborting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: sbc65c02 [-l dir] [-d] [--allow-garbage] <rom-image>")
	}

	rom, err := loadROM(fs.Arg(0))
	if err != nil {
		return err
	}

	var logFile *os.File
	if *logDir != "" {
		logFile, err = createLogFile(*logDir)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	policy := bus.Strict
	if *allowGarbage {
		policy = bus.Permissive
	}

	controlCh := make(chan messages.Control)
	snapshotCh := make(chan messages.Snapshot, 64)
	lcdCh := make(chan messages.PinEdge, 64)
	logCh := make(chan messages.Log, 256)

	sink := logsink.New(logFile, logCh)

	cfg := system.Config{
		LCDEnabled:     !*noLCD,
		GarbagePolicy:  policy,
		PAAsBreakpoint: false,
	}
	sys, err := system.New(cfg, rom, controlCh, snapshotCh, lcdCh, logCh)
	if err != nil {
		return fmt.Errorf("initializing system: %w", err)
	}

	// sys and the LCD worker are the only senders on logCh; once both have
	// returned it is safe to close it and let the log sink drain and exit.
	var actors errgroup.Group
	if cfg.LCDEnabled {
		actors.Go(func() error {
			system.RunLCD(lcd.New(), lcdCh, snapshotCh, logCh)
			return nil
		})
	}
	actors.Go(func() error {
		sys.Run()
		return nil
	})

	sinkDone := make(chan struct{})
	go func() {
		sink.Run()
		close(sinkDone)
	}()

	model := frontend.New(controlCh, snapshotCh)
	_, teaErr := tea.NewProgram(model).Run()

	if err := actors.Wait(); err != nil {
		return err
	}
	close(logCh)
	<-sinkDone

	if teaErr != nil {
		return fmt.Errorf("frontend: %w", teaErr)
	}
	return nil
}

// loadROM reads a ROM image. Only an image exactly the size of the ROM
// window is accepted: larger images are rejected, and so are smaller
// ones, matching spec.md's note that the reference implementation
// rejects undersized files: a truncated image almost always means the
// wrong file was given.
func loadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM image: %w", err)
	}
	if len(data) > romWindowSize {
		return nil, fmt.Errorf("ROM image %q is %d bytes, exceeds the %d-byte window", path, len(data), romWindowSize)
	}
	if len(data) < romWindowSize {
		return nil, fmt.Errorf("ROM image %q is %d bytes, short of the required %d-byte image", path, len(data), romWindowSize)
	}
	return data, nil
}

func createLogFile(dir string) (*os.File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log directory %q is not a directory", dir)
	}
	f, err := os.CreateTemp(dir, "log_*.txt")
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}
	return f, nil
}
