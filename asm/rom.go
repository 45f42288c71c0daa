package asm

import "fmt"

// ROMBase and ROMSize describe the bus's ROM window (bus.go's romStart/
// romSize), duplicated here so fixtures can be built without importing
// the bus package.
const (
	ROMBase = 0x8000
	ROMSize = 0x10000 - ROMBase
)

// BuildROM assembles source and zero-pads the result up to the full
// 32 KiB ROM window, so callers can write a small .org $8000 program plus
// a .org $FFFC reset/IRQ vector block and get back something loadable
// directly by bus.LoadROM without hand-counting padding bytes.
func BuildROM(source string) ([]byte, error) {
	out, err := Assemble(source)
	if err != nil {
		return nil, err
	}
	if len(out) > ROMSize {
		return nil, fmt.Errorf("asm: assembled image is %d bytes, exceeds the %d-byte ROM window", len(out), ROMSize)
	}
	if len(out) < ROMSize {
		padded := make([]byte, ROMSize)
		copy(padded, out)
		out = padded
	}
	return out, nil
}
