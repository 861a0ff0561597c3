// Package options contains the program options.
package options

import "time"

// Supported frontends
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "term"
)

// Frontends lists the valid values of the frontend option
var Frontends = []string{FrontendSDL, FrontendTerminal}

// Program options of the emulator.
type Program struct {
	Input string // CHIP-8 program to run

	Frontend string        // host display and keyboard
	Title    string        // window title of the SDL frontend
	Scale    int           // screen pixels per CHIP-8 pixel
	Speed    int           // instructions executed per cycle
	Period   time.Duration // time between two cycles
	Seed     int64         // seed of the random number generator, 0 for time based

	Debug  bool   // debug level logging
	Quiet  bool   // only log errors
	Trace  bool   // log every executed instruction
	Disasm bool   // print the disassembly of the program and exit
	Stats  bool   // serve runtime statistics over HTTP
	MemViz string // write a graph of the final machine state to this file
}

// New returns program options with defaults set
func New() Program {
	return Program{
		Frontend: FrontendSDL,
		Title:    "Chopper | CHIP-8 Emulator",
		Scale:    20,
		Speed:    1,
		Period:   time.Second / 60,
	}
}
