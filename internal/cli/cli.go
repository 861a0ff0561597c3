// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mnafees/chopper/v2/internal/options"
)

// ParseFlags parses the command line arguments, without the program name,
// into program options
func ParseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("chopper", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	opts := options.New()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	rest := flags.Args()
	if len(rest) != 1 {
		return opts, &UsageError{flags: flags, msg: "exactly one CHIP-8 program expected"}
	}
	opts.Input = rest[0]

	if err := validateOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chopper [options] <CHIP-8 program>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

func validateOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	valid := false
	for _, frontend := range options.Frontends {
		if opts.Frontend == frontend {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d: at least 1 instruction per cycle is required", opts.Speed)
	}
	if opts.Period <= 0 {
		return fmt.Errorf("invalid cycle period %s", opts.Period)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "display and keyboard frontend ("+strings.Join(options.Frontends, "/")+")")
	flags.StringVar(&opts.Title, "title", opts.Title, "window title of the sdl frontend")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "size of a CHIP-8 pixel in the sdl window")
	flags.IntVar(&opts.Speed, "speed", opts.Speed, "instructions executed per cycle")
	flags.DurationVar(&opts.Period, "period", opts.Period, "time between two cycles, the delay timer ticks once per cycle")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed for the random number generator, time based if 0")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print the disassembly of the program and exit")
	flags.BoolVar(&opts.Stats, "stats", false, "serve runtime statistics over HTTP if built with the statsview tag")
	flags.StringVar(&opts.MemViz, "memviz", "", "write a graphviz graph of the machine state to this file on exit")
}
