// Package main implements the chopper CHIP-8 emulator
package main

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/cli"
	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/mnafees/chopper/v2/internal/statsview"
	"github.com/mnafees/chopper/v2/pkg/sdl"
	"github.com/mnafees/chopper/v2/pkg/termbox"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// SDL has to be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

// frontend is a host display and keyboard the VM runs on
type frontend interface {
	internal.Display
	internal.Keypad

	Destroy()
}

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage(os.Stderr)
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	if !opts.Disasm {
		printBanner(logger, opts)
	}

	io, setup := newFrontend(opts)

	vmOpts := []internal.Option{
		internal.WithSpeed(opts.Speed),
		internal.WithLogger(logger),
		internal.WithTrace(opts.Trace),
	}
	if opts.Seed != 0 {
		vmOpts = append(vmOpts, internal.WithRandSource(rand.NewSource(opts.Seed)))
	}
	vm, err := internal.NewC8VM(io, io, vmOpts...)
	if err != nil {
		logger.Error("Creating VM failed", log.Err(err))
		os.Exit(1)
	}
	if err := vm.LoadProgram(opts.Input); err != nil {
		logger.Error("Loading program failed", log.Err(err))
		os.Exit(1)
	}

	if opts.Disasm {
		if err := internal.Listing(os.Stdout, vm.Program(), internal.ProgramStart); err != nil {
			logger.Error("Disassembling failed", log.Err(err))
			os.Exit(1)
		}
		return
	}

	if opts.Stats {
		statsview.Launch(ctx, logger)
	}

	if err := setup(); err != nil {
		logger.Error("Setting up frontend failed", log.Err(err))
		os.Exit(1)
	}
	err = internal.Run(ctx, vm, opts.Period)
	io.Destroy()

	if opts.MemViz != "" {
		if dumpErr := dumpState(vm, opts.MemViz); dumpErr != nil {
			logger.Error("Writing machine state failed", log.Err(dumpErr))
		}
	}

	if err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func newFrontend(opts options.Program) (frontend, func() error) {
	switch opts.Frontend {
	case options.FrontendTerminal:
		io := termbox.NewIO()
		return io, io.Setup
	default:
		io := sdl.NewIO(opts.Scale)
		return io, func() error {
			return io.SetupWindow(opts.Title)
		}
	}
}

func dumpState(vm *internal.C8VM, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", filename, err)
	}
	vm.DumpState(file)
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", filename, err)
	}
	return nil
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chopper - CHIP-8 emulator", log.String("version", buildinfo.Version(version, commit, date)))
}
