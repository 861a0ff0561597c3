package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 VM constants
const (
	totalMemory    = 0x1000
	maxProgramSize = totalMemory - ProgramStart
	stackDepth     = 16

	ProgramStart   = 0x200 // programs are loaded and start executing here
	TimerFrequency = time.Second / 60
	ScreenWidth    = 64
	ScreenHeight   = 32
)

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	regV       [16]uint8          // 16 general purpose 8-bit registers
	regI       uint16             // 16-bit register that is generally used to store memory addresses
	delayTimer uint8              // Delay timer
	pc         uint16             // Program counter
	sp         uint8              // Stack pointer
	stack      [stackDepth]uint16 // A stack of 16 16-bit values
	memory     [totalMemory]uint8 // 4 KB global memory

	speed   int   // instructions executed per cycle
	paused  bool  // waiting for a key press (Fx0A)
	waitReg uint8 // register receiving the key once unpaused

	drawFlag    bool // the display changed during this cycle
	programSize int

	display Display
	keypad  Keypad
	rng     *rand.Rand
	logger  *log.Logger
	trace   bool
}

// Option configures a C8VM
type Option func(*C8VM)

// WithSpeed sets the number of instructions executed per cycle
func WithSpeed(speed int) Option {
	return func(vm *C8VM) {
		vm.speed = speed
	}
}

// WithLogger sets the logger used by the VM
func WithLogger(logger *log.Logger) Option {
	return func(vm *C8VM) {
		vm.logger = logger
	}
}

// WithTrace enables logging of every executed instruction at debug level
func WithTrace(trace bool) Option {
	return func(vm *C8VM) {
		vm.trace = trace
	}
}

// WithRandSource sets the source of the RND instruction
func WithRandSource(src rand.Source) Option {
	return func(vm *C8VM) {
		vm.rng = rand.New(src)
	}
}

var fontset = []uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM drawing on the
// given display and reading the given keypad
func NewC8VM(display Display, keypad Keypad, opts ...Option) (*C8VM, error) {
	vm := &C8VM{
		pc:      ProgramStart,
		speed:   1,
		display: display,
		keypad:  keypad,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.speed < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpeed, vm.speed)
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}
	copy(vm.memory[:], fontset)
	return vm, nil
}

// LoadProgram loads a given CHIP-8 program into the VM's memory
func (vm *C8VM) LoadProgram(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	if err := vm.LoadBytes(data); err != nil {
		return fmt.Errorf("loading program '%s': %w", filename, err)
	}
	vm.logger.Info("Loaded program",
		log.String("file", filename),
		log.Hex("size", len(data)))
	return nil
}

// LoadBytes copies a program image into memory starting at 0x200.
// Nothing is copied if the image does not fit.
func (vm *C8VM) LoadBytes(data []byte) error {
	if len(data) > maxProgramSize {
		return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrProgramTooLarge, len(data), maxProgramSize)
	}
	copy(vm.memory[ProgramStart:], data)
	vm.programSize = len(data)
	return nil
}

// Program returns a copy of the loaded program image as it is in memory
func (vm *C8VM) Program() []byte {
	return append([]byte(nil), vm.memory[ProgramStart:ProgramStart+vm.programSize]...)
}

// Cycle runs one timer tick of the VM: it executes the configured number of
// instructions, polls the keypad and decrements the delay timer. It returns
// false once the host asked to quit. Any error is fatal for the run.
func (vm *C8VM) Cycle() (bool, error) {
	if vm.paused {
		vm.resume()
	}

	for i := 0; i < vm.speed && !vm.paused; i++ {
		if err := vm.Step(); err != nil {
			return false, err
		}
	}

	if vm.keypad.Poll() {
		return false, nil
	}

	if !vm.paused && vm.delayTimer > 0 {
		vm.delayTimer--
	}

	if vm.drawFlag {
		vm.display.Present()
		vm.drawFlag = false
	}
	return true, nil
}

// Step fetches, decodes and executes a single instruction
func (vm *C8VM) Step() error {
	pc := vm.pc
	opcode, err := vm.fetch()
	if err != nil {
		return &ExecError{PC: pc, Opcode: opcode, Err: err}
	}

	ins, err := Decode(opcode)
	if err != nil {
		return &ExecError{PC: pc, Opcode: opcode, Err: err}
	}

	if vm.trace {
		vm.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", Disassemble(opcode)))
	}

	if err := vm.execute(ins); err != nil {
		return &ExecError{PC: pc, Opcode: opcode, Err: err}
	}
	return nil
}

func (vm *C8VM) fetch() (uint16, error) {
	if int(vm.pc)+1 >= totalMemory {
		return 0, fmt.Errorf("%w: fetch at %04X", ErrMemoryOutOfBounds, vm.pc)
	}
	return uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1]), nil
}

func (vm *C8VM) resume() {
	code, ok := vm.keypad.LastKeyPressed()
	if !ok {
		return
	}
	vm.regV[vm.waitReg] = code
	vm.paused = false
	vm.logger.Debug("Key wait finished", log.Uint8("key", code))
}

// Paused returns whether the VM is waiting for a key press
func (vm *C8VM) Paused() bool {
	return vm.paused
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// State is a snapshot of the VM registers
type State struct {
	V          [16]uint8
	I          uint16
	PC         uint16
	Stack      []uint16
	DelayTimer uint8
	Paused     bool
	Speed      int
}

// State returns a snapshot of the registers, stack and timer
func (vm *C8VM) State() State {
	return State{
		V:          vm.regV,
		I:          vm.regI,
		PC:         vm.pc,
		Stack:      append([]uint16(nil), vm.stack[:vm.sp]...),
		DelayTimer: vm.delayTimer,
		Paused:     vm.paused,
		Speed:      vm.speed,
	}
}

// DumpState writes a graphviz graph of the current state
func (vm *C8VM) DumpState(w io.Writer) {
	state := vm.State()
	memviz.Map(w, &state)
}
