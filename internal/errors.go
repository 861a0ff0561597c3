package internal

import (
	"errors"
	"fmt"
)

// Errors reported by the VM. Execution errors are wrapped in an *ExecError.
var (
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	ErrStackUnderflow    = errors.New("call stack underflow")
	ErrStackOverflow     = errors.New("call stack overflow")
	ErrProgramTooLarge   = errors.New("program size exceeds the maximum size")
	ErrInvalidSpeed      = errors.New("speed must be at least 1 instruction per cycle")
)

// ExecError is a fatal error raised while executing the instruction at PC
type ExecError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: opcode %04X at PC %04X", e.Err, e.Opcode, e.PC)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
