package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble returns the assembly form of a single opcode, for example
// "LD V0, $05". Words that are not instructions are shown as data.
func Disassemble(opcode uint16) string {
	ins, err := Decode(opcode)
	if err != nil {
		return fmt.Sprintf("DW $%04X", opcode)
	}
	name, ok := mnemonic(opcode)
	if !ok {
		return fmt.Sprintf("DW $%04X", opcode)
	}
	if params := operands(ins); params != "" {
		return name + " " + params
	}
	return name
}

// mnemonic looks the opcode up in the instruction tables of retrogolib
func mnemonic(opcode uint16) (string, bool) {
	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Instruction == nil || op.Info.Mask&opcode != op.Info.Value {
			continue
		}
		return strings.ToUpper(op.Instruction.Name), true
	}
	return "", false
}

func operands(ins Instruction) string {
	vx := fmt.Sprintf("V%X", ins.X)
	vy := fmt.Sprintf("V%X", ins.Y)

	switch ins.Op {
	case OpJP, OpCALL:
		return fmt.Sprintf("$%03X", ins.NNN)
	case OpSEByte, OpSNEByte, OpLDByte, OpADDByte, OpRND:
		return fmt.Sprintf("%s, $%02X", vx, ins.KK)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return vx + ", " + vy
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return vx
	case OpLDI:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case OpJPV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case OpDRW:
		return fmt.Sprintf("%s, %s, %d", vx, vy, ins.N)
	case OpLDVxDT:
		return vx + ", DT"
	case OpLDVxK:
		return vx + ", K"
	case OpLDDTVx:
		return "DT, " + vx
	case OpLDSTVx:
		return "ST, " + vx
	case OpADDI:
		return "I, " + vx
	case OpLDF:
		return "F, " + vx
	case OpLDB:
		return "B, " + vx
	case OpLDIVx:
		return "[I], " + vx
	case OpLDVxI:
		return vx + ", [I]"
	}
	return ""
}

// Listing writes one line per 16-bit word of program, addressed from base
func Listing(w io.Writer, program []byte, base uint16) error {
	for i := 0; i < len(program); i += 2 {
		addr := int(base) + i
		if i+1 == len(program) {
			if _, err := fmt.Fprintf(w, "%04X  %02X    DB $%02X\n", addr, program[i], program[i]); err != nil {
				return err
			}
			break
		}
		opcode := uint16(program[i])<<8 | uint16(program[i+1])
		if _, err := fmt.Fprintf(w, "%04X  %04X  %s\n", addr, opcode, Disassemble(opcode)); err != nil {
			return err
		}
	}
	return nil
}
