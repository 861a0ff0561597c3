package internal

// Op identifies one of the 35 CHIP-8 instructions
type Op uint8

// CHIP-8 instructions, named after the mnemonics in the technical reference
const (
	OpInvalid  Op = iota
	OpCLS         // 00E0
	OpRET         // 00EE
	OpJP          // 1nnn
	OpCALL        // 2nnn
	OpSEByte      // 3xkk
	OpSNEByte     // 4xkk
	OpSEReg       // 5xy0
	OpLDByte      // 6xkk
	OpADDByte     // 7xkk
	OpLDReg       // 8xy0
	OpOR          // 8xy1
	OpAND         // 8xy2
	OpXOR         // 8xy3
	OpADDReg      // 8xy4
	OpSUB         // 8xy5
	OpSHR         // 8xy6
	OpSUBN        // 8xy7
	OpSHL         // 8xyE
	OpSNEReg      // 9xy0
	OpLDI         // Annn
	OpJPV0        // Bnnn
	OpRND         // Cxkk
	OpDRW         // Dxyn
	OpSKP         // Ex9E
	OpSKNP        // ExA1
	OpLDVxDT      // Fx07
	OpLDVxK       // Fx0A
	OpLDDTVx      // Fx15
	OpLDSTVx      // Fx18
	OpADDI        // Fx1E
	OpLDF         // Fx29
	OpLDB         // Fx33
	OpLDIVx       // Fx55
	OpLDVxI       // Fx65
)

// Instruction is a decoded opcode together with its operand fields
type Instruction struct {
	Op     Op
	Opcode uint16 // 16-bit opcode of the instruction
	X      uint8  // the lower 4 bits of the high byte of the instruction
	Y      uint8  // the upper 4 bits of the low byte of the instruction
	N      uint8  // the lowest 4 bits of the instruction
	KK     uint8  // the lowest 8 bits of the instruction
	NNN    uint16 // the lowest 12 bits of the instruction
}

// Decode classifies an opcode by its first nibble and, where the first
// nibble is shared, by its lowest byte or nibble.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8((opcode >> 8) & 0x000F),
		Y:      uint8((opcode >> 4) & 0x000F),
		N:      uint8(opcode & 0x000F),
		KK:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			ins.Op = OpCLS
		case 0x00EE:
			ins.Op = OpRET
		}
	case 0x1000:
		ins.Op = OpJP
	case 0x2000:
		ins.Op = OpCALL
	case 0x3000:
		ins.Op = OpSEByte
	case 0x4000:
		ins.Op = OpSNEByte
	case 0x5000:
		if ins.N == 0x0 {
			ins.Op = OpSEReg
		}
	case 0x6000:
		ins.Op = OpLDByte
	case 0x7000:
		ins.Op = OpADDByte
	case 0x8000:
		ins.Op = aluOps[ins.N]
	case 0x9000:
		if ins.N == 0x0 {
			ins.Op = OpSNEReg
		}
	case 0xA000:
		ins.Op = OpLDI
	case 0xB000:
		ins.Op = OpJPV0
	case 0xC000:
		ins.Op = OpRND
	case 0xD000:
		ins.Op = OpDRW
	case 0xE000:
		switch ins.KK {
		case 0x9E:
			ins.Op = OpSKP
		case 0xA1:
			ins.Op = OpSKNP
		}
	case 0xF000:
		ins.Op = miscOps[ins.KK]
	}

	if ins.Op == OpInvalid {
		return ins, ErrUnknownOpcode
	}
	return ins, nil
}

// 8xyN instructions indexed by N
var aluOps = [16]Op{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

// FxKK instructions indexed by KK
var miscOps = map[uint8]Op{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDIVx,
	0x65: OpLDVxI,
}
