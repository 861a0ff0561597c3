package internal

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

func (vm *C8VM) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS:
		vm.display.Clear()
		vm.drawFlag = true
	case OpRET:
		if vm.sp == 0 {
			return ErrStackUnderflow
		}
		vm.sp--
		vm.pc = vm.stack[vm.sp]
		return nil
	case OpJP:
		vm.pc = ins.NNN
		return nil
	case OpCALL:
		if vm.sp == stackDepth {
			return ErrStackOverflow
		}
		vm.stack[vm.sp] = vm.pc + 2
		vm.sp++
		vm.pc = ins.NNN
		return nil
	case OpSEByte:
		vm.skipIf(vm.regV[x] == ins.KK)
	case OpSNEByte:
		vm.skipIf(vm.regV[x] != ins.KK)
	case OpSEReg:
		vm.skipIf(vm.regV[x] == vm.regV[y])
	case OpLDByte:
		vm.regV[x] = ins.KK
	case OpADDByte:
		vm.regV[x] += ins.KK
	case OpLDReg:
		vm.regV[x] = vm.regV[y]
	case OpOR:
		vm.regV[x] |= vm.regV[y]
	case OpAND:
		vm.regV[x] &= vm.regV[y]
	case OpXOR:
		vm.regV[x] ^= vm.regV[y]
	case OpADDReg:
		sum := uint16(vm.regV[x]) + uint16(vm.regV[y])
		vm.regV[x] = uint8(sum)
		vm.regV[0xF] = flag(sum > 0xFF)
	case OpSUB:
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[0xF] = flag(vx > vy)
		vm.regV[x] = vx - vy
	case OpSHR:
		vx := vm.regV[x]
		vm.regV[0xF] = vx & 0x01
		vm.regV[x] = vx >> 1
	case OpSUBN:
		// the result goes to Vy, not Vx
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[0xF] = flag(vy > vx)
		vm.regV[y] = vy - vx
	case OpSHL:
		vx := vm.regV[x]
		vm.regV[0xF] = vx >> 7
		vm.regV[x] = vx << 1
	case OpSNEReg:
		vm.skipIf(vm.regV[x] != vm.regV[y])
	case OpLDI:
		vm.regI = ins.NNN
	case OpJPV0:
		vm.pc = ins.NNN + uint16(vm.regV[0])
		return nil
	case OpRND:
		vm.regV[x] = uint8(vm.rng.Intn(256)) & ins.KK
	case OpDRW:
		if err := vm.drawSprite(vm.regV[x], vm.regV[y], ins.N); err != nil {
			return err
		}
	case OpSKP:
		vm.skipIf(vm.keypad.IsKeyHeld(vm.regV[x]))
	case OpSKNP:
		vm.skipIf(!vm.keypad.IsKeyHeld(vm.regV[x]))
	case OpLDVxDT:
		vm.regV[x] = vm.delayTimer
	case OpLDVxK:
		vm.paused = true
		vm.waitReg = x
		vm.logger.Debug("Waiting for key", log.Hex("register", x))
	case OpLDDTVx:
		vm.delayTimer = vm.regV[x]
	case OpLDSTVx:
		// sound is not emulated
	case OpADDI:
		vm.regI += uint16(vm.regV[x])
	case OpLDF:
		vm.regI = uint16(vm.regV[x]) * 5
	case OpLDB:
		if err := vm.checkRange(vm.regI, 3); err != nil {
			return err
		}
		vx := vm.regV[x]
		vm.memory[vm.regI] = vx / 100
		vm.memory[vm.regI+1] = (vx / 10) % 10
		vm.memory[vm.regI+2] = vx % 10
	case OpLDIVx:
		if err := vm.checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.memory[vm.regI:], vm.regV[:x+1])
	case OpLDVxI:
		if err := vm.checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.regV[:x+1], vm.memory[vm.regI:])
	default:
		return ErrUnknownOpcode
	}

	vm.pc += 2
	return nil
}

func (vm *C8VM) skipIf(cond bool) {
	if cond {
		vm.pc += 2
	}
}

// drawSprite XORs an n-byte sprite read from I onto the display at (x, y).
// VF is set if any pixel was erased.
func (vm *C8VM) drawSprite(x, y, n uint8) error {
	if err := vm.checkRange(vm.regI, int(n)); err != nil {
		return err
	}
	vm.regV[0xF] = 0
	for row := uint8(0); row < n; row++ {
		spriteByte := vm.memory[vm.regI+uint16(row)]
		for col := uint8(0); col < 8; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}
			if !vm.display.TogglePixel(int(x)+int(col), int(y)+int(row)) {
				vm.regV[0xF] = 1
			}
		}
	}
	vm.drawFlag = true
	return nil
}

// checkRange verifies that size bytes starting at addr lie inside memory
func (vm *C8VM) checkRange(addr uint16, size int) error {
	if int(addr)+size > totalMemory {
		return fmt.Errorf("%w: %d bytes at %04X", ErrMemoryOutOfBounds, size, addr)
	}
	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
