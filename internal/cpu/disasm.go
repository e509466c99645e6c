package cpu

import "fmt"

// Peeker reads memory without side effects.
type Peeker interface {
	Peek(addr uint16) uint8
}

// Disassemble returns a map of addresses and their corresponding instructions
// in [from, to]. Memory is read with Peek so registers with read side effects
// are left untouched.
func Disassemble(mem Peeker, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	peek16 := func(addr uint16) uint16 {
		return uint16(mem.Peek(addr)) | uint16(mem.Peek(addr+1))<<8
	}

	addr := uint32(from)
	for addr <= uint32(to) {
		pc := uint16(addr)
		opcode := mem.Peek(pc)
		instr := instructions[opcode]
		if instr.fn == nil {
			disasm[pc] = fmt.Sprintf("$%04X: ??? ($%02X)", pc, opcode)
			addr++
			continue
		}

		name := instr.name
		if instr.unofficial {
			name = "*" + name
		}
		operandAddr := pc + 1
		var operand string
		switch instr.mode {
		case addrModeIMM:
			operand = fmt.Sprintf(" #$%02X", mem.Peek(operandAddr))
		case addrModeZP:
			operand = fmt.Sprintf(" $%02X", mem.Peek(operandAddr))
		case addrModeZPX:
			operand = fmt.Sprintf(" $%02X,X", mem.Peek(operandAddr))
		case addrModeZPY:
			operand = fmt.Sprintf(" $%02X,Y", mem.Peek(operandAddr))
		case addrModeABS:
			operand = fmt.Sprintf(" $%04X", peek16(operandAddr))
		case addrModeABSX:
			operand = fmt.Sprintf(" $%04X,X", peek16(operandAddr))
		case addrModeABSY:
			operand = fmt.Sprintf(" $%04X,Y", peek16(operandAddr))
		case addrModeIND:
			operand = fmt.Sprintf(" ($%04X)", peek16(operandAddr))
		case addrModeINDX:
			operand = fmt.Sprintf(" ($%02X,X)", mem.Peek(operandAddr))
		case addrModeINDY:
			operand = fmt.Sprintf(" ($%02X),Y", mem.Peek(operandAddr))
		case addrModeREL:
			offset := uint16(mem.Peek(operandAddr))
			if offset&0x80 > 0 {
				offset |= 0xff00
			}
			operand = fmt.Sprintf(" $%04X", pc+2+offset)
		case addrModeACC:
			operand = " A"
		}
		disasm[pc] = fmt.Sprintf("$%04X: %s%s {%s}", pc, name, operand, instr.mode)

		addr += 1 + uint32(instr.mode.operandBytes())
	}

	return disasm
}
