package cpu

type addrMode uint8

const (
	// Immediate: IMM
	//
	// The operand is the byte following the opcode.
	// For example, LDA #$10 loads the accumulator (A) with the value $10.
	//
	// Format: #$nn
	addrModeIMM addrMode = iota + 1

	// Zero Page: ZP
	//
	// The operand points to an address within the first 256 bytes of memory.
	// One operand byte instead of two, so the instruction is one byte shorter
	// and one cycle faster than its absolute counterpart.
	// For example, LDA $20 loads the accumulator (A) from the address $0020.
	//
	// Format: $nn
	addrModeZP

	// Zero Page Indexed with X: ZPX
	//
	// Zero page address plus X. The sum wraps inside the zero page.
	// For example, LDA $20,X loads the accumulator (A) from the address ($20 + X) & $FF.
	//
	// Format: $nn,X
	addrModeZPX

	// Zero Page Indexed with Y: ZPY
	//
	// Like ZPX but with the Y register. Only LDX and STX use it.
	//
	// Format: $nn,Y
	addrModeZPY

	// Absolute: ABS
	//
	// Full 16-bit address, low byte first.
	// For example, LDA $1234 loads the accumulator (A) from address $1234.
	//
	// Format: $nnnn
	addrModeABS

	// Absolute Indexed with X: ABSX
	//
	// Full 16-bit address plus X. Reads pay one more cycle when the sum
	// lands on a different page than the base address.
	//
	// Format: $nnnn,X
	addrModeABSX

	// Absolute Indexed with Y: ABSY
	//
	// Same as ABSX with the Y register.
	//
	// Format: $nnnn,Y
	addrModeABSY

	// Indirect: IND
	//
	// The operand is the address of a pointer. Only JMP uses it.
	// The pointer high byte is fetched without carry into the high address
	// byte, so JMP ($10FF) takes its high byte from $1000.
	//
	// Format: ($nnnn)
	addrModeIND

	// Indexed Indirect (X): INDX
	//
	// The pointer lives at zero page address $nn + X (wrapping in zero page).
	//
	// Format: ($nn,X)
	addrModeINDX

	// Indirect Indexed (Y): INDY
	//
	// The pointer lives at zero page address $nn, Y is added to the pointer.
	// Reads pay one more cycle on a page crossing.
	//
	// Format: ($nn),Y
	addrModeINDY

	// Relative: REL
	//
	// Signed 8-bit offset from the address of the next instruction. Branches only.
	//
	// Format: $nn
	addrModeREL

	// Accumulator: ACC
	//
	// The operation works on A. Shifts and rotates only.
	//
	// Format: A
	addrModeACC

	// Implied: IMP
	//
	// No operand.
	addrModeIMP
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// operandBytes is the instruction length minus the opcode byte.
func (mode addrMode) operandBytes() uint16 {
	switch mode {
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 2
	case addrModeACC, addrModeIMP:
		return 0
	}
	return 1
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// fetch resolves the effective address of the current instruction.
// Only pointer and operand bytes are read here, the operand itself is read
// by the operation so that stores never touch their target with a read.
// The index add of the zero page modes is one internal cycle, spent
// before the next access.
func (c *CPU) fetch(mode addrMode) {
	c.addrMode = mode
	c.pageCrossed = false
	c.operandAddr = 0

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++

	case addrModeZPX:
		c.operandAddr = uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.bus.Idle(1)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.pc) + c.y)
		c.pc++
		c.bus.Idle(1)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc)
		c.pc += 2

	case addrModeABSX:
		base := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = base + uint16(c.x)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeABSY:
		base := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = base + uint16(c.y)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeIND:
		ptr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = c.read16Wrapped(ptr)

	case addrModeINDX:
		ptr := c.read8(c.pc) + c.x
		c.pc++
		c.bus.Idle(1)
		c.operandAddr = c.read16Wrapped(uint16(ptr))

	case addrModeINDY:
		ptr := c.read8(c.pc)
		c.pc++
		base := c.read16Wrapped(uint16(ptr))
		c.operandAddr = base + uint16(c.y)
		c.pageCrossed = isDiffPage(base, c.operandAddr)

	case addrModeREL:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		if c.operandAddr&0x80 > 0 {
			c.operandAddr |= 0xff00 // add leading 1 s to save the sign
		}

	case addrModeACC, addrModeIMP:
	}
}

// indexed reports whether the effective address was formed with a carry
// into the high byte that the CPU fixes up in an extra cycle.
func (c *CPU) indexed() bool {
	switch c.addrMode {
	case addrModeABSX, addrModeABSY, addrModeINDY:
		return true
	}
	return false
}

// operand reads the value the current instruction works on.
// A page crossing costs the fix-up cycle before the read.
func (c *CPU) operand() uint8 {
	if c.addrMode == addrModeACC {
		return c.a
	}
	if c.pageCrossed {
		c.bus.Idle(1)
	}
	return c.read8(c.operandAddr)
}

// modify reads the operand of a read-modify-write operation. Indexed modes
// always spend the fix-up cycle.
func (c *CPU) modify() uint8 {
	if c.addrMode == addrModeACC {
		return c.a
	}
	if c.indexed() {
		c.bus.Idle(1)
	}
	return c.read8(c.operandAddr)
}

// writeBack stores the result of a read-modify-write operation, one cycle
// after the read.
func (c *CPU) writeBack(data uint8) {
	if c.addrMode == addrModeACC {
		c.a = data
		return
	}
	c.bus.Idle(1)
	c.write8(c.operandAddr, data)
}

// store writes a register to the effective address. Indexed modes always
// spend the fix-up cycle.
func (c *CPU) store(data uint8) {
	if c.indexed() {
		c.bus.Idle(1)
	}
	c.write8(c.operandAddr, data)
}
