package cpu

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func (c *CPU) addPageCrossPenalty() {
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) adcValue(value uint8) {
	if c.revision == NMOS6502 && c.getFlag(flagD) {
		c.adcDecimal(value)
		return
	}
	r16 := uint16(c.a) + uint16(value)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(r8)
	c.setFlag(flagV, isSameSign(c.a, value) && !isSameSign(c.a, r8))
	c.a = r8
}

func (c *CPU) sbcValue(value uint8) {
	if c.revision == NMOS6502 && c.getFlag(flagD) {
		c.sbcDecimal(value)
		return
	}
	c.adcValue(^value)
}

func (c *CPU) compare(reg, value uint8) {
	c.setFlag(flagC, reg >= value)
	c.setFlagsZN(reg - value)
}

func (c *CPU) adc() {
	c.adcValue(c.operand())
	c.addPageCrossPenalty()
}

func (c *CPU) and() {
	c.a &= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCrossPenalty()
}

func (c *CPU) asl() {
	v := c.modify()
	c.setFlag(flagC, v&0x80 > 0)
	r := v << 1
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) jmpIf(condition bool) {
	if !condition {
		return
	}
	c.cycles++
	addr := c.pc + c.operandAddr
	if isDiffPage(c.pc, addr) {
		c.cycles++
	}
	c.pc = addr
}

func (c *CPU) bcc() {
	c.jmpIf(!c.getFlag(flagC))
}

func (c *CPU) bcs() {
	c.jmpIf(c.getFlag(flagC))
}

func (c *CPU) beq() {
	c.jmpIf(c.getFlag(flagZ))
}

func (c *CPU) bit() {
	v := c.operand()
	c.setFlag(flagZ, c.a&v == 0)
	c.setFlag(flagN, v&flagN > 0)
	c.setFlag(flagV, v&flagV > 0)
}

func (c *CPU) bmi() {
	c.jmpIf(c.getFlag(flagN))
}

func (c *CPU) bne() {
	c.jmpIf(!c.getFlag(flagZ))
}

func (c *CPU) bpl() {
	c.jmpIf(!c.getFlag(flagN))
}

// brk is a software IRQ: the byte after the opcode is padding,
// the pushed status has B set.
func (c *CPU) brk() {
	c.pc++
	c.bus.Idle(1)
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB | flagU)
	c.setFlag(flagI, true)
	c.pc = c.read16(irqVector)
}

func (c *CPU) bvc() {
	c.jmpIf(!c.getFlag(flagV))
}

func (c *CPU) bvs() {
	c.jmpIf(c.getFlag(flagV))
}

func (c *CPU) clc() {
	c.setFlag(flagC, false)
}

func (c *CPU) cld() {
	c.setFlag(flagD, false)
}

func (c *CPU) cli() {
	c.setFlag(flagI, false)
}

func (c *CPU) clv() {
	c.setFlag(flagV, false)
}

func (c *CPU) cmp() {
	c.compare(c.a, c.operand())
	c.addPageCrossPenalty()
}

func (c *CPU) cpx() {
	c.compare(c.x, c.operand())
}

func (c *CPU) cpy() {
	c.compare(c.y, c.operand())
}

func (c *CPU) dec() {
	r := c.modify() - 1
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCrossPenalty()
}

func (c *CPU) inc() {
	r := c.modify() + 1
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

// jsr reads the high address byte only after the return address, which
// is the address of that byte, is on the stack.
func (c *CPU) jsr() {
	lo := c.read8(c.pc)
	c.pc++
	c.bus.Idle(1)
	c.stackPush16(c.pc)
	hi := c.read8(c.pc)
	c.pc = uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) lda() {
	c.a = c.operand()
	c.setFlagsZN(c.a)
	c.addPageCrossPenalty()
}

func (c *CPU) ldx() {
	c.x = c.operand()
	c.setFlagsZN(c.x)
	c.addPageCrossPenalty()
}

func (c *CPU) ldy() {
	c.y = c.operand()
	c.setFlagsZN(c.y)
	c.addPageCrossPenalty()
}

func (c *CPU) lsr() {
	v := c.modify()
	c.setFlag(flagC, v&0x1 > 0)
	r := v >> 1
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) nop() {
	// the unofficial forms with an operand still read it
	if c.addrMode != addrModeIMP {
		c.operand()
	}
	c.addPageCrossPenalty()
}

func (c *CPU) ora() {
	c.a |= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCrossPenalty()
}

func (c *CPU) pha() {
	c.bus.Idle(1)
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.bus.Idle(1)
	c.stackPush8(c.p | flagB | flagU)
}

// pullCycles is the dummy read and the stack pointer increment
// before the first pull.
const pullCycles = 2

func (c *CPU) pla() {
	c.bus.Idle(pullCycles)
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.bus.Idle(pullCycles)
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func (c *CPU) rotateLeft(v uint8) uint8 {
	r := v << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, v&0x80 > 0)
	return r
}

func (c *CPU) rotateRight(v uint8) uint8 {
	r := v >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, v&0x1 > 0)
	return r
}

func (c *CPU) rol() {
	r := c.rotateLeft(c.modify())
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) ror() {
	r := c.rotateRight(c.modify())
	c.setFlagsZN(r)
	c.writeBack(r)
}

func (c *CPU) rti() {
	c.bus.Idle(pullCycles)
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func (c *CPU) rts() {
	c.bus.Idle(pullCycles)
	c.pc = c.stackPop16()
	// the increment is the last cycle, charged by finish
	c.pc++
}

func (c *CPU) sbc() {
	c.sbcValue(c.operand())
	c.addPageCrossPenalty()
}

func (c *CPU) sec() {
	c.setFlag(flagC, true)
}

func (c *CPU) sed() {
	c.setFlag(flagD, true)
}

func (c *CPU) sei() {
	c.setFlag(flagI, true)
}

func (c *CPU) sta() {
	c.store(c.a)
}

func (c *CPU) stx() {
	c.store(c.x)
}

func (c *CPU) sty() {
	c.store(c.y)
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// Unofficial opcodes. Only the ones with stable behaviour are here.

func (c *CPU) lax() {
	c.a = c.operand()
	c.x = c.a
	c.setFlagsZN(c.a)
	c.addPageCrossPenalty()
}

func (c *CPU) sax() {
	c.store(c.a & c.x)
}

func (c *CPU) dcp() {
	r := c.modify() - 1
	c.writeBack(r)
	c.compare(c.a, r)
}

func (c *CPU) isc() {
	r := c.modify() + 1
	c.writeBack(r)
	c.sbcValue(r)
}

func (c *CPU) slo() {
	v := c.modify()
	c.setFlag(flagC, v&0x80 > 0)
	r := v << 1
	c.writeBack(r)
	c.a |= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rla() {
	r := c.rotateLeft(c.modify())
	c.writeBack(r)
	c.a &= r
	c.setFlagsZN(c.a)
}

func (c *CPU) sre() {
	v := c.modify()
	c.setFlag(flagC, v&0x1 > 0)
	r := v >> 1
	c.writeBack(r)
	c.a ^= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rra() {
	r := c.rotateRight(c.modify())
	c.writeBack(r)
	c.adcValue(r)
}

func (c *CPU) anc() {
	c.a &= c.operand()
	c.setFlag(flagC, c.a&0x80 > 0)
	c.setFlagsZN(c.a)
}

func (c *CPU) alr() {
	c.a &= c.operand()
	c.setFlag(flagC, c.a&0x1 > 0)
	c.a >>= 1
	c.setFlagsZN(c.a)
}

func (c *CPU) las() {
	r := c.operand() & c.sp
	c.a = r
	c.x = r
	c.sp = r
	c.setFlagsZN(r)
	c.addPageCrossPenalty()
}
