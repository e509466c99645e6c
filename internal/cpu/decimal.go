package cpu

// BCD arithmetic of the NMOS 6502, see http://6502.org/tutorials/decimal_mode.html.
// N, V and Z follow the NMOS quirks: Z comes from the binary sum,
// N and V from the sum after the low nibble fixup.

func (c *CPU) adcDecimal(value uint8) {
	carry := c.p & flagC

	lo := (c.a & 0x0f) + (value & 0x0f) + carry
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}
	sum := uint16(c.a&0xf0) + uint16(value&0xf0) + uint16(lo)
	seq := (c.a & 0xf0) + (value & 0xf0) + lo
	bin := c.a + value + carry
	if sum >= 0xa0 {
		sum += 0x60
	}

	c.setFlag(flagV, isSameSign(c.a, value) && !isSameSign(c.a, seq))
	c.setFlag(flagN, seq&0x80 > 0)
	c.setFlag(flagZ, bin == 0)
	c.setFlag(flagC, sum > 0xff)
	c.a = uint8(sum)
}

func (c *CPU) sbcDecimal(value uint8) {
	carry := c.p & flagC

	lo := int16(c.a&0x0f) - int16(value&0x0f) + int16(carry) - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}
	sum := int16(c.a&0xf0) - int16(value&0xf0) + lo
	if sum < 0 {
		sum -= 0x60
	}

	// flags come from the binary subtraction
	r16 := uint16(c.a) + uint16(^value) + uint16(carry)
	bin := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(bin)
	c.setFlag(flagV, isSameSign(c.a, ^value) && !isSameSign(c.a, bin))
	c.a = uint8(sum)
}
