package nes

// Buttons is the state of a standard controller, one bit per button in
// the order the shift register reports them.
type Buttons uint8

const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// controller is a standard pad: a parallel-in serial-out shift register.
// While strobe is high the register keeps reloading and reads return A.
type controller struct {
	buttons Buttons
	shift   uint8
	strobe  bool
}

func (c *controller) write(data uint8) {
	c.strobe = data&0x1 > 0
	if c.strobe {
		c.shift = uint8(c.buttons)
	}
}

func (c *controller) read() uint8 {
	if c.strobe {
		return uint8(c.buttons & ButtonA)
	}
	bit := c.shift & 0x1
	// official pads report 1 once all eight buttons were shifted out
	c.shift = c.shift>>1 | 0x80
	return bit
}

func (c *controller) peek() uint8 {
	if c.strobe {
		return uint8(c.buttons & ButtonA)
	}
	return c.shift & 0x1
}
