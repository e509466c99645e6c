package nes

const (
	oamDMAAddr   = 0x4014
	joypad1Addr  = 0x4016
	joypad2Addr  = 0x4017
	ioTestRegion = 0x4018

	// the joypad ports drive only the low bits, the rest is the high
	// byte of the address left on the bus
	joypadOpenBus = 0x40
)

// ioPort is the bus device for $4000-$401F: APU registers, joypads and
// the OAM DMA register.
type ioPort struct {
	apu         *APU
	controllers [2]controller

	dmaPending bool
	dmaPage    uint8
}

func newIOPort(apu *APU) *ioPort {
	return &ioPort{apu: apu}
}

func (p *ioPort) reset() {
	p.dmaPending = false
	p.dmaPage = 0
	for i := range p.controllers {
		p.controllers[i].shift = 0
		p.controllers[i].strobe = false
	}
}

func (p *ioPort) Read(addr uint16) (uint8, bool) {
	switch {
	case addr == joypad1Addr:
		return joypadOpenBus | p.controllers[0].read(), true
	case addr == joypad2Addr:
		return joypadOpenBus | p.controllers[1].read(), true
	case addr >= ioTestRegion:
		return 0, false
	}
	return p.apu.Read(addr)
}

func (p *ioPort) Peek(addr uint16) (uint8, bool) {
	switch {
	case addr == joypad1Addr:
		return joypadOpenBus | p.controllers[0].peek(), true
	case addr == joypad2Addr:
		return joypadOpenBus | p.controllers[1].peek(), true
	case addr >= ioTestRegion:
		return 0, false
	}
	return p.apu.Peek(addr)
}

func (p *ioPort) Write(addr uint16, data uint8) {
	switch {
	case addr == oamDMAAddr:
		// the transfer itself is run by the console once the
		// writing instruction is over
		p.dmaPending = true
		p.dmaPage = data
	case addr == joypad1Addr:
		// one strobe line goes to both ports
		p.controllers[0].write(data)
		p.controllers[1].write(data)
	case addr >= ioTestRegion:
	default:
		// $4017 writes are the APU frame counter
		p.apu.Write(addr, data)
	}
}

// takeDMA returns the pending OAM DMA source page, if any.
func (p *ioPort) takeDMA() (uint8, bool) {
	if !p.dmaPending {
		return 0, false
	}
	p.dmaPending = false
	return p.dmaPage, true
}
