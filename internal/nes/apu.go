package nes

import (
	"github.com/golang/glog"
	"github.com/nevisdale/nescore/internal/interrupt"
)

// Frame sequencer steps in CPU cycles, NTSC.
//
// mode 0:    mode 1:       function
// ---------  -----------  -----------------------------
//  - - - f    - - - - -    IRQ (if bit 6 is clear)
//  - l - l    - l - - l    Length counter and sweep
//  e e e e    e e e - e    Envelope and linear counter
const (
	frameStep2     = 14913
	frameStep4     = 29829
	frameStep5     = 37281
	fourStepPeriod = 29830
	fiveStepPeriod = 37282
)

// $4015 bits: ---D NT21
const (
	chanPulse1 = iota
	chanPulse2
	chanTriangle
	chanNoise
	chanCount

	statusFrameIRQ = uint8(1 << 6)
)

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// irqLine is the shared IRQ input of the CPU.
type irqLine interface {
	SetIRQ(src interrupt.Source, asserted bool)
}

// APU models the frame sequencer and the length counters of the 2A03
// sound unit. No samples are produced.
type APU struct {
	irq irqLine

	cycle      uint32
	fiveStep   bool
	irqInhibit bool
	frameIRQ   bool

	enabled [chanCount]bool
	halt    [chanCount]bool
	length  [chanCount]uint8
}

func NewAPU(irq irqLine) *APU {
	return &APU{irq: irq}
}

// Reset silences every channel and restarts the sequencer in 4-step mode
// with the frame IRQ enabled.
func (a *APU) Reset() {
	a.cycle = 0
	a.fiveStep = false
	a.irqInhibit = false
	a.enabled = [chanCount]bool{}
	a.halt = [chanCount]bool{}
	a.length = [chanCount]uint8{}
	a.setFrameIRQ(false)
}

func (a *APU) setFrameIRQ(v bool) {
	a.frameIRQ = v
	if a.irq != nil {
		a.irq.SetIRQ(interrupt.SourceFrameCounter, v)
	}
}

// Step advances the sequencer by the given number of CPU cycles.
func (a *APU) Step(cycles uint32) {
	for ; cycles > 0; cycles-- {
		a.tic()
	}
}

func (a *APU) tic() {
	a.cycle++

	switch a.cycle {
	case frameStep2:
		a.halfFrame()
	case frameStep4:
		if !a.fiveStep {
			a.halfFrame()
			if !a.irqInhibit {
				if glog.V(3) {
					glog.Infof("apu: frame IRQ")
				}
				a.setFrameIRQ(true)
			}
		}
	case frameStep5:
		a.halfFrame()
	}

	period := uint32(fourStepPeriod)
	if a.fiveStep {
		period = fiveStepPeriod
	}
	if a.cycle >= period {
		a.cycle = 0
	}
}

// halfFrame clocks the length counters. Envelopes, sweeps and the linear
// counter are not modelled.
func (a *APU) halfFrame() {
	for i := range a.length {
		if a.length[i] > 0 && !a.halt[i] {
			a.length[i]--
		}
	}
}

func (a *APU) status() uint8 {
	var data uint8
	for i, l := range a.length {
		if l > 0 {
			data |= 1 << i
		}
	}
	if a.frameIRQ {
		data |= statusFrameIRQ
	}
	return data
}

// Read serves $4015. Reading it acknowledges the frame IRQ.
func (a *APU) Read(addr uint16) (uint8, bool) {
	if addr != 0x4015 {
		return 0, false
	}
	data := a.status()
	if a.frameIRQ {
		a.setFrameIRQ(false)
	}
	return data, true
}

func (a *APU) Peek(addr uint16) (uint8, bool) {
	if addr != 0x4015 {
		return 0, false
	}
	return a.status(), true
}

func (a *APU) Write(addr uint16, data uint8) {
	switch addr {
	case 0x4000:
		a.halt[chanPulse1] = data&0x20 > 0
	case 0x4004:
		a.halt[chanPulse2] = data&0x20 > 0
	case 0x4008:
		a.halt[chanTriangle] = data&0x80 > 0
	case 0x400c:
		a.halt[chanNoise] = data&0x20 > 0
	case 0x4003:
		a.loadLength(chanPulse1, data)
	case 0x4007:
		a.loadLength(chanPulse2, data)
	case 0x400b:
		a.loadLength(chanTriangle, data)
	case 0x400f:
		a.loadLength(chanNoise, data)
	case 0x4015:
		for i := range a.enabled {
			a.enabled[i] = data&(1<<i) > 0
			if !a.enabled[i] {
				a.length[i] = 0
			}
		}
	case 0x4017:
		a.fiveStep = data&0x80 > 0
		a.irqInhibit = data&0x40 > 0
		if a.irqInhibit && a.frameIRQ {
			a.setFrameIRQ(false)
		}
		a.cycle = 0
		if a.fiveStep {
			a.halfFrame()
		}
	}
}

func (a *APU) loadLength(ch int, data uint8) {
	if a.enabled[ch] {
		a.length[ch] = lengthTable[data>>3]
	}
}
