// Package interrupt tracks the RESET, NMI and IRQ lines of the CPU.
//
// Devices change line levels as a side effect of being stepped or accessed,
// the CPU polls the controller at every instruction boundary.
package interrupt

import (
	"fmt"

	"github.com/golang/glog"
)

// Line identifies one of the CPU interrupt inputs.
type Line uint8

const (
	LineReset Line = iota + 1
	LineNMI
	LineIRQ
)

func (l Line) String() string {
	switch l {
	case LineReset:
		return "RESET"
	case LineNMI:
		return "NMI"
	case LineIRQ:
		return "IRQ"
	}
	return "???"
}

// State of a single line as seen by the CPU.
type State uint8

const (
	Idle State = iota
	Pending
	Servicing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Servicing:
		return "servicing"
	}
	return "???"
}

// Source is a bitmask of devices able to hold the IRQ line asserted.
type Source uint8

const (
	SourceFrameCounter Source = 1 << iota // APU frame sequencer
	SourceDMC                             // APU delta modulation channel
	SourceMapper                          // cartridge hardware
	SourceExternal                        // anything else (tests, expansion port)
)

// Controller arbitrates the three interrupt lines.
// The zero value has all lines idle.
type Controller struct {
	resetPending bool

	// nmiLine is the current level driven by the PPU,
	// nmiLatched is the edge detector output.
	nmiLine    bool
	nmiLatched bool

	irqSources Source

	servicing Line
}

// New returns a controller in power-on state: RESET pending.
func New() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// Reset drops every request and raises RESET.
func (c *Controller) Reset() {
	*c = Controller{resetPending: true}
}

// RaiseReset requests a RESET at the next instruction boundary.
func (c *Controller) RaiseReset() {
	c.resetPending = true
}

// SetNMI drives the NMI line. The request is latched on the transition
// from released to asserted and stays latched until the CPU takes it,
// no matter what the line does afterwards.
func (c *Controller) SetNMI(asserted bool) {
	if asserted && !c.nmiLine {
		c.nmiLatched = true
		if glog.V(3) {
			glog.Infof("interrupt: NMI edge latched")
		}
	}
	c.nmiLine = asserted
}

// RaiseNMI produces a single NMI edge.
func (c *Controller) RaiseNMI() {
	c.SetNMI(true)
	c.SetNMI(false)
}

// SetIRQ asserts or releases the IRQ line on behalf of src.
func (c *Controller) SetIRQ(src Source, asserted bool) {
	prev := c.irqSources
	if asserted {
		c.irqSources |= src
	} else {
		c.irqSources &^= src
	}
	if glog.V(3) && prev != c.irqSources {
		glog.Infof("interrupt: IRQ sources %04b -> %04b", prev, c.irqSources)
	}
}

func (c *Controller) AssertIRQ(src Source) {
	c.SetIRQ(src, true)
}

func (c *Controller) ReleaseIRQ(src Source) {
	c.SetIRQ(src, false)
}

// IRQSources reports the devices currently asserting IRQ.
func (c *Controller) IRQSources() Source {
	return c.irqSources
}

// State reports the state of one line.
func (c *Controller) State(l Line) State {
	if c.servicing == l {
		return Servicing
	}
	switch l {
	case LineReset:
		if c.resetPending {
			return Pending
		}
	case LineNMI:
		if c.nmiLatched {
			return Pending
		}
	case LineIRQ:
		if c.irqSources != 0 {
			return Pending
		}
	}
	return Idle
}

// Poll picks the highest priority pending line and moves it to servicing.
// IRQ is skipped while irqMasked (the CPU I flag) is set.
// RESET and the NMI latch are consumed here, IRQ is re-evaluated on every
// poll because it is level triggered.
func (c *Controller) Poll(irqMasked bool) (Line, bool) {
	switch {
	case c.resetPending:
		c.resetPending = false
		c.servicing = LineReset
	case c.nmiLatched:
		c.nmiLatched = false
		c.servicing = LineNMI
	case c.irqSources != 0 && !irqMasked:
		c.servicing = LineIRQ
	default:
		return 0, false
	}
	return c.servicing, true
}

// Complete finishes the service sequence of l.
// Completing RESET also drops a RESET request raised before the sequence ran.
func (c *Controller) Complete(l Line) {
	if l == LineReset {
		c.resetPending = false
	}
	if c.servicing == l {
		c.servicing = 0
	}
}

func (c *Controller) String() string {
	return fmt.Sprintf("RESET:%s NMI:%s IRQ:%s",
		c.State(LineReset), c.State(LineNMI), c.State(LineIRQ))
}
