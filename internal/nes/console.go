// Package nes wires the CPU, PPU, APU and cartridge of the console onto
// one clock-synchronised bus.
package nes

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/nevisdale/nescore/internal/bus"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/nevisdale/nescore/internal/interrupt"
)

const oamDataAddr = 0x2004

var errNoCart = errors.New("no cartridge")

type Console struct {
	cart *Cart
	bus  *bus.Bus
	cpu  *cpu.CPU
	ppu  *PPU
	apu  *APU
	io   *ioPort
	irq  *interrupt.Controller

	timing    *bus.Timing
	cpuOpts   []cpu.Option
	dmaCycles uint64
}

// Option configures a Console in New.
type Option func(*Console) error

// WithRevision selects the CPU core, the 2A03 by default.
func WithRevision(r cpu.Revision) Option {
	return func(c *Console) error {
		c.cpuOpts = append(c.cpuOpts, cpu.WithRevision(r))
		return nil
	}
}

// WithUnofficialOpcodes enables the stable undocumented opcodes.
func WithUnofficialOpcodes(enabled bool) Option {
	return func(c *Console) error {
		c.cpuOpts = append(c.cpuOpts, cpu.WithUnofficialOpcodes(enabled))
		return nil
	}
}

// WithTiming overrides the PPU/CPU clock ratio taken from the cartridge region.
func WithTiming(t bus.Timing) Option {
	return func(c *Console) error {
		if t.PPUNum == 0 || t.PPUDen == 0 {
			return fmt.Errorf("invalid timing %d/%d", t.PPUNum, t.PPUDen)
		}
		c.timing = &t
		return nil
	}
}

// New builds a console around cart and powers it on.
func New(cart *Cart, opts ...Option) (*Console, error) {
	if cart == nil {
		return nil, errNoCart
	}

	c := &Console{cart: cart}
	for i, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to set option index %d: %w", i, err)
		}
	}

	timing := bus.NTSC
	if cart.Region() == RegionPAL {
		timing = bus.PAL
	}
	if c.timing != nil {
		timing = *c.timing
	}

	c.irq = interrupt.New()
	c.ppu = NewPPU(cart, cart.Mirroring(), c.irq)
	c.apu = NewAPU(c.irq)
	c.io = newIOPort(c.apu)
	c.bus = bus.New(c.ppu, c.io, cart,
		bus.WithPPU(c.ppu, timing),
		bus.WithAPU(c.apu),
	)
	c.cpu = cpu.New(c.bus, c.irq, c.cpuOpts...)

	if glog.V(1) {
		glog.Infof("nes: %s timing, %s", timing.Name, cart)
	}
	c.Reset()
	return c, nil
}

// Reset is the console reset button: every unit goes back to its power-up
// state and the CPU runs its RESET sequence. RAM keeps its content.
func (c *Console) Reset() {
	c.irq.Reset()
	c.bus.Reset()
	c.ppu.Reset()
	c.apu.Reset()
	c.io.reset()
	c.dmaCycles = 0
	c.cpu.Reset()
	c.bus.Sync()
}

// Step runs one instruction, or one interrupt sequence, and an OAM DMA
// transfer the instruction started. It returns the CPU cycles spent.
func (c *Console) Step() (int, error) {
	cycles, err := c.cpu.Step()
	if err == nil {
		if page, ok := c.io.takeDMA(); ok {
			cycles += c.oamDMA(page)
		}
	}
	// devices catch up before the next interrupt poll, and before a
	// snapshot of a halted console
	c.bus.Sync()
	return cycles, err
}

// oamDMA copies page $XX00-$XXFF to OAMDATA. The CPU is stalled for one
// cycle, one more when the transfer starts on an odd cycle, then for 256
// read/write pairs.
func (c *Console) oamDMA(page uint8) int {
	start := c.bus.Clock()
	if start%2 == 1 {
		c.bus.Idle(2)
	} else {
		c.bus.Idle(1)
	}

	base := uint16(page) << 8
	for i := uint16(0); i < 0x100; i++ {
		data := c.bus.Read8(base | i)
		c.bus.Write8(oamDataAddr, data)
	}

	cycles := c.bus.Clock() - start
	c.dmaCycles += cycles
	if glog.V(2) {
		glog.Infof("nes: OAM DMA from $%02X00, %d cycles", page, cycles)
	}
	return int(cycles)
}

// StepFrame runs until the PPU starts a new frame.
func (c *Console) StepFrame() error {
	frame := c.ppu.Frame()
	for c.ppu.Frame() == frame {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil steps the console until done returns true or the CPU halts.
func (c *Console) RunUntil(done func(*Console) bool) error {
	for !done(c) {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Halted returns the error that stopped the CPU, nil while running.
func (c *Console) Halted() error {
	return c.cpu.Halted()
}

func (c *Console) Clock() uint64 {
	return c.bus.Clock()
}

func (c *Console) Frame() uint64 {
	return c.ppu.Frame()
}

func (c *Console) Cart() *Cart {
	return c.cart
}

// SetButtons sets the pressed buttons of the pad in port 0 or 1.
func (c *Console) SetButtons(port int, b Buttons) {
	if port < 0 || port >= len(c.io.controllers) {
		glog.Warningf("nes: no controller port %d", port)
		return
	}
	c.io.controllers[port].buttons = b
}

// SetPC moves execution, for test ROMs with a fixed entry point.
func (c *Console) SetPC(pc uint16) {
	c.cpu.SetPC(pc)
}

// Peek reads the CPU address space without side effects.
func (c *Console) Peek(addr uint16) uint8 {
	return c.bus.Peek(addr)
}

// Poke patches RAM or cartridge memory.
func (c *Console) Poke(addr uint16, data uint8) {
	c.bus.Poke(addr, data)
}

// Disassemble decodes [from, to] with side-effect free reads.
func (c *Console) Disassemble(from, to uint16) map[uint16]string {
	return cpu.Disassemble(c.bus, from, to)
}

// Snapshot is a read-only view of the console for debuggers.
type Snapshot struct {
	CPU       cpu.Snapshot
	Clock     uint64
	DMACycles uint64

	Dot      uint16
	ScanLine uint16
	Frame    uint64
	VBlank   bool

	Reset      interrupt.State
	NMI        interrupt.State
	IRQ        interrupt.State
	IRQSources interrupt.Source
}

func (c *Console) Snapshot() Snapshot {
	return Snapshot{
		CPU:        c.cpu.Snapshot(),
		Clock:      c.bus.Clock(),
		DMACycles:  c.dmaCycles,
		Dot:        c.ppu.Dot(),
		ScanLine:   c.ppu.ScanLine(),
		Frame:      c.ppu.Frame(),
		VBlank:     c.ppu.VBlank(),
		Reset:      c.irq.State(interrupt.LineReset),
		NMI:        c.irq.State(interrupt.LineNMI),
		IRQ:        c.irq.State(interrupt.LineIRQ),
		IRQSources: c.irq.IRQSources(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X P:%02X(%s) SP:%02X CYC:%d PPU:%3d,%3d FRAME:%d",
		s.CPU.PC, s.CPU.A, s.CPU.X, s.CPU.Y, s.CPU.P, s.CPU.StatusString(), s.CPU.SP,
		s.Clock, s.ScanLine, s.Dot, s.Frame)
}
