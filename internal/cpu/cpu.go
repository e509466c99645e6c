// Package cpu emulates the Ricoh 2A03 processor core, a MOS 6502 without
// decimal mode.
//
// The CPU does not own time. Every memory access goes through the Bus,
// which advances the other devices before performing it. The internal
// cycles of an instruction are charged to the Bus where the hardware spends
// them, so every access lands on its real cycle. Interrupts are taken from
// an Interrupts controller at instruction boundaries.
package cpu

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/nevisdale/nescore/internal/interrupt"
)

const (
	stackStartAddr = uint16(0x100)

	nmiVector   = uint16(0xfffa)
	resetVector = uint16(0xfffc)
	irqVector   = uint16(0xfffe)

	// interruptCycles is the cost of RESET, NMI, IRQ and BRK.
	interruptCycles = 7

	opcodeJSR = 0x20
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

// Bus is the memory seen by the CPU. Read8 and Write8 take one cycle each,
// Idle charges cycles without an access.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
	Clock() uint64
	Idle(cycles uint64)
}

// Interrupts is polled at every instruction boundary.
type Interrupts interface {
	Poll(irqMasked bool) (interrupt.Line, bool)
	Complete(line interrupt.Line)
}

// Revision selects the arithmetic of the core.
type Revision uint8

const (
	// Ricoh2A03 tracks the D flag but always adds in binary.
	Ricoh2A03 Revision = iota
	// NMOS6502 applies BCD correction to ADC and SBC when D is set.
	NMOS6502
)

func (r Revision) String() string {
	switch r {
	case Ricoh2A03:
		return "2A03"
	case NMOS6502:
		return "6502"
	}
	return "???"
}

var (
	// ErrUnimplementedOpcode is matched by every *UnimplementedOpcodeError.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	// ErrHalted is returned by Step once the CPU stopped on an error.
	ErrHalted = errors.New("cpu halted")
)

// UnimplementedOpcodeError reports an opcode with no table entry, or an
// unofficial one while those are disabled.
type UnimplementedOpcodeError struct {
	Addr   uint16
	Opcode uint8
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.Addr)
}

func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	bus Bus
	irq Interrupts

	revision   Revision
	unofficial bool

	// state of the instruction being executed
	cycles      uint8
	addrMode    addrMode
	operandAddr uint16
	pageCrossed bool

	halted error
}

type Option func(*CPU)

func WithRevision(r Revision) Option {
	return func(c *CPU) {
		c.revision = r
	}
}

// WithUnofficialOpcodes enables the stable undocumented opcodes.
func WithUnofficialOpcodes(enabled bool) Option {
	return func(c *CPU) {
		c.unofficial = enabled
	}
}

// New returns a CPU in power-on state. Reset must be called before Step.
func New(bus Bus, irq Interrupts, opts ...Option) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		p:   flagU | flagI,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.bus.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

// read16Wrapped reads a pointer whose high byte never carries into the
// next page.
func (c *CPU) read16Wrapped(addr uint16) uint16 {
	lo := uint16(c.read8(addr))
	hi := uint16(c.read8(addr&0xff00 | uint16(uint8(addr)+1)))
	return lo | hi<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.bus.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset puts the registers in power-up state and runs the RESET sequence:
// PC is loaded from $FFFC/$FFFD, SP ends at $FD, P at $24, 7 cycles.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0
	c.p = flagU | flagI
	c.halted = nil

	start := c.bus.Clock()
	c.interrupt(interrupt.LineReset)
	c.irq.Complete(interrupt.LineReset)
	c.finish(start, interruptCycles)

	if glog.V(1) {
		glog.Infof("cpu: reset, PC=$%04X", c.pc)
	}
}

// interrupt runs the service sequence of line: two internal cycles, three
// pushes, two vector reads.
// RESET goes through the same three stack cycles with writes suppressed.
func (c *CPU) interrupt(line interrupt.Line) {
	c.bus.Idle(2)

	var vector uint16
	switch line {
	case interrupt.LineReset:
		c.sp -= 3
		c.bus.Idle(3)
		vector = resetVector
	case interrupt.LineNMI:
		c.stackPush16(c.pc)
		c.stackPush8((c.p | flagU) & ^flagB)
		vector = nmiVector
	default:
		c.stackPush16(c.pc)
		c.stackPush8((c.p | flagU) & ^flagB)
		vector = irqVector
	}
	c.setFlag(flagI, true)
	c.pc = c.read16(vector)
}

// finish charges the cycles of the instruction that were not spent on
// bus accesses and returns the instruction total. Only cycles after the
// last access are left for it.
func (c *CPU) finish(start uint64, total uint8) int {
	used := c.bus.Clock() - start
	if uint64(total) > used {
		c.bus.Idle(uint64(total) - used)
	}
	return int(total)
}

// Step runs one instruction boundary: either an interrupt sequence or one
// instruction. It returns the number of CPU cycles consumed.
func (c *CPU) Step() (int, error) {
	if c.halted != nil {
		return 0, fmt.Errorf("%w: %w", ErrHalted, c.halted)
	}

	start := c.bus.Clock()
	if line, ok := c.irq.Poll(c.getFlag(flagI)); ok {
		if glog.V(3) {
			glog.Infof("cpu: servicing %s at $%04X", line, c.pc)
		}
		c.interrupt(line)
		c.irq.Complete(line)
		return c.finish(start, interruptCycles), nil
	}

	if glog.V(2) {
		glog.Info(c.trace())
	}

	opcodeAddr := c.pc
	opcode := c.read8(c.pc)
	c.pc++
	instr := &instructions[opcode]
	if instr.fn == nil || (instr.unofficial && !c.unofficial) {
		err := &UnimplementedOpcodeError{Addr: opcodeAddr, Opcode: opcode}
		c.halted = err
		glog.Errorf("cpu: %s, halting", err)
		return int(c.bus.Clock() - start), err
	}

	c.cycles = instr.cycles
	if opcode == opcodeJSR {
		// jsr reads its own operand around the pushes
		c.addrMode = instr.mode
	} else {
		c.fetch(instr.mode)
	}
	instr.fn(c)
	total := c.finish(start, c.cycles)

	c.addrMode = 0
	c.operandAddr = 0
	c.pageCrossed = false
	return total, nil
}

// Halted returns the error that stopped the CPU, nil while running.
func (c *CPU) Halted() error {
	return c.halted
}

// SetPC moves execution, for debuggers and test ROMs with a fixed entry.
func (c *CPU) SetPC(pc uint16) {
	c.pc = pc
}

// Snapshot is a copy of the register file.
type Snapshot struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Halted bool
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		PC:     c.pc,
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		SP:     c.sp,
		P:      c.p,
		Halted: c.halted != nil,
	}
}

// StatusString renders P as "NV-BDIZC" with clear flags in lower case.
func (s Snapshot) StatusString() string {
	const names = "NVUBDIZC"
	out := []byte(names)
	for i := range out {
		if s.P&(0x80>>i) == 0 {
			out[i] += 'a' - 'A'
		}
	}
	out[2] = '-'
	return string(out)
}

func (c *CPU) trace() string {
	return fmt.Sprintf("%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.pc, c.a, c.x, c.y, c.p, c.sp, c.bus.Clock())
}
