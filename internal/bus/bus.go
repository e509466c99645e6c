// Package bus implements the CPU address space and the clock that keeps
// the PPU and APU in step with the CPU.
//
// Every access the CPU makes goes through Read8 or Write8. Before the access
// reaches the decoded device, all registered steppers are advanced by the
// cycles that elapsed since they were last advanced. A device therefore always
// observes an access at the exact cycle it happens on real hardware, without
// any scheduler or goroutines.
package bus

import (
	"math"

	"github.com/golang/glog"
)

// Device is a memory mapped peripheral.
// Read and Peek return ok=false for addresses the device does not drive,
// the bus then returns the last value seen on the data lines (open bus).
// Peek must not have side effects.
type Device interface {
	Read(addr uint16) (data uint8, ok bool)
	Write(addr uint16, data uint8)
	Peek(addr uint16) (data uint8, ok bool)
}

// Stepper is a device with internal timing.
// Step advances it by the given number of its own cycles. Step may change
// interrupt lines but must never access the bus.
type Stepper interface {
	Step(cycles uint32)
}

// Timing is the ratio of PPU dots to CPU cycles.
type Timing struct {
	Name   string
	PPUNum uint32
	PPUDen uint32
}

var (
	// NTSC RP2C02: master clock / 4 against CPU master clock / 12.
	NTSC = Timing{Name: "NTSC", PPUNum: 3, PPUDen: 1}
	// PAL RP2C07: master clock / 5 against CPU master clock / 16.
	PAL = Timing{Name: "PAL", PPUNum: 16, PPUDen: 5}
)

// reentrantAccess is the panic message for a device calling back into the
// bus while an access is in flight.
const reentrantAccess = "bus: reentrant access"

type scaledStepper struct {
	name string
	dev  Stepper
	num  uint64
	den  uint64
	rem  uint64
}

func (s *scaledStepper) advance(cycles uint64) {
	total := cycles*s.num + s.rem
	n := total / s.den
	s.rem = total % s.den
	for n > 0 {
		chunk := min(n, math.MaxUint32)
		s.dev.Step(uint32(chunk))
		n -= chunk
	}
}

type Bus struct {
	ram  [ramSizeBytes]uint8
	ppu  Device
	io   Device
	cart Device

	steppers []*scaledStepper

	// clock is the number of CPU cycles since reset,
	// synced is the cycle every stepper has been advanced to.
	clock  uint64
	synced uint64

	openBus uint8
	busy    bool
}

type Option func(*Bus)

// WithStepper registers a device advanced num/den times per CPU cycle.
func WithStepper(name string, dev Stepper, num, den uint32) Option {
	return func(b *Bus) {
		if den == 0 {
			den = 1
		}
		b.steppers = append(b.steppers, &scaledStepper{
			name: name,
			dev:  dev,
			num:  uint64(num),
			den:  uint64(den),
		})
	}
}

// WithPPU registers the picture unit with the ratio of t.
func WithPPU(dev Stepper, t Timing) Option {
	return WithStepper("ppu", dev, t.PPUNum, t.PPUDen)
}

// WithAPU registers the audio unit, clocked at the CPU rate.
func WithAPU(dev Stepper) Option {
	return WithStepper("apu", dev, 1, 1)
}

// New builds a bus over the three mapped devices. Any of them may be nil,
// its region then behaves as open bus.
func New(ppu, io, cart Device, opts ...Option) *Bus {
	b := &Bus{
		ppu:  ppu,
		io:   io,
		cart: cart,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reset zeroes the clock. RAM content survives, as on hardware.
func (b *Bus) Reset() {
	b.clock = 0
	b.synced = 0
	b.openBus = 0
	b.busy = false
	for _, s := range b.steppers {
		s.rem = 0
	}
}

// Clock returns CPU cycles elapsed since reset.
func (b *Bus) Clock() uint64 {
	return b.clock
}

// Idle charges cycles in which the CPU does not use the bus.
// Devices catch up with them on the next access.
func (b *Bus) Idle(cycles uint64) {
	b.clock += cycles
}

// Sync advances every device to the current cycle.
func (b *Bus) Sync() {
	if b.busy {
		panic(reentrantAccess)
	}
	b.sync()
}

func (b *Bus) sync() {
	elapsed := b.clock - b.synced
	if elapsed == 0 {
		return
	}
	for _, s := range b.steppers {
		s.advance(elapsed)
	}
	b.synced = b.clock
}

func (b *Bus) enter() {
	if b.busy {
		panic(reentrantAccess)
	}
	b.busy = true
	b.sync()
}

func (b *Bus) leave() {
	b.clock++
	b.busy = false
}

// Read8 performs a CPU read cycle.
func (b *Bus) Read8(addr uint16) uint8 {
	b.enter()
	defer b.leave()

	data, ok := b.read(addr)
	if ok {
		b.openBus = data
	}
	return b.openBus
}

// Write8 performs a CPU write cycle.
func (b *Bus) Write8(addr uint16, data uint8) {
	b.enter()
	defer b.leave()

	b.openBus = data
	b.write(addr, data)
}

func (b *Bus) read(addr uint16) (uint8, bool) {
	region, local := Decode(addr)
	switch region {
	case RegionRAM:
		return b.ram[local], true
	case RegionPPU:
		return deviceRead(b.ppu, local)
	case RegionIO:
		return deviceRead(b.io, local)
	default:
		return deviceRead(b.cart, local)
	}
}

func (b *Bus) write(addr uint16, data uint8) {
	region, local := Decode(addr)
	switch region {
	case RegionRAM:
		b.ram[local] = data
	case RegionPPU:
		deviceWrite(b.ppu, local, data)
	case RegionIO:
		deviceWrite(b.io, local, data)
	default:
		deviceWrite(b.cart, local, data)
	}
}

func deviceRead(d Device, addr uint16) (uint8, bool) {
	if d == nil {
		return 0, false
	}
	return d.Read(addr)
}

func deviceWrite(d Device, addr uint16, data uint8) {
	if d == nil {
		if glog.V(2) {
			glog.Infof("bus: write $%02X to unmapped $%04X", data, addr)
		}
		return
	}
	d.Write(addr, data)
}

// Peek reads addr without stepping devices, advancing the clock or
// triggering read side effects.
func (b *Bus) Peek(addr uint16) uint8 {
	region, local := Decode(addr)
	var (
		data uint8
		ok   bool
	)
	switch region {
	case RegionRAM:
		data, ok = b.ram[local], true
	case RegionPPU:
		data, ok = devicePeek(b.ppu, local)
	case RegionIO:
		data, ok = devicePeek(b.io, local)
	default:
		data, ok = devicePeek(b.cart, local)
	}
	if !ok {
		return b.openBus
	}
	return data
}

func devicePeek(d Device, addr uint16) (uint8, bool) {
	if d == nil {
		return 0, false
	}
	return d.Peek(addr)
}

// Poker is implemented by devices whose storage can be patched directly,
// bypassing ROM write protection and mapper registers.
type Poker interface {
	Poke(addr uint16, data uint8)
}

// Poke stores data into RAM or the cartridge without clocking anything.
// Register regions are left alone, a register write always has effects.
func (b *Bus) Poke(addr uint16, data uint8) {
	region, local := Decode(addr)
	switch region {
	case RegionRAM:
		b.ram[local] = data
	case RegionCart:
		if p, ok := b.cart.(Poker); ok {
			p.Poke(local, data)
			return
		}
		glog.Warningf("bus: poke $%04X ignored, cartridge is not pokeable", addr)
	default:
		glog.Warningf("bus: poke $%04X ignored, %s registers are not pokeable", addr, region)
	}
}
