package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// regDevice is a register file that remembers how far its clock had been
// advanced when each access arrived.
type regDevice struct {
	regs    map[uint16]uint8
	cycles  uint64
	seenAt  []uint64
	reads   int
	onRead  func(addr uint16) (uint8, bool)
	onWrite func(addr uint16, data uint8)
}

func newRegDevice() *regDevice {
	return &regDevice{regs: make(map[uint16]uint8)}
}

func (d *regDevice) Step(cycles uint32) {
	d.cycles += uint64(cycles)
}

func (d *regDevice) Read(addr uint16) (uint8, bool) {
	d.reads++
	d.seenAt = append(d.seenAt, d.cycles)
	if d.onRead != nil {
		return d.onRead(addr)
	}
	v, ok := d.regs[addr]
	return v, ok
}

func (d *regDevice) Write(addr uint16, data uint8) {
	d.seenAt = append(d.seenAt, d.cycles)
	if d.onWrite != nil {
		d.onWrite(addr, data)
		return
	}
	d.regs[addr] = data
}

func (d *regDevice) Peek(addr uint16) (uint8, bool) {
	v, ok := d.regs[addr]
	return v, ok
}

type deviceMock struct {
	mock.Mock
}

func (m *deviceMock) Read(addr uint16) (uint8, bool) {
	args := m.Called(addr)
	return args.Get(0).(uint8), args.Bool(1)
}

func (m *deviceMock) Write(addr uint16, data uint8) {
	m.Called(addr, data)
}

func (m *deviceMock) Peek(addr uint16) (uint8, bool) {
	args := m.Called(addr)
	return args.Get(0).(uint8), args.Bool(1)
}

func Test_Decode(t *testing.T) {
	t.Run("total and non-overlapping", func(t *testing.T) {
		counts := map[Region]int{}
		for a := 0; a <= 0xFFFF; a++ {
			region, _ := Decode(uint16(a))
			require.NotEqual(t, "???", region.String(), "address %04X", a)
			counts[region]++
		}
		assert.Equal(t, 0x2000, counts[RegionRAM])
		assert.Equal(t, 0x2000, counts[RegionPPU])
		assert.Equal(t, 0x20, counts[RegionIO])
		assert.Equal(t, 0x10000-0x4020, counts[RegionCart])
	})

	tests := []struct {
		addr   uint16
		region Region
		local  uint16
	}{
		{0x0000, RegionRAM, 0x0000},
		{0x07FF, RegionRAM, 0x07FF},
		{0x0800, RegionRAM, 0x0000},
		{0x1FFF, RegionRAM, 0x07FF},
		{0x2000, RegionPPU, 0x2000},
		{0x2002, RegionPPU, 0x2002},
		{0x200A, RegionPPU, 0x2002},
		{0x3FFF, RegionPPU, 0x2007},
		{0x4000, RegionIO, 0x4000},
		{0x4014, RegionIO, 0x4014},
		{0x401F, RegionIO, 0x401F},
		{0x4020, RegionCart, 0x4020},
		{0xFFFF, RegionCart, 0xFFFF},
	}
	for _, tt := range tests {
		region, local := Decode(tt.addr)
		assert.Equal(t, tt.region, region, "region of %04X", tt.addr)
		assert.Equal(t, tt.local, local, "local address of %04X", tt.addr)
	}
}

func Test_Bus_RAMMirroring(t *testing.T) {
	b := New(nil, nil, nil)

	b.Write8(0x0801, 0x42)
	assert.Equal(t, uint8(0x42), b.Read8(0x0001))
	assert.Equal(t, uint8(0x42), b.Read8(0x1001))
	assert.Equal(t, uint8(0x42), b.Read8(0x1801))
}

func Test_Bus_PPURegisterMirroring(t *testing.T) {
	ppu := new(deviceMock)
	ppu.On("Write", uint16(0x2006), uint8(0x3F)).Return().Once()
	ppu.On("Read", uint16(0x2002)).Return(uint8(0x80), true).Once()

	b := New(ppu, nil, nil)
	b.Write8(0x3FFE, 0x3F)
	assert.Equal(t, uint8(0x80), b.Read8(0x2FFA))
	ppu.AssertExpectations(t)
}

func Test_Bus_StepsBeforeAccess(t *testing.T) {
	ppu := newRegDevice()
	apu := newRegDevice()
	b := New(ppu, apu, nil, WithPPU(ppu, NTSC), WithAPU(apu))

	b.Read8(0x2002) // cycle 0
	b.Idle(3)       // cycles 1..3 without access
	b.Read8(0x2002) // cycle 4
	b.Write8(0x4015, 0)

	assert.Equal(t, []uint64{0, 12}, ppu.seenAt, "PPU dots at each access")
	assert.Equal(t, []uint64{5}, apu.seenAt, "APU cycles at the access")
	assert.Equal(t, uint64(6), b.Clock())

	// the last access is not seen by the devices until something syncs
	assert.Equal(t, uint64(15), ppu.cycles)
	b.Sync()
	assert.Equal(t, uint64(18), ppu.cycles)
	assert.Equal(t, uint64(6), apu.cycles)
}

func Test_Bus_FractionalTiming(t *testing.T) {
	ppu := newRegDevice()
	b := New(ppu, nil, nil, WithPPU(ppu, PAL))

	b.Idle(1)
	b.Sync()
	assert.Equal(t, uint64(3), ppu.cycles, "16/5 truncated")

	b.Idle(4)
	b.Sync()
	assert.Equal(t, uint64(16), ppu.cycles, "remainder carried")
}

func Test_Bus_SideEffectOrdering(t *testing.T) {
	// a status register whose flag is set by time and cleared by reading
	const setAt = 10
	ppu := newRegDevice()
	var flag bool
	var lastSet bool
	ppu.onRead = func(addr uint16) (uint8, bool) {
		if !lastSet && ppu.cycles >= setAt {
			flag = true
			lastSet = true
		}
		v := uint8(0)
		if flag {
			v = 0x80
		}
		flag = false
		return v, true
	}

	b := New(ppu, nil, nil, WithStepper("ppu", ppu, 1, 1))
	b.Idle(setAt)
	assert.Equal(t, uint8(0x80), b.Read8(0x2002))
	assert.Equal(t, uint8(0x00), b.Read8(0x2002))
}

func Test_Bus_OpenBus(t *testing.T) {
	io := new(deviceMock)
	io.On("Read", uint16(0x4018)).Return(uint8(0), false)
	io.On("Peek", uint16(0x4018)).Return(uint8(0), false)

	b := New(nil, io, nil)
	b.Write8(0x0000, 0x5A)
	b.Read8(0x0000)
	assert.Equal(t, uint8(0x5A), b.Read8(0x4018))
	assert.Equal(t, uint8(0x5A), b.Peek(0x4018))
	assert.Equal(t, uint8(0x5A), b.Read8(0x6000), "nil cartridge floats")
}

func Test_Bus_Peek(t *testing.T) {
	ppu := newRegDevice()
	ppu.regs[0x2002] = 0x80
	b := New(ppu, nil, nil, WithPPU(ppu, NTSC))
	b.Idle(10)

	assert.Equal(t, uint8(0x80), b.Peek(0x3FFA))
	assert.Zero(t, ppu.reads, "peek never reaches Read")
	assert.Zero(t, ppu.cycles, "peek never steps devices")
	assert.Equal(t, uint64(10), b.Clock())
}

func Test_Bus_Poke(t *testing.T) {
	b := New(nil, nil, nil)
	b.Poke(0x1234, 0x99)
	assert.Equal(t, uint8(0x99), b.Peek(0x0234))
	assert.Zero(t, b.Clock())
}

func Test_Bus_Reentrancy(t *testing.T) {
	ppu := newRegDevice()
	var b *Bus
	ppu.onRead = func(addr uint16) (uint8, bool) {
		return b.Read8(0x0000), true
	}
	b = New(ppu, nil, nil)

	assert.PanicsWithValue(t, reentrantAccess, func() {
		b.Read8(0x2002)
	})
}

func Test_Bus_Reset(t *testing.T) {
	b := New(nil, nil, nil)
	b.Write8(0x0010, 1)
	b.Idle(100)
	b.Reset()

	assert.Zero(t, b.Clock())
	assert.Equal(t, uint8(1), b.Peek(0x0010))
}
