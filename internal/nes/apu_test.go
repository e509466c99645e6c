package nes

import (
	"testing"

	"github.com/nevisdale/nescore/internal/interrupt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPU() (*APU, *interrupt.Controller) {
	irq := &interrupt.Controller{}
	a := NewAPU(irq)
	a.Reset()
	return a, irq
}

func Test_APU_FrameIRQ(t *testing.T) {
	a, irq := newTestAPU()

	a.Step(frameStep4 - 1)
	assert.Equal(t, interrupt.Source(0), irq.IRQSources())

	a.Step(1)
	assert.Equal(t, interrupt.SourceFrameCounter, irq.IRQSources(), "raised at the end of the 4-step sequence")

	data, _ := a.Peek(0x4015)
	assert.Equal(t, statusFrameIRQ, data&statusFrameIRQ)
	assert.Equal(t, interrupt.SourceFrameCounter, irq.IRQSources(), "peek does not acknowledge")

	data, ok := a.Read(0x4015)
	require.True(t, ok)
	assert.Equal(t, statusFrameIRQ, data&statusFrameIRQ)
	assert.Equal(t, interrupt.Source(0), irq.IRQSources(), "reading $4015 acknowledges")

	data, _ = a.Read(0x4015)
	assert.Equal(t, uint8(0), data&statusFrameIRQ)
}

func Test_APU_FrameIRQRepeats(t *testing.T) {
	a, irq := newTestAPU()

	a.Step(frameStep4)
	a.Read(0x4015)
	a.Step(fourStepPeriod - 1)
	assert.Equal(t, interrupt.Source(0), irq.IRQSources())
	a.Step(1)
	assert.Equal(t, interrupt.SourceFrameCounter, irq.IRQSources())
}

func Test_APU_FrameIRQInhibit(t *testing.T) {
	t.Run("inhibit flag", func(t *testing.T) {
		a, irq := newTestAPU()
		a.Write(0x4017, 0x40)
		a.Step(2 * fourStepPeriod)
		assert.Equal(t, interrupt.Source(0), irq.IRQSources())
	})

	t.Run("setting inhibit acknowledges", func(t *testing.T) {
		a, irq := newTestAPU()
		a.Step(frameStep4)
		require.Equal(t, interrupt.SourceFrameCounter, irq.IRQSources())
		a.Write(0x4017, 0x40)
		assert.Equal(t, interrupt.Source(0), irq.IRQSources())
	})

	t.Run("5-step mode has no IRQ", func(t *testing.T) {
		a, irq := newTestAPU()
		a.Write(0x4017, 0x80)
		a.Step(2 * fiveStepPeriod)
		assert.Equal(t, interrupt.Source(0), irq.IRQSources())
	})
}

func Test_APU_LengthCounters(t *testing.T) {
	t.Run("load needs the channel enabled", func(t *testing.T) {
		a, _ := newTestAPU()
		a.Write(0x4003, 0x08) // index 1: 254
		data, _ := a.Peek(0x4015)
		assert.Equal(t, uint8(0), data&0x0f)

		a.Write(0x4015, 0x0f)
		a.Write(0x4003, 0x08)
		a.Write(0x400f, 0x18) // index 3: 2
		data, _ = a.Peek(0x4015)
		assert.Equal(t, uint8(0x09), data&0x0f)
		assert.Equal(t, uint8(254), a.length[chanPulse1])
	})

	t.Run("clocked on half frames", func(t *testing.T) {
		a, _ := newTestAPU()
		a.Write(0x4015, 0x0f)
		a.Write(0x400f, 0x18) // 2
		a.Step(frameStep2)
		assert.Equal(t, uint8(1), a.length[chanNoise])
		a.Step(frameStep4 - frameStep2)
		assert.Equal(t, uint8(0), a.length[chanNoise])
		data, _ := a.Peek(0x4015)
		assert.Equal(t, uint8(0), data&0x0f)
	})

	t.Run("halt freezes the counter", func(t *testing.T) {
		a, _ := newTestAPU()
		a.Write(0x4015, 0x04)
		a.Write(0x4008, 0x80)
		a.Write(0x400b, 0x18)
		a.Step(fourStepPeriod)
		assert.Equal(t, uint8(2), a.length[chanTriangle])
	})

	t.Run("disabling clears the counter", func(t *testing.T) {
		a, _ := newTestAPU()
		a.Write(0x4015, 0x01)
		a.Write(0x4003, 0x08)
		a.Write(0x4015, 0x00)
		assert.Equal(t, uint8(0), a.length[chanPulse1])
	})

	t.Run("5-step write clocks immediately", func(t *testing.T) {
		a, _ := newTestAPU()
		a.Write(0x4015, 0x01)
		a.Write(0x4003, 0x08)
		a.Write(0x4017, 0x80)
		assert.Equal(t, uint8(253), a.length[chanPulse1])
	})
}

func Test_APU_WriteOnlyRegisters(t *testing.T) {
	a, _ := newTestAPU()
	for addr := uint16(0x4000); addr < 0x4014; addr++ {
		_, ok := a.Read(addr)
		assert.False(t, ok, "$%04X", addr)
	}
}
