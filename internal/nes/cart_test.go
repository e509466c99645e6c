package nes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testImage struct {
	header  inesHeader
	trainer []uint8
	prg     []uint8
	chr     []uint8
}

// newTestImage returns an NROM image with the given bank counts.
func newTestImage(prgBanks, chrBanks uint8) *testImage {
	return &testImage{
		header: inesHeader{
			Magic:      inesMagic,
			PrgRomSize: prgBanks,
			ChrRomSize: chrBanks,
		},
		prg: make([]uint8, int(prgBanks)*prgBankSizeBytes),
		chr: make([]uint8, int(chrBanks)*chrBankSizeBytes),
	}
}

func (img *testImage) setMapper(id uint8) *testImage {
	img.header.Flags6 = img.header.Flags6&0x0f | id<<4
	img.header.Flags7 = img.header.Flags7&0x0f | id&0xf0
	return img
}

// setCPU stores data at a CPU address of an NROM-128 image.
func (img *testImage) setCPU(addr uint16, data ...uint8) *testImage {
	for i, b := range data {
		img.prg[int(addr-0x8000+uint16(i))%len(img.prg)] = b
	}
	return img
}

func (img *testImage) setVector(vector, addr uint16) *testImage {
	return img.setCPU(vector, uint8(addr), uint8(addr>>8))
}

func (img *testImage) bytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, img.header))
	buf.Write(img.trainer)
	buf.Write(img.prg)
	buf.Write(img.chr)
	return buf.Bytes()
}

func (img *testImage) cart(t *testing.T) *Cart {
	t.Helper()

	cart, err := NewCart(bytes.NewReader(img.bytes(t)))
	require.NoError(t, err)
	return cart
}

func Test_NewCart_NROM(t *testing.T) {
	img := newTestImage(1, 1)
	img.header.Flags6 = 0x1 // vertical
	img.setCPU(0x8000, 0x11)
	img.setCPU(0xbfff, 0x22)
	img.chr[0x1234] = 0x33

	cart := img.cart(t)

	assert.Equal(t, uint8(0), cart.MapperID())
	assert.Equal(t, MirrorVertical, cart.Mirroring())
	assert.Equal(t, SystemNES, cart.System())
	assert.Equal(t, RegionNTSC, cart.Region())
	assert.False(t, cart.Battery())

	t.Run("PRG ROM is mirrored on NROM-128", func(t *testing.T) {
		for _, addr := range []uint16{0x8000, 0xc000} {
			data, ok := cart.Read(addr)
			assert.True(t, ok)
			assert.Equal(t, uint8(0x11), data)
		}
		data, _ := cart.Read(0xffff)
		assert.Equal(t, uint8(0x22), data)
	})

	t.Run("PRG ROM is read-only", func(t *testing.T) {
		cart.Write(0x8000, 0x99)
		data, _ := cart.Read(0x8000)
		assert.Equal(t, uint8(0x11), data)
	})

	t.Run("PRG RAM", func(t *testing.T) {
		cart.Write(0x6000, 0x42)
		cart.Write(0x7fff, 0x43)
		data, ok := cart.Read(0x6000)
		assert.True(t, ok)
		assert.Equal(t, uint8(0x42), data)
		data, _ = cart.Peek(0x7fff)
		assert.Equal(t, uint8(0x43), data)
	})

	t.Run("expansion area is not driven", func(t *testing.T) {
		_, ok := cart.Read(0x5000)
		assert.False(t, ok)
	})

	t.Run("CHR ROM", func(t *testing.T) {
		assert.Equal(t, uint8(0x33), cart.ReadCHR(0x1234))
		cart.WriteCHR(0x1234, 0x00)
		assert.Equal(t, uint8(0x33), cart.ReadCHR(0x1234), "CHR ROM writes are dropped")
	})

	t.Run("poke patches ROM", func(t *testing.T) {
		cart.Poke(0x8001, 0x77)
		data, _ := cart.Read(0x8001)
		assert.Equal(t, uint8(0x77), data)
	})
}

func Test_NewCart_HeaderFlags(t *testing.T) {
	tests := []struct {
		name      string
		flags6    uint8
		flags7    uint8
		flags9    uint8
		mirroring Mirroring
		system    System
		region    Region
		battery   bool
	}{
		{name: "horizontal", mirroring: MirrorHorizontal, system: SystemNES, region: RegionNTSC},
		{name: "four-screen wins over vertical", flags6: 0x9, mirroring: MirrorFourScreen},
		{name: "battery", flags6: 0x2, battery: true},
		{name: "VS System", flags7: 0x1, system: SystemVS},
		{name: "PlayChoice-10", flags7: 0x2, system: SystemPlayChoice},
		{name: "PAL", flags9: 0x1, region: RegionPAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTestImage(1, 1)
			img.header.Flags6 = tt.flags6
			img.header.Flags7 = tt.flags7
			img.header.Flags9 = tt.flags9

			cart := img.cart(t)
			assert.Equal(t, tt.mirroring, cart.Mirroring())
			assert.Equal(t, tt.system, cart.System())
			assert.Equal(t, tt.region, cart.Region())
			assert.Equal(t, tt.battery, cart.Battery())
		})
	}
}

func Test_NewCart_Trainer(t *testing.T) {
	img := newTestImage(1, 1)
	img.header.Flags6 = 0x4
	img.trainer = bytes.Repeat([]uint8{0xff}, trainerSizeBytes)
	img.setCPU(0x8000, 0x42)

	cart := img.cart(t)
	data, _ := cart.Read(0x8000)
	assert.Equal(t, uint8(0x42), data)
}

func Test_NewCart_CHRRAM(t *testing.T) {
	cart := newTestImage(1, 0).cart(t)

	cart.WriteCHR(0x0010, 0x5a)
	assert.Equal(t, uint8(0x5a), cart.ReadCHR(0x0010))
	assert.Equal(t, uint8(0x5a), cart.ReadCHR(0x2010), "PPU address wraps into pattern tables")
}

func Test_NewCart_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewCart(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("bad magic", func(t *testing.T) {
		img := newTestImage(1, 1)
		img.header.Magic = 0x12345678
		_, err := NewCart(bytes.NewReader(img.bytes(t)))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("no PRG ROM", func(t *testing.T) {
		_, err := NewCart(bytes.NewReader(newTestImage(0, 1).bytes(t)))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("truncated PRG ROM", func(t *testing.T) {
		data := newTestImage(2, 1).bytes(t)
		_, err := NewCart(bytes.NewReader(data[:16+prgBankSizeBytes]))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("truncated CHR ROM", func(t *testing.T) {
		data := newTestImage(1, 1).bytes(t)
		_, err := NewCart(bytes.NewReader(data[:len(data)-1]))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("truncated trainer", func(t *testing.T) {
		img := newTestImage(1, 1)
		img.header.Flags6 = 0x4
		data := img.bytes(t)
		_, err := NewCart(bytes.NewReader(data[:16+100]))
		assert.ErrorIs(t, err, ErrMalformedImage)
	})

	t.Run("unsupported mapper", func(t *testing.T) {
		img := newTestImage(1, 1).setMapper(4)
		_, err := NewCart(bytes.NewReader(img.bytes(t)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedMapper)
		assert.False(t, errors.Is(err, ErrMalformedImage))

		var mapperErr *UnsupportedMapperError
		require.ErrorAs(t, err, &mapperErr)
		assert.Equal(t, uint8(4), mapperErr.ID)
	})

	t.Run("NROM size does not fit the board", func(t *testing.T) {
		for _, banks := range [][2]uint8{{3, 1}, {2, 2}} {
			_, err := NewCart(bytes.NewReader(newTestImage(banks[0], banks[1]).bytes(t)))
			assert.ErrorIs(t, err, ErrMalformedImage, "%d PRG, %d CHR", banks[0], banks[1])
			assert.False(t, errors.Is(err, ErrUnsupportedMapper))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCartFromFile(t.TempDir() + "/missing.nes")
		assert.Error(t, err)
	})
}

func Test_NewCart_HeaderGarbage(t *testing.T) {
	img := newTestImage(1, 1).setMapper(0x22)
	copy(img.header.Padding[:], "Dude!")

	cart := img.cart(t)
	assert.Equal(t, uint8(2), cart.MapperID(), "upper nibble from a dirty header is dropped")
}

func Test_UxROM(t *testing.T) {
	img := newTestImage(4, 0).setMapper(2)
	for bank := 0; bank < 4; bank++ {
		img.prg[bank*prgBankSizeBytes] = uint8(bank)
	}

	cart := img.cart(t)

	read := func(addr uint16) uint8 {
		data, ok := cart.Read(addr)
		require.True(t, ok)
		return data
	}

	assert.Equal(t, uint8(0), read(0x8000), "bank 0 after power on")
	assert.Equal(t, uint8(3), read(0xc000), "last bank is fixed")

	cart.Write(0x8000, 2)
	assert.Equal(t, uint8(2), read(0x8000))
	assert.Equal(t, uint8(3), read(0xc000))

	cart.Write(0xffff, 5)
	assert.Equal(t, uint8(1), read(0x8000), "bank number wraps")

	cart.Poke(0x8000, 0x99)
	assert.Equal(t, uint8(0x99), read(0x8000), "poke writes the selected bank")
	cart.Write(0x8000, 1)
	assert.Equal(t, uint8(0x99), read(0x8000))
	cart.Write(0x8000, 0)
	assert.Equal(t, uint8(0), read(0x8000))

	cart.WriteCHR(0x0100, 0xab)
	assert.Equal(t, uint8(0xab), cart.ReadCHR(0x0100))
}
