package nes

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

const (
	inesMagic        = 0x1a53454e // "NES\x1a"
	trainerSizeBytes = 512
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	prgRAMSizeBytes  = 0x2000
)

var (
	// ErrMalformedImage is returned for truncated files and bad headers.
	ErrMalformedImage = errors.New("malformed iNES image")
	// ErrUnsupportedMapper is matched by every *UnsupportedMapperError.
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

type UnsupportedMapperError struct {
	ID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d", e.ID)
}

func (e *UnsupportedMapperError) Is(target error) bool {
	return target == ErrUnsupportedMapper
}

// Mirroring is the nametable layout wired on the cartridge board.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	}
	return "???"
}

// System is the console the image was made for.
type System uint8

const (
	SystemNES System = iota
	SystemVS
	SystemPlayChoice
)

func (s System) String() string {
	switch s {
	case SystemNES:
		return "NES"
	case SystemVS:
		return "VS System"
	case SystemPlayChoice:
		return "PlayChoice-10"
	}
	return "???"
}

// Region is the TV system the image was made for.
type Region uint8

const (
	RegionNTSC Region = iota
	RegionPAL
)

func (r Region) String() string {
	if r == RegionPAL {
		return "PAL"
	}
	return "NTSC"
}

type inesHeader struct {
	Magic      uint32
	PrgRomSize uint8 // in 16KB units
	ChrRomSize uint8 // in 8KB units, 0 means the board has CHR RAM
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	Flags9     uint8
	Flags10    uint8
	Padding    [5]uint8
}

type Cart struct {
	prgMem []uint8
	chrMem []uint8
	prgRAM [prgRAMSizeBytes]uint8

	prgBanks uint8
	chrBanks uint8
	chrRAM   bool

	mapperID  uint8
	mirroring Mirroring
	battery   bool
	system    System
	region    Region

	mapper Mapper
}

// NewCartFromFile reads a .nes file and returns a Cart struct.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	cart, err := NewCart(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cart, nil
}

// NewCart parses an iNES image. Only the iNES 1.0 fields are used,
// NES 2.0 extensions are ignored.
func NewCart(r io.Reader) (*Cart, error) {
	var header inesHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: couldn't read the header: %w", ErrMalformedImage, err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("%w: invalid magic %08X", ErrMalformedImage, header.Magic)
	}
	if header.PrgRomSize == 0 {
		return nil, fmt.Errorf("%w: no PRG ROM", ErrMalformedImage)
	}

	// flag6 and flag7 contain part of the mapper ID in 4 high bits
	// flag6: lower 4 bits of mapper ID
	// flag7: upper 4 bits of mapper ID
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)
	nes2 := header.Flags7&0x0c == 0x08
	if !nes2 && header.Padding != [5]uint8{} {
		// old dumpers wrote their name over bytes 7-15
		glog.Warningf("cart: garbage in header padding, ignoring the upper mapper nibble")
		mapperID &= 0x0f
	}

	cart := &Cart{
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		mapperID: mapperID,
		battery:  header.Flags6&0x2 != 0,
	}

	switch {
	case header.Flags6&0x8 != 0:
		cart.mirroring = MirrorFourScreen
	case header.Flags6&0x1 != 0:
		cart.mirroring = MirrorVertical
	default:
		cart.mirroring = MirrorHorizontal
	}

	switch {
	case header.Flags7&0x1 != 0:
		cart.system = SystemVS
	case header.Flags7&0x2 != 0:
		cart.system = SystemPlayChoice
	}

	if header.Flags9&0x1 != 0 {
		cart.region = RegionPAL
	}

	mapper, err := newMapper(cart)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper

	// the third bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("%w: couldn't skip the trainer: %w", ErrMalformedImage, err)
		}
	}

	cart.prgMem = make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes)
	if _, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, fmt.Errorf("%w: couldn't read PRG ROM: %w", ErrMalformedImage, err)
	}

	if header.ChrRomSize == 0 {
		cart.chrRAM = true
		cart.chrMem = make([]uint8, chrBankSizeBytes)
	} else {
		cart.chrMem = make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes)
		if _, err := io.ReadFull(r, cart.chrMem); err != nil {
			return nil, fmt.Errorf("%w: couldn't read CHR ROM: %w", ErrMalformedImage, err)
		}
	}

	if cart.system != SystemNES {
		glog.Warningf("cart: image made for %s, running it as NES", cart.system)
	}
	if glog.V(1) {
		glog.Infof("cart: %s", cart)
	}
	return cart, nil
}

func (c *Cart) MapperID() uint8 {
	return c.mapperID
}

func (c *Cart) Mirroring() Mirroring {
	return c.mirroring
}

func (c *Cart) Battery() bool {
	return c.battery
}

func (c *Cart) System() System {
	return c.system
}

func (c *Cart) Region() Region {
	return c.region
}

func (c *Cart) String() string {
	chr := fmt.Sprintf("CHR ROM %dx8KB", c.chrBanks)
	if c.chrRAM {
		chr = "CHR RAM 8KB"
	}
	return fmt.Sprintf("mapper %d, PRG ROM %dx16KB, %s, %s mirroring, %s",
		c.mapperID, c.prgBanks, chr, c.mirroring, c.region)
}

// Read, Write and Peek make the cartridge the bus device for $4020-$FFFF.

func (c *Cart) Read(addr uint16) (uint8, bool) {
	return c.mapper.ReadPRG(addr)
}

func (c *Cart) Write(addr uint16, data uint8) {
	c.mapper.WritePRG(addr, data)
}

func (c *Cart) Peek(addr uint16) (uint8, bool) {
	return c.mapper.ReadPRG(addr)
}

// Poke patches PRG ROM or RAM in place, without touching bank registers.
func (c *Cart) Poke(addr uint16, data uint8) {
	c.mapper.PokePRG(addr, data)
}

// ReadCHR and WriteCHR are the PPU side of the cartridge, $0000-$1FFF.

func (c *Cart) ReadCHR(addr uint16) uint8 {
	return c.mapper.ReadCHR(addr & 0x1fff)
}

func (c *Cart) WriteCHR(addr uint16, data uint8) {
	c.mapper.WriteCHR(addr&0x1fff, data)
}
