package bus

// Region is the device owning an address on the CPU bus.
type Region uint8

const (
	// $0000-$07FF: Internal RAM
	//   2KB of working RAM, holds zero page and the stack.
	//
	// $0800-$1FFF: Mirrors of $0000-$07FF
	//   Only 11 address lines reach the RAM chip,
	//   so the same 2KB repeat four times.
	RegionRAM Region = iota + 1

	// $2000-$2007: PPU Registers
	//   $2000: PPUCTRL
	//   $2001: PPUMASK
	//   $2002: PPUSTATUS
	//   $2003: OAMADDR
	//   $2004: OAMDATA
	//   $2005: PPUSCROLL
	//   $2006: PPUADDR
	//   $2007: PPUDATA
	//
	// $2008-$3FFF: Mirrors of $2000-$2007
	//   The PPU decodes only the 3 low address lines.
	RegionPPU

	// $4000-$4017: APU and I/O Registers
	//   Sound channels, OAM DMA, frame counter and joystick ports.
	//
	// $4018-$401F: APU and I/O Functionality
	//   Normally disabled test registers. Not mirrored.
	RegionIO

	// $4020-$FFFF: Cartridge Space
	//   Delegated to the mapper: expansion area, PRG-RAM at $6000-$7FFF
	//   and PRG-ROM at $8000-$FFFF.
	RegionCart
)

func (r Region) String() string {
	switch r {
	case RegionRAM:
		return "RAM"
	case RegionPPU:
		return "PPU"
	case RegionIO:
		return "IO"
	case RegionCart:
		return "CART"
	}
	return "???"
}

const (
	ramSizeBytes = 0x800
	ramMask      = ramSizeBytes - 1
	ppuRegMask   = 0x7
)

// Decode maps a CPU address to its owning region and the address the
// device sees after mirroring. It is a pure function and every one of the
// 65536 addresses resolves to exactly one region.
func Decode(addr uint16) (Region, uint16) {
	switch {
	case addr < 0x2000:
		return RegionRAM, addr & ramMask
	case addr < 0x4000:
		return RegionPPU, 0x2000 | addr&ppuRegMask
	case addr < 0x4020:
		return RegionIO, addr
	default:
		return RegionCart, addr
	}
}
