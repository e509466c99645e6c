package nes

const (
	ppuDotsPerLine   = 341
	ppuLinesPerFrame = 262

	ppuVBlankLine    = 241
	ppuPreRenderLine = 261
)

const (
	ctrlIncrement32 = uint8(1 << 2)
	ctrlNMIEnable   = uint8(1 << 7)

	maskShowBackground = uint8(1 << 3)
	maskShowSprites    = uint8(1 << 4)

	statusOverflow = uint8(1 << 5)
	statusSprite0  = uint8(1 << 6)
	statusVBlank   = uint8(1 << 7)
)

// chrMemory is the pattern table side of the cartridge.
type chrMemory interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
}

// nmiLine is the PPU output wired to the CPU NMI input.
type nmiLine interface {
	SetNMI(asserted bool)
}

// PPU models the timing and the register file of the RP2C02.
// Nothing is rendered: the unit counts dots and scanlines, raises vblank
// and NMI at the right dot and keeps VRAM, OAM and palette behind the
// registers at $2000-$2007.
type PPU struct {
	// Registers
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// v is the current VRAM address, t the temporary one,
	// w the shared first/second write toggle of $2005 and $2006.
	v     uint16
	t     uint16
	fineX uint8
	w     bool

	readBuffer uint8
	// latch is the value last driven on the PPU data bus,
	// write-only registers read back as this.
	latch uint8

	oam        [0x100]uint8
	nametables [0x1000]uint8
	palette    [0x20]uint8

	chr       chrMemory
	mirroring Mirroring
	nmi       nmiLine

	dot      uint16
	scanLine uint16
	frame    uint64
	oddFrame bool
}

func NewPPU(chr chrMemory, mirroring Mirroring, nmi nmiLine) *PPU {
	return &PPU{
		chr:       chr,
		mirroring: mirroring,
		nmi:       nmi,
	}
}

// Reset puts the PPU at the start of frame 0. VRAM and OAM are kept.
func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.v = 0
	p.t = 0
	p.fineX = 0
	p.w = false
	p.readBuffer = 0
	p.latch = 0
	p.dot = 0
	p.scanLine = 0
	p.frame = 0
	p.oddFrame = false
	p.updateNMI()
}

func (p *PPU) Dot() uint16 {
	return p.dot
}

func (p *PPU) ScanLine() uint16 {
	return p.scanLine
}

// Frame counts completed frames.
func (p *PPU) Frame() uint64 {
	return p.frame
}

func (p *PPU) VBlank() bool {
	return p.status&statusVBlank > 0
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBackground|maskShowSprites) > 0
}

// updateNMI drives the NMI output. The controller latches the edges.
func (p *PPU) updateNMI() {
	if p.nmi == nil {
		return
	}
	p.nmi.SetNMI(p.status&statusVBlank > 0 && p.ctrl&ctrlNMIEnable > 0)
}

// Step advances the PPU by the given number of dots.
func (p *PPU) Step(dots uint32) {
	for ; dots > 0; dots-- {
		p.tic()
	}
}

func (p *PPU) tic() {
	p.dot++
	// the last dot of the pre-render line is skipped on odd frames
	// while rendering is enabled
	if p.scanLine == ppuPreRenderLine && p.dot == ppuDotsPerLine-1 && p.oddFrame && p.renderingEnabled() {
		p.dot = ppuDotsPerLine
	}
	if p.dot >= ppuDotsPerLine {
		p.dot = 0
		p.scanLine++
		if p.scanLine >= ppuLinesPerFrame {
			p.scanLine = 0
			p.frame++
			p.oddFrame = !p.oddFrame
		}
	}

	if p.dot != 1 {
		return
	}
	switch p.scanLine {
	case ppuVBlankLine:
		p.status |= statusVBlank
		p.updateNMI()
	case ppuPreRenderLine:
		p.status &^= statusVBlank | statusSprite0 | statusOverflow
		p.updateNMI()
	}
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&ctrlIncrement32 > 0 {
		return 32
	}
	return 1
}

// Read implements the CPU side of $2000-$2007.
func (p *PPU) Read(addr uint16) (uint8, bool) {
	switch addr {
	case 0x2002:
		data := p.status&0xe0 | p.latch&0x1f
		p.status &^= statusVBlank
		p.w = false
		p.updateNMI()
		p.latch = data
	case 0x2004:
		p.latch = p.oam[p.oamAddr]
	case 0x2007:
		vaddr := p.v & 0x3fff
		if vaddr >= 0x3f00 {
			// palette reads are not buffered, the buffer gets the
			// nametable byte underneath
			p.latch = p.latch&0xc0 | p.palette[paletteIndex(vaddr)]
			p.readBuffer = p.readVRAM(vaddr - 0x1000)
		} else {
			p.latch = p.readBuffer
			p.readBuffer = p.readVRAM(vaddr)
		}
		p.v += p.vramIncrement()
	}
	return p.latch, true
}

// Peek is Read without side effects.
func (p *PPU) Peek(addr uint16) (uint8, bool) {
	switch addr {
	case 0x2002:
		return p.status&0xe0 | p.latch&0x1f, true
	case 0x2004:
		return p.oam[p.oamAddr], true
	case 0x2007:
		vaddr := p.v & 0x3fff
		if vaddr >= 0x3f00 {
			return p.latch&0xc0 | p.palette[paletteIndex(vaddr)], true
		}
		return p.readBuffer, true
	}
	return p.latch, true
}

// Write implements the CPU side of $2000-$2007.
func (p *PPU) Write(addr uint16, data uint8) {
	p.latch = data
	switch addr {
	case 0x2000:
		p.ctrl = data
		p.t = p.t&0xf3ff | uint16(data&0x3)<<10
		p.updateNMI()
	case 0x2001:
		p.mask = data
	case 0x2003:
		p.oamAddr = data
	case 0x2004:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case 0x2005:
		if !p.w {
			p.t = p.t&0xffe0 | uint16(data>>3)
			p.fineX = data & 0x7
		} else {
			p.t = p.t&0x8c1f | uint16(data&0x7)<<12 | uint16(data&0xf8)<<2
		}
		p.w = !p.w
	case 0x2006:
		if !p.w {
			p.t = p.t&0x80ff | uint16(data&0x3f)<<8
		} else {
			p.t = p.t&0xff00 | uint16(data)
			p.v = p.t
		}
		p.w = !p.w
	case 0x2007:
		p.writeVRAM(p.v&0x3fff, data)
		p.v += p.vramIncrement()
	}
}

// PPU memory map:
//
// $0000-$0FFF: Pattern table 0 (cartridge)
// $1000-$1FFF: Pattern table 1 (cartridge)
// $2000-$2FFF: Nametables 0-3, folded by the board mirroring
// $3000-$3EFF: Mirror of $2000-$2EFF
// $3F00-$3F1F: Palette RAM
// $3F20-$3FFF: Mirrors of $3F00-$3F1F
func (p *PPU) readVRAM(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		if p.chr == nil {
			return 0
		}
		return p.chr.ReadCHR(addr)
	case addr < 0x3f00:
		return p.nametables[p.nametableIndex(addr)]
	default:
		return p.palette[paletteIndex(addr)]
	}
}

func (p *PPU) writeVRAM(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		if p.chr != nil {
			p.chr.WriteCHR(addr, data)
		}
	case addr < 0x3f00:
		p.nametables[p.nametableIndex(addr)] = data
	default:
		p.palette[paletteIndex(addr)] = data & 0x3f
	}
}

func (p *PPU) nametableIndex(addr uint16) uint16 {
	offset := (addr - 0x2000) & 0x0fff
	table := offset / 0x400
	switch p.mirroring {
	case MirrorHorizontal:
		// $2000=$2400, $2800=$2C00
		table >>= 1
	case MirrorVertical:
		// $2000=$2800, $2400=$2C00
		table &= 1
	}
	return table*0x400 + offset%0x400
}

// paletteIndex folds $3F10/$3F14/$3F18/$3F1C onto the background entries.
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1f
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}
