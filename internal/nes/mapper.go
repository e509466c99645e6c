package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// Mapper translates CPU and PPU addresses into cartridge storage and holds
// the bank registers of the board.
type Mapper interface {
	// ReadPRG returns ok=false for addresses the board does not drive.
	ReadPRG(addr uint16) (uint8, bool)
	WritePRG(addr uint16, data uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
	// PokePRG writes PRG storage directly, bank registers stay as they are.
	PokePRG(addr uint16, data uint8)
}

func newMapper(cart *Cart) (Mapper, error) {
	switch cart.mapperID {
	case 0:
		// the board decodes 32 KB of PRG and 8 KB of CHR
		if cart.prgBanks > 2 || cart.chrBanks > 1 {
			return nil, fmt.Errorf("%w: NROM with %d PRG and %d CHR banks",
				ErrMalformedImage, cart.prgBanks, cart.chrBanks)
		}
		return &nrom{cart}, nil
	case 2:
		return &uxrom{cart: cart}, nil
	}
	return nil, &UnsupportedMapperError{ID: cart.mapperID}
}

// prgRAMAddr reports whether addr falls in $6000-$7FFF.
func prgRAMAddr(addr uint16) bool {
	return addr >= 0x6000 && addr < 0x8000
}

func (c *Cart) readCHRMem(addr uint16) uint8 {
	return c.chrMem[int(addr)%len(c.chrMem)]
}

func (c *Cart) writeCHRMem(addr uint16, data uint8) {
	if !c.chrRAM {
		if glog.V(2) {
			glog.Infof("cart: write $%02X to CHR ROM $%04X dropped", data, addr)
		}
		return
	}
	c.chrMem[int(addr)%len(c.chrMem)] = data
}

// nrom is mapper 0: https://www.nesdev.org/wiki/NROM
//
// CPU $6000-$7FFF: PRG RAM
// CPU $8000-$BFFF: First 16 KB of ROM.
// CPU $C000-$FFFF: Last 16 KB of ROM (NROM-256) or mirror of $8000-$BFFF (NROM-128).
type nrom struct {
	cart *Cart
}

func (m *nrom) mapAddr(addr uint16) int {
	if m.cart.prgBanks > 1 {
		return int(addr & 0x7fff)
	}
	return int(addr & 0x3fff)
}

func (m *nrom) ReadPRG(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0x8000:
		return m.cart.prgMem[m.mapAddr(addr)], true
	case prgRAMAddr(addr):
		return m.cart.prgRAM[addr-0x6000], true
	}
	return 0, false
}

func (m *nrom) WritePRG(addr uint16, data uint8) {
	switch {
	case addr >= 0x8000:
		if glog.V(2) {
			glog.Infof("cart: write $%02X to PRG ROM $%04X dropped", data, addr)
		}
	case prgRAMAddr(addr):
		m.cart.prgRAM[addr-0x6000] = data
	}
}

func (m *nrom) PokePRG(addr uint16, data uint8) {
	switch {
	case addr >= 0x8000:
		m.cart.prgMem[m.mapAddr(addr)] = data
	case prgRAMAddr(addr):
		m.cart.prgRAM[addr-0x6000] = data
	}
}

func (m *nrom) ReadCHR(addr uint16) uint8 {
	return m.cart.readCHRMem(addr)
}

func (m *nrom) WriteCHR(addr uint16, data uint8) {
	m.cart.writeCHRMem(addr, data)
}

// uxrom is mapper 2: https://www.nesdev.org/wiki/UxROM
//
// CPU $8000-$BFFF: 16 KB switchable PRG ROM bank
// CPU $C000-$FFFF: 16 KB PRG ROM bank, fixed to the last bank
// Any write to $8000-$FFFF selects the switchable bank.
type uxrom struct {
	cart *Cart
	bank int
}

func (m *uxrom) mapAddr(addr uint16) int {
	if addr < 0xc000 {
		return m.bank*prgBankSizeBytes + int(addr-0x8000)
	}
	last := int(m.cart.prgBanks) - 1
	return last*prgBankSizeBytes + int(addr-0xc000)
}

func (m *uxrom) ReadPRG(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0x8000:
		return m.cart.prgMem[m.mapAddr(addr)], true
	case prgRAMAddr(addr):
		return m.cart.prgRAM[addr-0x6000], true
	}
	return 0, false
}

func (m *uxrom) WritePRG(addr uint16, data uint8) {
	switch {
	case addr >= 0x8000:
		m.bank = int(data) % int(m.cart.prgBanks)
		if glog.V(2) {
			glog.Infof("cart: PRG bank %d at $8000", m.bank)
		}
	case prgRAMAddr(addr):
		m.cart.prgRAM[addr-0x6000] = data
	}
}

func (m *uxrom) PokePRG(addr uint16, data uint8) {
	switch {
	case addr >= 0x8000:
		m.cart.prgMem[m.mapAddr(addr)] = data
	case prgRAMAddr(addr):
		m.cart.prgRAM[addr-0x6000] = data
	}
}

func (m *uxrom) ReadCHR(addr uint16) uint8 {
	return m.cart.readCHRMem(addr)
}

func (m *uxrom) WriteCHR(addr uint16, data uint8) {
	m.cart.writeCHRMem(addr, data)
}
