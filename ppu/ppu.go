// Package ppu implements the register surface of the NES picture
// processing unit: the control register, the two-write address latch,
// and the buffered VRAM/CHR/palette read path behind $2007. It renders
// nothing; the CPU bus only needs the registers to behave.

package ppu

import (
	"fmt"
	"log"

	"famigo/rom"
)

const (
	chrEnd  = 0x1FFF
	vramEnd = 0x2FFF
	holeEnd = 0x3EFF // $3000-$3EFF is unmapped PPU space

	statusVblank = 0x80
)

// A Ppu owns the graphics-side memory: the cartridge's CHR banks, 2 kB
// of nametable VRAM, 32 bytes of palette RAM and 256 bytes of OAM. The
// CPU reaches all of it through the register window the bus exposes.
type Ppu struct {
	ChrRom  []byte
	Vram    [2048]byte
	Palette [32]byte
	Oam     [256]byte

	mirroring rom.Mirroring

	ctrl    Control
	mask    byte
	status  byte
	oamAddr byte
	scrollX byte
	scrollY byte
	addr    addrLatch

	// buf is the internal read buffer: $2007 reads of CHR and VRAM
	// return the previous access and refill it.
	buf byte
}

func New(chr []byte, mirroring rom.Mirroring) *Ppu {
	return &Ppu{
		ChrRom:    chr,
		mirroring: mirroring,
		addr:      newAddrLatch(),
	}
}

// Control returns the last value written to $2000.
func (p *Ppu) Control() Control { return p.ctrl }

// Addr returns the current 14-bit value of the address latch.
func (p *Ppu) Addr() uint16 { return p.addr.get() }

// WriteControl handles $2000.
func (p *Ppu) WriteControl(data byte) { p.ctrl = Control(data) }

// WriteMask handles $2001.
func (p *Ppu) WriteMask(data byte) { p.mask = data }

// ReadStatus handles $2002. Reading clears the vblank bit and resets
// the $2006/$2005 write flip-flop.
func (p *Ppu) ReadStatus() byte {
	s := p.status
	p.status &^= statusVblank
	p.addr.reset()
	return s
}

// WriteOamAddr handles $2003.
func (p *Ppu) WriteOamAddr(data byte) { p.oamAddr = data }

// WriteOamData handles $2004, advancing the OAM address.
func (p *Ppu) WriteOamData(data byte) {
	p.Oam[p.oamAddr] = data
	p.oamAddr++
}

// ReadOamData handles $2004 reads. The address does not advance.
func (p *Ppu) ReadOamData() byte { return p.Oam[p.oamAddr] }

// WriteScroll handles $2005, sharing the high/low flip-flop with the
// address latch.
func (p *Ppu) WriteScroll(data byte) {
	if p.addr.writeHi {
		p.scrollX = data
	} else {
		p.scrollY = data
	}
	p.addr.writeHi = !p.addr.writeHi
}

// WriteAddr handles $2006: high byte first, low byte second, masked to
// the 14-bit PPU address space.
func (p *Ppu) WriteAddr(data byte) { p.addr.update(data) }

// WriteOamDma copies a full 256-byte page into OAM, starting at the
// current OAM address. The bus assembles the page from CPU memory.
func (p *Ppu) WriteOamDma(page *[256]byte) {
	for _, b := range page {
		p.WriteOamData(b)
	}
}

// ReadData handles $2007 reads. The latch advances by the control
// register's increment, but the byte returned is selected by the
// pre-increment address: CHR and nametable reads go through the
// internal buffer (returning the previous contents), palette reads are
// direct. $3000-$3EFF is unmapped and stops the run.
func (p *Ppu) ReadData() byte {
	addr := p.addr.get()
	p.addr.increment(p.ctrl.VramIncrement())

	switch {
	case addr <= chrEnd:
		res := p.buf
		p.buf = p.ChrRom[addr]
		return res
	case addr <= vramEnd:
		res := p.buf
		p.buf = p.Vram[p.MirrorVram(addr)]
		return res
	case addr <= holeEnd:
		panic(fmt.Sprintf("ppu: read from unmapped space %#04x", addr))
	default:
		return p.Palette[paletteIndex(addr)]
	}
}

// WriteData handles $2007 writes, with the same latch advance as reads.
func (p *Ppu) WriteData(data byte) {
	addr := p.addr.get()
	p.addr.increment(p.ctrl.VramIncrement())

	switch {
	case addr <= chrEnd:
		log.Printf("ppu: ignoring write to CHR ROM at %#04x", addr)
	case addr <= vramEnd:
		p.Vram[p.MirrorVram(addr)] = data
	case addr <= holeEnd:
		panic(fmt.Sprintf("ppu: write to unmapped space %#04x", addr))
	default:
		p.Palette[paletteIndex(addr)] = data
	}
}

// paletteIndex maps $3F00-$3FFF into the 32-byte palette RAM. The
// sprite backdrop entries $3F10/$3F14/$3F18/$3F1C mirror their
// background counterparts.
func paletteIndex(addr uint16) uint16 {
	i := (addr - 0x3F00) % 32
	switch i {
	case 0x10, 0x14, 0x18, 0x1C:
		return i - 0x10
	}
	return i
}

// MirrorVram folds a nametable address into the 2 kB of physical VRAM.
// The address space holds four 1 kB nametables; which pairs share
// memory depends on the cartridge:
//
//	horizontal: AABB
//	vertical:   ABAB
//	four-screen carts address all four (the extra 2 kB lives on the
//	cartridge, which mapper 0 never provides)
func (p *Ppu) MirrorVram(addr uint16) uint16 {
	vramIndex := (addr & vramEnd) - 0x2000
	quadrant := vramIndex / 0x400

	switch p.mirroring {
	case rom.Horizontal:
		switch quadrant {
		case 1, 2:
			return vramIndex - 0x400
		case 3:
			return vramIndex - 0x800
		}
	case rom.Vertical:
		if quadrant >= 2 {
			return vramIndex - 0x800
		}
	}
	return vramIndex
}
