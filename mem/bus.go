// Package mem implements the CPU-side bus: the central object that
// connects the processor to its 2 kB of work RAM, the PPU's register
// window and the cartridge's PRG-ROM.

package mem

import (
	"fmt"
	"log"

	"famigo/ppu"
	"famigo/rom"
)

// CPU address space, as decoded by the bus:
//
//	0000-1fff  2 kB RAM, mirrored every 2 kB
//	2000-2007  PPU registers
//	2008-3fff  mirrors of the PPU registers, every 8 bytes
//	4014       OAM DMA
//	8000-ffff  PRG-ROM (16 kB carts mirror the upper half down)
const (
	ramEnd   = 0x1FFF
	ramMask  = 0x07FF
	ppuEnd   = 0x3FFF
	ppuMask  = 0x2007
	oamDma   = 0x4014
	prgStart = 0x8000
)

// A Bus owns everything the CPU can address. Every read and write the
// processor performs travels through it, so register side effects (the
// buffered $2007 path, the $2002 latch reset) happen exactly when the
// program triggers them.
type Bus struct {
	ram [2048]byte
	rom *rom.Rom
	Ppu *ppu.Ppu

	// writablePrg lets test programs be loaded into the PRG window.
	// Real cartridges fault on such writes.
	writablePrg bool
}

func NewBus(r *rom.Rom) *Bus {
	return &Bus{
		rom: r,
		Ppu: ppu.New(r.Chr, r.Mirroring),
	}
}

// NewTestBus is the bus variant the test harness runs programs on: a
// blank 32 kB cartridge whose PRG window accepts writes.
func NewTestBus() *Bus {
	b := NewBus(rom.Empty())
	b.writablePrg = true
	return b
}

// Read decodes one CPU read. Reads of write-only PPU registers stop the
// run; reads of unmapped space log and return 0.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&ramMask]
	case addr == 0x2002:
		return b.Ppu.ReadStatus()
	case addr == 0x2004:
		return b.Ppu.ReadOamData()
	case addr == 0x2007:
		return b.Ppu.ReadData()
	case addr <= ppuMask || addr == oamDma:
		panic(fmt.Sprintf("mem: read from write-only register %#04x", addr))
	case addr <= ppuEnd:
		return b.Read(addr & ppuMask)
	case addr >= prgStart:
		return b.readPrg(addr)
	default:
		log.Printf("mem: read from unmapped address %#04x", addr)
		return 0
	}
}

// Write decodes one CPU write. Writes to $2002 or (outside the test
// configuration) to PRG-ROM stop the run; unmapped writes log.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&ramMask] = data
	case addr == 0x2000:
		b.Ppu.WriteControl(data)
	case addr == 0x2001:
		b.Ppu.WriteMask(data)
	case addr == 0x2002:
		panic("mem: write to read-only register $2002")
	case addr == 0x2003:
		b.Ppu.WriteOamAddr(data)
	case addr == 0x2004:
		b.Ppu.WriteOamData(data)
	case addr == 0x2005:
		b.Ppu.WriteScroll(data)
	case addr == 0x2006:
		b.Ppu.WriteAddr(data)
	case addr == 0x2007:
		b.Ppu.WriteData(data)
	case addr <= ppuEnd:
		b.Write(addr&ppuMask, data)
	case addr == oamDma:
		var page [256]byte
		hi := uint16(data) << 8
		for i := range page {
			page[i] = b.Read(hi + uint16(i))
		}
		b.Ppu.WriteOamDma(&page)
	case addr >= prgStart:
		if !b.writablePrg {
			panic(fmt.Sprintf("mem: write to cartridge ROM at %#04x", addr))
		}
		b.rom.Prg[b.prgIndex(addr)] = data
	default:
		log.Printf("mem: write to unmapped address %#04x", addr)
	}
}

func (b *Bus) prgIndex(addr uint16) int {
	// the modulo mirrors 16 kB carts across the full window
	return int(addr-prgStart) % len(b.rom.Prg)
}

func (b *Bus) readPrg(addr uint16) byte {
	return b.rom.Prg[b.prgIndex(addr)]
}

// Peek reads without side effects, for the debugger and the trace: PPU
// registers and unmapped space read as 0 rather than faulting, and the
// $2007 buffer and latches stay put.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&ramMask]
	case addr >= prgStart:
		return b.readPrg(addr)
	default:
		return 0
	}
}

// ReadWord reads a little-endian 16-bit value.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit value.
func (b *Bus) WriteWord(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}

// PeekWord is ReadWord without side effects.
func (b *Bus) PeekWord(addr uint16) uint16 {
	lo := b.Peek(addr)
	hi := b.Peek(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
