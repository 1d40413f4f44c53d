// Package cpu implements the MOS Technology 6502 microprocessor, as
// used in the NES.

package cpu

import (
	"fmt"
	"log"

	"famigo/mem"
	"famigo/status"
)

// https://www.nesdev.org/wiki/CPU_ALL
// https://problemkaputt.de/everynes.htm#cpuregistersandflags

// stackPage is where all stack traffic lives; Stack holds only the low
// byte of the address.
const stackPage = 0x0100

// resetVector is read into the program counter on reset.
const resetVector = 0xFFFC

// The Cpu has no memory of its own (aside from a handful of small
// registers which amount to about 7 bytes). Everything else is reached
// through the Bus.
type Cpu struct {
	Bus *mem.Bus

	// The Accumulator holds a byte value for immediate use; most
	// arithmetic flows through it.
	Accumulator byte
	X           byte
	Y           byte

	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, RTI) always
	// access the 01 page (0x0100-0x01ff). Stack holds the low byte;
	// pushes decrement it, pops increment it, both wrapping within
	// the page.
	Stack byte

	// Status is the P register.
	Status status.Register

	// The ProgramCounter is a word-sized memory address that
	// increments (almost) continuously. The byte at this address
	// provides the opcode of the next instruction to execute.
	ProgramCounter uint16

	// IndirectBug emulates the hardware defect where JMP ($xxFF)
	// fetches the high byte of the target from $xx00 instead of
	// crossing into the next page.
	IndirectBug bool

	// Strict turns unknown opcodes into an error that stops the run
	// instead of a logged diagnostic.
	Strict bool
}

func New(bus *mem.Bus) *Cpu {
	return &Cpu{
		Bus:    bus,
		Stack:  0xFD,
		Status: status.Register(status.ResetValue),
	}
}

// NewTest returns a Cpu wired to a test bus, whose PRG window accepts
// the programs Load writes into it.
func NewTest() *Cpu {
	return New(mem.NewTestBus())
}

// Read reads one byte from the given addr. The addr is typically
// supplied by the program.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// ReadWord reads a little-endian word.
func (c *Cpu) ReadWord(addr uint16) uint16 {
	return c.Bus.ReadWord(addr)
}

// WriteWord writes a little-endian word.
func (c *Cpu) WriteWord(addr uint16, data uint16) {
	c.Bus.WriteWord(addr, data)
}

func word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// An AddressingMode tells the Cpu where to look for the byte(s) an
// instruction operates on. There are 13 possible modes.
//
// Most instructions can index the full 64 kB range of memory, that is,
// 256 pages of 256 bytes. The exceptions are the ZeroPage and indirect
// modes, whose one-byte pointers are confined to the first page.
type AddressingMode int

// https://www.nesdev.org/wiki/CPU_addressing_modes

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // target is the Accumulator itself
	Immediate                         // operand is the byte after the opcode
	ZeroPage                          // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect  // JMP only
	IndirectX // pointer indexed before the dereference
	IndirectY // address indexed after the dereference
	Relative  // branches; signed displacement
)

// operandAddress resolves a mode into the effective address of the
// operand, with the ProgramCounter pointing at the operand bytes. The
// modes without a memory operand (Implied, Accumulator, Relative) never
// come through here.
func (c *Cpu) operandAddress(m AddressingMode) uint16 {
	switch m {

	case Immediate:
		return c.ProgramCounter

	case ZeroPage:
		return uint16(c.Read(c.ProgramCounter))

	case ZeroPageX:
		// the index wraps within page zero
		return uint16(c.Read(c.ProgramCounter) + c.X)

	case ZeroPageY:
		return uint16(c.Read(c.ProgramCounter) + c.Y)

	case Absolute:
		return c.ReadWord(c.ProgramCounter)

	case AbsoluteX:
		return c.ReadWord(c.ProgramCounter) + uint16(c.X)

	case AbsoluteY:
		return c.ReadWord(c.ProgramCounter) + uint16(c.Y)

	case Indirect:
		ptr := c.ReadWord(c.ProgramCounter)
		if c.IndirectBug && ptr&0x00FF == 0x00FF {
			// the hardware never carries into the high byte
			// when fetching the second pointer byte
			// http://www.6502.org/tutorials/6502opcodes.html#JMP
			return word(c.Read(ptr&0xFF00), c.Read(ptr))
		}
		return c.ReadWord(ptr)

	case IndirectX:
		zp := c.Read(c.ProgramCounter) + c.X
		return word(c.Read(uint16(zp+1)), c.Read(uint16(zp)))

	case IndirectY:
		zp := c.Read(c.ProgramCounter)
		base := word(c.Read(uint16(zp+1)), c.Read(uint16(zp)))
		return base + uint16(c.Y)

	}
	panic(fmt.Sprintf("cpu: no operand address in mode %d", m))
}

// target resolves a mode into a read value and a writer, so that
// shift/rotate style instructions can work on the Accumulator and on
// memory cells through the same pair.
func (c *Cpu) target(m AddressingMode) (byte, func(byte)) {
	if m == Accumulator {
		return c.Accumulator, func(v byte) { c.Accumulator = v }
	}
	addr := c.operandAddress(m)
	return c.Read(addr), func(v byte) { c.Write(addr, v) }
}

func (c *Cpu) push(data byte) {
	c.Write(stackPage|uint16(c.Stack), data)
	c.Stack--
}

func (c *Cpu) pop() byte {
	c.Stack++
	return c.Read(stackPage | uint16(c.Stack))
}

func (c *Cpu) pushWord(data uint16) {
	c.push(byte(data >> 8))
	c.push(byte(data))
}

func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return word(hi, lo)
}

// Reset puts the Cpu into its power-on state and loads the program
// counter from the reset vector at $FFFC.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Stack = 0xFD
	c.Status = status.Register(status.ResetValue)
	c.ProgramCounter = c.ReadWord(resetVector)
}

// Load copies a program into memory at origin and points the reset
// vector at it. The reset vector lies in the PRG window, so Load needs
// the test bus whatever the origin.
func (c *Cpu) Load(program []byte, origin uint16) {
	c.WriteWord(resetVector, origin)
	for i, b := range program {
		c.Write(origin+uint16(i), b)
	}
}

// Step executes a single instruction: fetch the opcode at the program
// counter, advance past it, dispatch, and advance past the operand
// bytes unless the handler already retargeted the counter (branches,
// jumps, returns). It reports done on BRK.
func (c *Cpu) Step() (done bool, err error) {
	b := c.Read(c.ProgramCounter)
	op, legal := Opcodes[b]
	if !legal {
		if c.Strict {
			return false, fmt.Errorf("cpu: unknown opcode %#02x at %#04x", b, c.ProgramCounter)
		}
		log.Printf("cpu: unknown opcode %#02x at %#04x", b, c.ProgramCounter)
		c.ProgramCounter++
		return false, nil
	}

	c.ProgramCounter++
	if op.Name == "BRK" {
		// the full interrupt sequence through $FFFE is not
		// emulated; BRK hands control back to the caller
		return true, nil
	}

	if retargeted := op.Run(c, op.Mode); !retargeted {
		c.ProgramCounter += op.Bytes - 1
	}
	return false, nil
}

// Run executes instructions until BRK.
func (c *Cpu) Run() error {
	return c.RunWithCallback(func(*Cpu) {})
}

// RunWithCallback executes instructions until BRK, invoking the
// callback before each one. The callback runs on the same goroutine
// between instructions and is the only cooperative yield: tracing, UI
// polling and rate limiting all live there.
func (c *Cpu) RunWithCallback(fn func(*Cpu)) error {
	for {
		fn(c)
		done, err := c.Step()
		if done || err != nil {
			return err
		}
	}
}
