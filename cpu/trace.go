package cpu

import (
	"fmt"
	"strings"
)

// Trace renders the instruction at the current program counter as one
// nestest-compatible log line:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
//
// Columns: the counter, the raw instruction bytes, an asterisk on
// undocumented instructions, the mnemonic, a mode-specific rendering of
// the operand (with the resolved address and the byte found there), and
// the register file. Everything is peeked, never read: tracing must not
// advance the PPU latches or trip the write-only register faults.
func Trace(c *Cpu) string {
	pc := c.ProgramCounter
	b := c.Bus.Peek(pc)

	line := func(asm string) string {
		return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
			asm, c.Accumulator, c.X, c.Y, c.Status.Byte(), c.Stack)
	}

	op, legal := Opcodes[b]
	if !legal {
		return line(fmt.Sprintf("%04X  %02X       ???", pc, b))
	}

	raw := make([]string, op.Bytes)
	for i := range raw {
		raw[i] = fmt.Sprintf("%02X", c.Bus.Peek(pc+uint16(i)))
	}

	marker := " "
	if op.Illegal {
		marker = "*"
	}

	return line(fmt.Sprintf("%04X  %-8s %s%s %s",
		pc, strings.Join(raw, " "), marker, op.Name, c.formatOperand(op, pc)))
}

// formatOperand renders the operand the way the nestest log does:
// alongside the raw bytes it shows where the mode lands and what is
// stored there.
func (c *Cpu) formatOperand(op OpCode, pc uint16) string {
	arg := c.Bus.Peek(pc + 1)

	switch op.Mode {

	case Implied:
		return ""

	case Accumulator:
		return "A"

	case Immediate:
		return fmt.Sprintf("#$%02X", arg)

	case ZeroPage:
		return fmt.Sprintf("$%02X = %02X", arg, c.Bus.Peek(uint16(arg)))

	case ZeroPageX:
		addr := uint16(arg + c.X)
		return fmt.Sprintf("$%02X,X @ %02X = %02X", arg, byte(addr), c.Bus.Peek(addr))

	case ZeroPageY:
		addr := uint16(arg + c.Y)
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", arg, byte(addr), c.Bus.Peek(addr))

	case Absolute:
		addr := c.Bus.PeekWord(pc + 1)
		if op.Name == "JMP" || op.Name == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, c.Bus.Peek(addr))

	case AbsoluteX:
		base := c.Bus.PeekWord(pc + 1)
		addr := base + uint16(c.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, addr, c.Bus.Peek(addr))

	case AbsoluteY:
		base := c.Bus.PeekWord(pc + 1)
		addr := base + uint16(c.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, addr, c.Bus.Peek(addr))

	case Indirect:
		ptr := c.Bus.PeekWord(pc + 1)
		var target uint16
		if c.IndirectBug && ptr&0x00FF == 0x00FF {
			target = word(c.Bus.Peek(ptr&0xFF00), c.Bus.Peek(ptr))
		} else {
			target = c.Bus.PeekWord(ptr)
		}
		return fmt.Sprintf("($%04X) = %04X", ptr, target)

	case IndirectX:
		zp := arg + c.X
		addr := word(c.Bus.Peek(uint16(zp+1)), c.Bus.Peek(uint16(zp)))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", arg, zp, addr, c.Bus.Peek(addr))

	case IndirectY:
		base := word(c.Bus.Peek(uint16(arg+1)), c.Bus.Peek(uint16(arg)))
		addr := base + uint16(c.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", arg, base, addr, c.Bus.Peek(addr))

	case Relative:
		target := pc + 2 + uint16(int8(arg))
		return fmt.Sprintf("$%04X", target)

	}
	return ""
}
