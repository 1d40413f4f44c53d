package cpu

import "famigo/status"

// https://www.nesdev.org/obelisk-6502-guide/reference.html
// https://www.nesdev.org/wiki/Programming_with_unofficial_opcodes

// Handlers receive the addressing mode of the opcode byte that selected
// them and report whether they retargeted the ProgramCounter; the
// dispatcher skips the trailing operand advance for those (branches,
// jumps, returns).

// operand is the common prologue: resolve the mode and read the byte.
func (c *Cpu) operand(m AddressingMode) byte {
	return c.Read(c.operandAddress(m))
}

// addToAccumulator is the ADC core, shared with SBC/ISC/RRA: a 16-bit
// sum of A, the operand and the carry. C comes from bit 8. V is the
// signed-overflow test: set when both inputs agree on a sign the result
// does not have.
func (c *Cpu) addToAccumulator(v byte) {
	var carry uint16
	if c.Status.Has(status.Carry) {
		carry = 1
	}
	sum := uint16(c.Accumulator) + uint16(v) + carry
	result := byte(sum)

	c.Status.Set(status.Carry, sum > 0xFF)
	c.Status.Set(status.Overflow, (c.Accumulator^result)&(v^result)&0x80 != 0)
	c.Status.SetZeroNegative(result)
	c.Accumulator = result
}

// compare is shared by CMP/CPX/CPY/DCP: C iff reg >= operand
// (unsigned), Z/N from the difference.
func (c *Cpu) compare(reg, v byte) {
	c.Status.Set(status.Carry, reg >= v)
	c.Status.SetZeroNegative(reg - v)
}

// branch consumes the displacement operand and, when taken, retargets
// the counter relative to the byte after it.
func (c *Cpu) branch(cond bool) bool {
	if !cond {
		return false
	}
	displacement := int8(c.Read(c.ProgramCounter))
	c.ProgramCounter = c.ProgramCounter + 1 + uint16(displacement)
	return true
}

// ADC - Add with Carry
func (c *Cpu) ADC(m AddressingMode) bool {
	c.addToAccumulator(c.operand(m))
	return false
}

// SBC - Subtract with Carry. A - M - (1-C) is exactly A + ^M + C, so
// the operand's one's complement goes through the ADC core.
func (c *Cpu) SBC(m AddressingMode) bool {
	c.addToAccumulator(c.operand(m) ^ 0xFF)
	return false
}

// AND - Logical AND
func (c *Cpu) AND(m AddressingMode) bool {
	c.Accumulator &= c.operand(m)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(m AddressingMode) bool {
	c.Accumulator |= c.operand(m)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// EOR - Exclusive OR
func (c *Cpu) EOR(m AddressingMode) bool {
	c.Accumulator ^= c.operand(m)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// BIT - Bit Test. A is left untouched; the operand itself feeds N and
// V, the masked result feeds Z.
func (c *Cpu) BIT(m AddressingMode) bool {
	v := c.operand(m)
	c.Status.Set(status.Zero, v&c.Accumulator == 0)
	c.Status.Set(status.Negative, v&0x80 != 0)
	c.Status.SetOverflowBit(v)
	return false
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(m AddressingMode) bool {
	old, write := c.target(m)
	v := old << 1
	write(v)
	c.Status.Set(status.Carry, old&0x80 != 0)
	c.Status.SetZeroNegative(v)
	return false
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(m AddressingMode) bool {
	old, write := c.target(m)
	v := old >> 1
	write(v)
	c.Status.Set(status.Carry, old&0x01 != 0)
	c.Status.SetZeroNegative(v) // N can never be set here
	return false
}

// ROL - Rotate Left
func (c *Cpu) ROL(m AddressingMode) bool {
	old, write := c.target(m)
	v := old << 1
	if c.Status.Has(status.Carry) {
		v |= 0x01
	}
	write(v)
	c.Status.Set(status.Carry, old&0x80 != 0)
	c.Status.SetZeroNegative(v)
	return false
}

// ROR - Rotate Right
func (c *Cpu) ROR(m AddressingMode) bool {
	old, write := c.target(m)
	v := old >> 1
	if c.Status.Has(status.Carry) {
		v |= 0x80
	}
	write(v)
	c.Status.Set(status.Carry, old&0x01 != 0)
	c.Status.SetZeroNegative(v)
	return false
}

// CMP - Compare Accumulator
func (c *Cpu) CMP(m AddressingMode) bool {
	c.compare(c.Accumulator, c.operand(m))
	return false
}

// CPX - Compare X Register
func (c *Cpu) CPX(m AddressingMode) bool {
	c.compare(c.X, c.operand(m))
	return false
}

// CPY - Compare Y Register
func (c *Cpu) CPY(m AddressingMode) bool {
	c.compare(c.Y, c.operand(m))
	return false
}

// INC - Increment Memory
func (c *Cpu) INC(m AddressingMode) bool {
	addr := c.operandAddress(m)
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.Status.SetZeroNegative(v)
	return false
}

// DEC - Decrement Memory
func (c *Cpu) DEC(m AddressingMode) bool {
	addr := c.operandAddress(m)
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.Status.SetZeroNegative(v)
	return false
}

// INX - Increment X Register
func (c *Cpu) INX(AddressingMode) bool {
	c.X++
	c.Status.SetZeroNegative(c.X)
	return false
}

// DEX - Decrement X Register
func (c *Cpu) DEX(AddressingMode) bool {
	c.X--
	c.Status.SetZeroNegative(c.X)
	return false
}

// INY - Increment Y Register
func (c *Cpu) INY(AddressingMode) bool {
	c.Y++
	c.Status.SetZeroNegative(c.Y)
	return false
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(AddressingMode) bool {
	c.Y--
	c.Status.SetZeroNegative(c.Y)
	return false
}

// LDA - Load Accumulator
func (c *Cpu) LDA(m AddressingMode) bool {
	c.Accumulator = c.operand(m)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// LDX - Load X Register
func (c *Cpu) LDX(m AddressingMode) bool {
	c.X = c.operand(m)
	c.Status.SetZeroNegative(c.X)
	return false
}

// LDY - Load Y Register
func (c *Cpu) LDY(m AddressingMode) bool {
	c.Y = c.operand(m)
	c.Status.SetZeroNegative(c.Y)
	return false
}

// STA - Store Accumulator
func (c *Cpu) STA(m AddressingMode) bool {
	c.Write(c.operandAddress(m), c.Accumulator)
	return false
}

// STX - Store X Register
func (c *Cpu) STX(m AddressingMode) bool {
	c.Write(c.operandAddress(m), c.X)
	return false
}

// STY - Store Y Register
func (c *Cpu) STY(m AddressingMode) bool {
	c.Write(c.operandAddress(m), c.Y)
	return false
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(AddressingMode) bool {
	c.X = c.Accumulator
	c.Status.SetZeroNegative(c.X)
	return false
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(AddressingMode) bool {
	c.Y = c.Accumulator
	c.Status.SetZeroNegative(c.Y)
	return false
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(AddressingMode) bool {
	c.Accumulator = c.X
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(AddressingMode) bool {
	c.Accumulator = c.Y
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(AddressingMode) bool {
	c.X = c.Stack
	c.Status.SetZeroNegative(c.X)
	return false
}

// TXS - Transfer X to Stack Pointer. The only transfer that leaves the
// flags alone.
func (c *Cpu) TXS(AddressingMode) bool {
	c.Stack = c.X
	return false
}

// Flag instructions

func (c *Cpu) CLC(AddressingMode) bool { c.Status.Set(status.Carry, false); return false }
func (c *Cpu) SEC(AddressingMode) bool { c.Status.Set(status.Carry, true); return false }
func (c *Cpu) CLI(AddressingMode) bool { c.Status.Set(status.Interrupt, false); return false }
func (c *Cpu) SEI(AddressingMode) bool { c.Status.Set(status.Interrupt, true); return false }
func (c *Cpu) CLV(AddressingMode) bool { c.Status.Set(status.Overflow, false); return false }

// CLD/SED maintain the Decimal flag even though the 2A03 ignores it:
// ADC and SBC always run in binary.
func (c *Cpu) CLD(AddressingMode) bool { c.Status.Set(status.Decimal, false); return false }
func (c *Cpu) SED(AddressingMode) bool { c.Status.Set(status.Decimal, true); return false }

// Branches

func (c *Cpu) BCC(AddressingMode) bool { return c.branch(!c.Status.Has(status.Carry)) }
func (c *Cpu) BCS(AddressingMode) bool { return c.branch(c.Status.Has(status.Carry)) }
func (c *Cpu) BNE(AddressingMode) bool { return c.branch(!c.Status.Has(status.Zero)) }
func (c *Cpu) BEQ(AddressingMode) bool { return c.branch(c.Status.Has(status.Zero)) }
func (c *Cpu) BPL(AddressingMode) bool { return c.branch(!c.Status.Has(status.Negative)) }
func (c *Cpu) BMI(AddressingMode) bool { return c.branch(c.Status.Has(status.Negative)) }
func (c *Cpu) BVC(AddressingMode) bool { return c.branch(!c.Status.Has(status.Overflow)) }
func (c *Cpu) BVS(AddressingMode) bool { return c.branch(c.Status.Has(status.Overflow)) }

// JMP - Jump (Absolute or Indirect, the latter with the page-wrap bug)
func (c *Cpu) JMP(m AddressingMode) bool {
	c.ProgramCounter = c.operandAddress(m)
	return true
}

// JSR - Jump to Subroutine. The pushed return address points at the
// last byte of the JSR instruction; RTS compensates.
func (c *Cpu) JSR(m AddressingMode) bool {
	target := c.operandAddress(m)
	c.pushWord(c.ProgramCounter + 1)
	c.ProgramCounter = target
	return true
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(AddressingMode) bool {
	c.ProgramCounter = c.popWord() + 1
	return true
}

// RTI - Return from Interrupt. The restored status never carries B1 and
// always carries the unused bit; the popped counter is used as-is.
func (c *Cpu) RTI(AddressingMode) bool {
	c.Status = status.Register(c.pop()&^status.Break1 | status.Unused)
	c.ProgramCounter = c.popWord()
	return true
}

// BRK - Force Interrupt. Dispatched in Step, which ends the run; the
// entry here only carries the table metadata.
func (c *Cpu) BRK(AddressingMode) bool {
	return true
}

// Stack instructions

// PHA - Push Accumulator
func (c *Cpu) PHA(AddressingMode) bool {
	c.push(c.Accumulator)
	return false
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(AddressingMode) bool {
	c.Accumulator = c.pop()
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// PHP - Push Processor Status. The snapshot on the stack carries B1
// clear and the unused bit set, whatever the live register says.
func (c *Cpu) PHP(AddressingMode) bool {
	c.push(c.Status.Byte()&^status.Break1 | status.Unused)
	return false
}

// PLP - Pull Processor Status, with the same B1/unused masking.
func (c *Cpu) PLP(AddressingMode) bool {
	c.Status = status.Register(c.pop()&^status.Break1 | status.Unused)
	return false
}

// NOP - No Operation (official and the unofficial implied variants)
func (c *Cpu) NOP(AddressingMode) bool {
	return false
}

// Unofficial instructions. Only the subset a nestest run exercises is
// implemented; the rest of the undocumented matrix stays unknown.

// IGN - read a byte and ignore it. The read still happens so that its
// bus side effects do.
func (c *Cpu) IGN(m AddressingMode) bool {
	c.operand(m)
	return false
}

// SKB - skip byte; an immediate-mode IGN
func (c *Cpu) SKB(m AddressingMode) bool {
	c.operand(m)
	return false
}

// LAX - load Accumulator and X together
func (c *Cpu) LAX(m AddressingMode) bool {
	v := c.operand(m)
	c.Accumulator = v
	c.X = v
	c.Status.SetZeroNegative(v)
	return false
}

// SAX - store A AND X, flags untouched
func (c *Cpu) SAX(m AddressingMode) bool {
	c.Write(c.operandAddress(m), c.Accumulator&c.X)
	return false
}

// DCP - decrement memory, then compare with A
func (c *Cpu) DCP(m AddressingMode) bool {
	addr := c.operandAddress(m)
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.compare(c.Accumulator, v)
	return false
}

// ISC - increment memory, then subtract it from A
func (c *Cpu) ISC(m AddressingMode) bool {
	addr := c.operandAddress(m)
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.addToAccumulator(v ^ 0xFF)
	return false
}

// SLO - shift memory left, then OR into A
func (c *Cpu) SLO(m AddressingMode) bool {
	addr := c.operandAddress(m)
	old := c.Read(addr)
	v := old << 1
	c.Write(addr, v)
	c.Accumulator |= v
	c.Status.Set(status.Carry, old&0x80 != 0)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// RLA - rotate memory left through carry, then AND into A
func (c *Cpu) RLA(m AddressingMode) bool {
	addr := c.operandAddress(m)
	old := c.Read(addr)
	v := old << 1
	if c.Status.Has(status.Carry) {
		v |= 0x01
	}
	c.Write(addr, v)
	c.Accumulator &= v
	c.Status.Set(status.Carry, old&0x80 != 0)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// SRE - shift memory right, then EOR into A
func (c *Cpu) SRE(m AddressingMode) bool {
	addr := c.operandAddress(m)
	old := c.Read(addr)
	v := old >> 1
	c.Write(addr, v)
	c.Accumulator ^= v
	c.Status.Set(status.Carry, old&0x01 != 0)
	c.Status.SetZeroNegative(c.Accumulator)
	return false
}

// RRA - rotate memory right through carry, then add it to A
func (c *Cpu) RRA(m AddressingMode) bool {
	addr := c.operandAddress(m)
	old := c.Read(addr)
	v := old >> 1
	if c.Status.Has(status.Carry) {
		v |= 0x80
	}
	c.Write(addr, v)
	c.Status.Set(status.Carry, old&0x01 != 0)
	c.addToAccumulator(v)
	return false
}
