package cpu

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"famigo/status"
)

// loadHex loads a program written as space-separated hex bytes, the way
// assembler listings print them.
func loadHex(c *Cpu, program string, origin uint16) {
	fields := strings.Fields(program)
	raw := make([]byte, len(fields))
	for i, s := range fields {
		b, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			panic(err)
		}
		raw[i] = byte(b)
	}
	c.Load(raw, origin)
}

// run executes a program from a fresh reset until BRK.
func run(t *testing.T, program string) *Cpu {
	t.Helper()
	c := NewTest()
	loadHex(c, program, 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	return c
}

func TestSimpleProgram(t *testing.T) {
	// LDA #$05; TAX; INX; BRK
	c := run(t, "A9 05 AA E8 00")
	assert.Equal(t, c.Accumulator, byte(0x05))
	assert.Equal(t, c.X, byte(0x06))
	assert.Equal(t, c.Status.Byte(), byte(0x24))
	assert.Equal(t, c.ProgramCounter, uint16(0x8005))
}

func TestLdaSetsNegative(t *testing.T) {
	c := run(t, "A9 C0 00")
	assert.Equal(t, c.Accumulator, byte(0xC0))
	assert.True(t, c.Status.Has(status.Negative))
	assert.False(t, c.Status.Has(status.Zero))
}

func TestLdaSetsZero(t *testing.T) {
	c := run(t, "A9 00 00")
	assert.True(t, c.Status.Has(status.Zero))
	assert.False(t, c.Status.Has(status.Negative))
}

func TestSetFlagInstructions(t *testing.T) {
	// SEC; SED; SEI; BRK
	c := run(t, "38 F8 78 00")
	assert.Equal(t, c.Status.Byte(), byte(0x2D))
}

func TestMultiplyWalkthrough(t *testing.T) {
	// the classic 10x3 loop: LDX #$0A; STX $00; LDX #$03; STX $01;
	// LDY $00; LDA #$00; CLC; loop: ADC $01; DEY; BNE loop; STA $02
	c := NewTest()
	loadHex(c, "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())

	assert.Equal(t, c.Read(0x0000), byte(10))
	assert.Equal(t, c.Read(0x0001), byte(3))
	assert.Equal(t, c.Read(0x0002), byte(30))
	assert.Equal(t, c.Accumulator, byte(30))
	assert.Equal(t, c.X, byte(3))
	assert.Equal(t, c.Y, byte(0))
}

func TestResetIsIdempotent(t *testing.T) {
	c := NewTest()
	c.Load([]byte{0xEA, 0x00}, 0x8000)
	c.Reset()

	before := *c
	assert.NoError(t, c.Run())
	c.Reset()

	assert.Equal(t, c.Accumulator, before.Accumulator)
	assert.Equal(t, c.X, before.X)
	assert.Equal(t, c.Y, before.Y)
	assert.Equal(t, c.Stack, before.Stack)
	assert.Equal(t, c.Status, before.Status)
	assert.Equal(t, c.ProgramCounter, before.ProgramCounter)
}

func TestStackRoundTrip(t *testing.T) {
	c := NewTest()

	for _, v := range []uint16{0x0000, 0x00FF, 0xABCD, 0xFFFF} {
		c.pushWord(v)
		assert.Equal(t, c.popWord(), v)
		assert.Equal(t, c.Stack, byte(0xFD))
	}

	// pushes land in the stack page and move the pointer down
	c.push(0xAB)
	assert.Equal(t, c.Read(0x01FD), byte(0xAB))
	assert.Equal(t, c.Stack, byte(0xFC))
	assert.Equal(t, c.pop(), byte(0xAB))

	// the pointer wraps within the page
	c.Stack = 0x00
	c.push(0x11)
	assert.Equal(t, c.Stack, byte(0xFF))
	assert.Equal(t, c.Read(0x0100), byte(0x11))
	assert.Equal(t, c.pop(), byte(0x11))
	assert.Equal(t, c.Stack, byte(0x00))
}

func TestAdcCarryAndOverflow(t *testing.T) {
	for _, a := range []byte{0x00, 0x01, 0x3F, 0x40, 0x7F, 0x80, 0xC0, 0xFF} {
		for _, m := range []byte{0x00, 0x01, 0x40, 0x7F, 0x80, 0xFF} {
			for _, carry := range []bool{false, true} {
				c := NewTest()
				c.Accumulator = a
				c.Status.Set(status.Carry, carry)
				c.ProgramCounter = 0x0200
				c.Write(0x0200, m)
				c.ADC(Immediate)

				sum := uint16(a) + uint16(m)
				if carry {
					sum++
				}
				r := byte(sum)
				assert.Equal(t, c.Accumulator, r, "A for %02x+%02x", a, m)
				assert.Equal(t, c.Status.Has(status.Carry), sum > 0xFF, "C for %02x+%02x", a, m)
				assert.Equal(t, c.Status.Has(status.Overflow), (a^r)&(m^r)&0x80 != 0, "V for %02x+%02x", a, m)
				assert.Equal(t, c.Status.Has(status.Zero), r == 0, "Z for %02x+%02x", a, m)
				assert.Equal(t, c.Status.Has(status.Negative), r&0x80 != 0, "N for %02x+%02x", a, m)
			}
		}
	}
}

func TestAdcSignedOverflowCases(t *testing.T) {
	// 0x50+0x50: two positives summing negative
	c := run(t, "A9 50 69 50 00")
	assert.Equal(t, c.Accumulator, byte(0xA0))
	assert.True(t, c.Status.Has(status.Overflow))
	assert.False(t, c.Status.Has(status.Carry))

	// 0xD0+0x90: two negatives summing positive, with carry out
	c = run(t, "A9 D0 69 90 00")
	assert.Equal(t, c.Accumulator, byte(0x60))
	assert.True(t, c.Status.Has(status.Overflow))
	assert.True(t, c.Status.Has(status.Carry))
}

func TestSbc(t *testing.T) {
	// SEC; LDA #$50; SBC #$10
	c := run(t, "38 A9 50 E9 10 00")
	assert.Equal(t, c.Accumulator, byte(0x40))
	assert.True(t, c.Status.Has(status.Carry), "no borrow")

	// borrow: 5 - 10 with carry set
	c = run(t, "38 A9 05 E9 0A 00")
	assert.Equal(t, c.Accumulator, byte(0xFB))
	assert.False(t, c.Status.Has(status.Carry))
	assert.True(t, c.Status.Has(status.Negative))
}

func TestDecimalFlagIsIgnored(t *testing.T) {
	// SED; LDA #$09; ADC #$01 -- a BCD 6502 would say 0x10
	c := run(t, "F8 A9 09 69 01 00")
	assert.Equal(t, c.Accumulator, byte(0x0A))
	assert.True(t, c.Status.Has(status.Decimal))
}

func TestCompare(t *testing.T) {
	for _, tt := range []struct {
		reg, m  byte
		c, z, n bool
	}{
		{0xA0, 0x15, true, false, true},
		{0x15, 0x15, true, true, false},
		{0x15, 0xA0, false, false, false},
		{0x00, 0x01, false, false, true},
	} {
		c := NewTest()
		c.Accumulator = tt.reg
		c.ProgramCounter = 0x0200
		c.Write(0x0200, tt.m)
		c.CMP(Immediate)
		assert.Equal(t, c.Status.Has(status.Carry), tt.c, "C for %02x vs %02x", tt.reg, tt.m)
		assert.Equal(t, c.Status.Has(status.Zero), tt.z, "Z for %02x vs %02x", tt.reg, tt.m)
		assert.Equal(t, c.Status.Has(status.Negative), tt.n, "N for %02x vs %02x", tt.reg, tt.m)
	}
}

func TestZeroPageIndexingWraps(t *testing.T) {
	c := NewTest()
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xFF)
	c.X = 0x06
	c.Y = 0x05
	assert.Equal(t, c.operandAddress(ZeroPageX), uint16(0x0005))
	assert.Equal(t, c.operandAddress(ZeroPageY), uint16(0x0004))
}

func TestIndirectXPointerWraps(t *testing.T) {
	c := NewTest()
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xFF)
	c.X = 0x00
	// the pointer's second byte wraps to $00, not $100
	c.Write(0x00FF, 0x34)
	c.Write(0x0000, 0x12)
	assert.Equal(t, c.operandAddress(IndirectX), uint16(0x1234))

	c.X = 0x01
	c.Write(0x0000, 0x78)
	c.Write(0x0001, 0x56)
	assert.Equal(t, c.operandAddress(IndirectX), uint16(0x5678))
}

func TestIndirectYAddsAfterDereference(t *testing.T) {
	c := NewTest()
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0x33)
	c.Write(0x0033, 0x00)
	c.Write(0x0034, 0x04)
	c.Y = 0x10
	assert.Equal(t, c.operandAddress(IndirectY), uint16(0x0410))

	// zero-page wrap of the pointer's second byte
	c.Write(0x0200, 0xFF)
	c.Write(0x00FF, 0x00)
	c.Write(0x0000, 0x02)
	c.Y = 0x01
	assert.Equal(t, c.operandAddress(IndirectY), uint16(0x0201))
}

func TestJmpIndirectBug(t *testing.T) {
	c := NewTest()
	c.Write(0x11FF, 0xCD)
	c.Write(0x1100, 0xAB)
	loadHex(c, "6C FF 11", 0x8000)
	c.Reset()

	c.IndirectBug = true
	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, c.ProgramCounter, uint16(0xABCD))

	c.Reset()
	c.IndirectBug = false
	_, err = c.Step()
	assert.NoError(t, err)
	want := uint16(0x00CD) | uint16(c.Read(0x1200))<<8
	assert.Equal(t, c.ProgramCounter, want)
}

func TestBranches(t *testing.T) {
	// LDA #$00; BEQ +2 (over LDA #$FF); BRK
	c := run(t, "A9 00 F0 02 A9 FF 00")
	assert.Equal(t, c.Accumulator, byte(0x00))
	assert.Equal(t, c.ProgramCounter, uint16(0x8007))

	// not taken: the skipped load executes
	c = run(t, "A9 01 F0 02 A9 FF 00")
	assert.Equal(t, c.Accumulator, byte(0xFF))

	// backwards: count X down from 3
	// LDX #$03; DEX; BNE -3; BRK
	c = run(t, "A2 03 CA D0 FD 00")
	assert.Equal(t, c.X, byte(0x00))
	assert.Equal(t, c.ProgramCounter, uint16(0x8006))
}

func TestJsrRts(t *testing.T) {
	// JSR $8006; LDA #$01; BRK; sub: LDX #$05; RTS
	c := run(t, "20 06 80 A9 01 00 A2 05 60")
	assert.Equal(t, c.X, byte(0x05))
	assert.Equal(t, c.Accumulator, byte(0x01))
	assert.Equal(t, c.Stack, byte(0xFD), "stack balanced")
	assert.Equal(t, c.ProgramCounter, uint16(0x8006))
}

func TestJsrPushesLastByteOfInstruction(t *testing.T) {
	c := NewTest()
	loadHex(c, "20 06 80", 0x8000)
	c.Reset()
	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, c.ProgramCounter, uint16(0x8006))
	assert.Equal(t, c.popWord(), uint16(0x8002))
}

func TestPhpMasksBreakBits(t *testing.T) {
	c := NewTest()
	c.Status = status.Register(0xFF)
	c.PHP(Implied)
	assert.Equal(t, c.Read(0x01FD), byte(0xEF), "B1 cleared in the snapshot")

	c.Status = 0
	c.PLP(Implied)
	assert.Equal(t, c.Status.Byte(), byte(0xEF&^status.Break1|status.Unused))
}

func TestPlpSetsUnused(t *testing.T) {
	c := NewTest()
	c.push(0x00)
	c.PLP(Implied)
	assert.Equal(t, c.Status.Byte(), byte(status.Unused))
}

func TestPhaPla(t *testing.T) {
	// LDA #$42; PHA; LDA #$00; PLA
	c := run(t, "A9 42 48 A9 00 68 00")
	assert.Equal(t, c.Accumulator, byte(0x42))
	assert.False(t, c.Status.Has(status.Zero))
	assert.Equal(t, c.Stack, byte(0xFD))
}

func TestRti(t *testing.T) {
	c := NewTest()
	c.pushWord(0x1234)
	c.push(0xFF) // status with every bit, B1 included
	c.RTI(Implied)
	assert.Equal(t, c.ProgramCounter, uint16(0x1234))
	assert.Equal(t, c.Status.Byte(), byte(0xFF&^status.Break1))
}

func TestShifts(t *testing.T) {
	// ASL A: carry out of bit 7
	c := run(t, "A9 B1 0A 00")
	assert.Equal(t, c.Accumulator, byte(0x62))
	assert.True(t, c.Status.Has(status.Carry))

	// LSR A: carry out of bit 0, N always clear
	c = run(t, "A9 01 4A 00")
	assert.Equal(t, c.Accumulator, byte(0x00))
	assert.True(t, c.Status.Has(status.Carry))
	assert.True(t, c.Status.Has(status.Zero))
	assert.False(t, c.Status.Has(status.Negative))

	// SEC; LDA #$0F; ROL A: carry rotates into bit 0
	c = run(t, "38 A9 0F 2A 00")
	assert.Equal(t, c.Accumulator, byte(0x1F))
	assert.False(t, c.Status.Has(status.Carry))

	// SEC; LDA #$0F; ROR A: carry rotates into bit 7
	c = run(t, "38 A9 0F 6A 00")
	assert.Equal(t, c.Accumulator, byte(0x87))
	assert.True(t, c.Status.Has(status.Carry))
}

func TestShiftOnMemory(t *testing.T) {
	c := NewTest()
	c.Write(0x0010, 0x80)
	// ASL $10
	loadHex(c, "06 10 00", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	assert.Equal(t, c.Read(0x0010), byte(0x00))
	assert.True(t, c.Status.Has(status.Carry))
	assert.True(t, c.Status.Has(status.Zero))
}

func TestBit(t *testing.T) {
	c := NewTest()
	c.Write(0x0010, 0b1101_1010)
	// LDA #$0F; BIT $10
	loadHex(c, "A9 0F 24 10 00", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	assert.Equal(t, c.Accumulator, byte(0x0F), "A untouched")
	assert.False(t, c.Status.Has(status.Zero))
	assert.True(t, c.Status.Has(status.Negative))
	assert.True(t, c.Status.Has(status.Overflow))

	// zero result sets Z
	c.Write(0x0010, 0b0011_0000)
	loadHex(c, "A9 0F 24 10 00", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	assert.True(t, c.Status.Has(status.Zero))
}

func TestIncDec(t *testing.T) {
	c := NewTest()
	c.Write(0x0010, 0xFF)
	// INC $10; DEC $11
	loadHex(c, "E6 10 C6 11 00", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	assert.Equal(t, c.Read(0x0010), byte(0x00))
	assert.Equal(t, c.Read(0x0011), byte(0xFF))
	assert.True(t, c.Status.Has(status.Negative), "from the DEC")
}

func TestStores(t *testing.T) {
	// LDA #$25; LDX #$35; LDY #$45; STA $15; STX $25; STY $35
	c := run(t, "A9 25 A2 35 A0 45 85 15 86 25 84 35 00")
	assert.Equal(t, c.Read(0x15), byte(0x25))
	assert.Equal(t, c.Read(0x25), byte(0x35))
	assert.Equal(t, c.Read(0x35), byte(0x45))
	assert.Equal(t, c.ProgramCounter, uint16(0x800D))
}

func TestTransfers(t *testing.T) {
	// LDA #$80; TAY; TAX; TXS; TSX keeps flags from TSX only
	c := run(t, "A9 80 A8 AA 9A BA 00")
	assert.Equal(t, c.Y, byte(0x80))
	assert.Equal(t, c.Stack, byte(0x80))
	assert.Equal(t, c.X, byte(0x80))
	assert.True(t, c.Status.Has(status.Negative))
}

func TestTxsLeavesFlagsAlone(t *testing.T) {
	c := NewTest()
	c.X = 0x00
	c.TXS(Implied)
	assert.False(t, c.Status.Has(status.Zero))
}

func TestUnknownOpcodeLogsAndContinues(t *testing.T) {
	// 0x02 is not in the table; execution picks up at the next byte
	c := run(t, "02 A9 05 00")
	assert.Equal(t, c.Accumulator, byte(0x05))
}

func TestUnknownOpcodeStrict(t *testing.T) {
	c := NewTest()
	loadHex(c, "02 A9 05 00", 0x8000)
	c.Reset()
	c.Strict = true
	assert.Error(t, c.Run())
	assert.Equal(t, c.ProgramCounter, uint16(0x8000), "counter stays on the bad byte")
}

func TestRunWithCallback(t *testing.T) {
	c := NewTest()
	loadHex(c, "A9 05 AA E8 00", 0x8000)
	c.Reset()

	var pcs []uint16
	assert.NoError(t, c.RunWithCallback(func(c *Cpu) {
		pcs = append(pcs, c.ProgramCounter)
	}))
	assert.Equal(t, pcs, []uint16{0x8000, 0x8002, 0x8003, 0x8004})
}

func TestLax(t *testing.T) {
	c := NewTest()
	c.Write(0x0010, 0x55)
	loadHex(c, "A7 10 00", 0x8000)
	c.Reset()
	assert.NoError(t, c.Run())
	assert.Equal(t, c.Accumulator, byte(0x55))
	assert.Equal(t, c.X, byte(0x55))
}

func TestSax(t *testing.T) {
	// LDA #$F0; LDX #$CC; SAX $10
	c := run(t, "A9 F0 A2 CC 87 10 00")
	assert.Equal(t, c.Read(0x0010), byte(0xC0))
	assert.Equal(t, c.Accumulator, byte(0xF0), "A untouched")
}

func TestSkbAndIgnDoNothingVisible(t *testing.T) {
	// SKB #$12; IGN $10; LDA #$01
	c := run(t, "80 12 04 10 A9 01 00")
	assert.Equal(t, c.Accumulator, byte(0x01))
	assert.Equal(t, c.ProgramCounter, uint16(0x8007))
}

func TestDcp(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0x69
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0x6A)
	c.DCP(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x69))
	assert.Equal(t, c.Status.Byte(), byte(0x27))
}

func TestIsc(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0xFF
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0x0B)
	c.ISC(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x0C))
	assert.Equal(t, c.Accumulator, byte(0xF2))
	assert.Equal(t, c.Status.Byte(), byte(0xA5))
}

func TestSlo(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0x0F
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0x0F)
	c.SLO(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x1E))
	assert.Equal(t, c.Accumulator, byte(0x1F))
	assert.Equal(t, c.Status.Byte(), byte(0x24))
}

func TestRla(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0x0F
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0x0F)
	c.RLA(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x1E))
	assert.Equal(t, c.Accumulator, byte(0x0E))
	assert.Equal(t, c.Status.Byte(), byte(0x24))
}

func TestSre(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0x0F
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0x0F)
	c.SRE(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x07))
	assert.Equal(t, c.Accumulator, byte(0x08))
	assert.Equal(t, c.Status.Byte(), byte(0x25))
}

func TestRra(t *testing.T) {
	c := NewTest()
	c.Accumulator = 0xB2
	c.Status = status.Register(0xE4)
	c.ProgramCounter = 0x0200
	c.Write(0x0200, 0xAB)
	c.Write(0x00AB, 0xA5)
	c.RRA(ZeroPage)
	assert.Equal(t, c.Read(0x00AB), byte(0x52))
	assert.Equal(t, c.Accumulator, byte(0x05))
	assert.Equal(t, c.Status.Byte(), byte(0x25))
}
