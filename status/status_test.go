package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetHas(t *testing.T) {
	var r Register

	r.Set(Carry, true)
	assert.Equal(t, r.Byte(), byte(0b0000_0001))
	assert.True(t, r.Has(Carry))

	r.Set(Negative, true)
	assert.Equal(t, r.Byte(), byte(0b1000_0001))

	r.Set(Carry, false)
	assert.Equal(t, r.Byte(), byte(0b1000_0000))
	assert.False(t, r.Has(Carry))
	assert.True(t, r.Has(Negative))

	// setting an already-set flag is a noop
	r.Set(Negative, true)
	assert.Equal(t, r.Byte(), byte(0b1000_0000))
}

func TestResetValue(t *testing.T) {
	r := Register(ResetValue)
	assert.Equal(t, r.Byte(), byte(0x24))
	assert.True(t, r.Has(Interrupt))
	assert.True(t, r.Has(Unused))
	assert.False(t, r.Has(Carry))
	assert.False(t, r.Has(Decimal))
}

func TestZeroNegative(t *testing.T) {
	for _, tt := range []struct {
		v    byte
		z, n bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x7F, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	} {
		var r Register
		r.SetZeroNegative(tt.v)
		assert.Equal(t, r.Has(Zero), tt.z, "Z for %#02x", tt.v)
		assert.Equal(t, r.Has(Negative), tt.n, "N for %#02x", tt.v)
	}

	// both flags must be cleared again by a later result
	var r Register
	r.SetZeroNegative(0x00)
	r.SetZeroNegative(0x01)
	assert.Equal(t, r.Byte(), byte(0))
}

func TestOverflowBit(t *testing.T) {
	var r Register
	r.SetOverflowBit(0b0100_0000)
	assert.True(t, r.Has(Overflow))
	r.SetOverflowBit(0b1011_1111)
	assert.False(t, r.Has(Overflow))
}
