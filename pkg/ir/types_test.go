package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeBitWidths(t *testing.T) {
	tests := []struct {
		name     string
		datatype Type
		width    uint
	}{
		{"ground unsigned", NewUInt(8), 8},
		{"ground signed", NewSInt(3), 3},
		{"clock", ClockType{}, 1},
		{"vector of ground", NewVector(NewUInt(8), 4), 32},
		{"vector of vector", NewVector(NewVector(NewUInt(2), 3), 5), 30},
		{"bundle", NewBundle(NewField("a", NewUInt(4)), NewFlippedField("b", NewUInt(12))), 16},
		{"bundle of vectors", NewBundle(NewField("a", NewVector(NewUInt(8), 2)), NewField("b", Bool())), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.width, tt.datatype.BitWidth())
		})
	}
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "UInt<2>", NewUInt(2).String())
	assert.Equal(t, "SInt<7>", NewSInt(7).String())
	assert.Equal(t, "Clock", ClockType{}.String())
	assert.Equal(t, "UInt<8>[4]", NewVector(NewUInt(8), 4).String())
	assert.Equal(t, "{a : UInt<1>, flip b : UInt<2>}",
		NewBundle(NewField("a", Bool()), NewFlippedField("b", NewUInt(2))).String())
}

func TestBundleFieldLookup(t *testing.T) {
	bundle := NewBundle(NewField("en", Bool()), NewFlippedField("data", NewUInt(2)))
	//
	data, ok := bundle.Field("data")
	assert.True(t, ok)
	assert.True(t, data.Flip)
	assert.Equal(t, NewUInt(2), data.Type.(UIntType))
	//
	_, ok = bundle.Field("missing")
	assert.False(t, ok)
}
