package fint8

import (
	"fmt"
	"math/bits"
)

// FloatingInt8 is an 8-bit floating point number that approximates a
// non-negative integer.
//
// This encoding format encodes integers in the range [0, 516095] with 8 bits
// and a relative error of at most 1/32 for values >= 32.
//
// The shift is stored in bits 7..4 and the mantissa in bits 3..0, so ordering
// the bytes also orders the decoded values. The decoded value is
//
//	mantissa                        if shift == 0
//	(16 + mantissa) << (shift - 1)  otherwise
//
// mantissa has range [0, 2^4), shift has range [0, 2^4). A nonzero shift adds
// an implicit leading one to the mantissa, the same way IEEE 754 normal
// numbers do.
type FloatingInt8 uint8

const (
	shiftBits    = 4
	mantissaBits = 4
	mantissaMask = 1<<mantissaBits - 1
	shiftMask    = 1<<shiftBits - 1

	// hiddenBit is the implicit leading one of a normalized mantissa.
	hiddenBit = 1 << mantissaBits
)

const (
	// Max is the largest value that Encode accepts without saturating. It
	// is larger than MaxDecoded because values up to half a bucket above
	// MaxDecoded round down into the last bucket.
	Max = 31<<14 | (1<<13 - 1)

	// MaxDecoded is the largest value a FloatingInt8 decodes to.
	MaxDecoded = (hiddenBit + mantissaMask) << (shiftMask - 1)

	// Saturated is the encoding returned for inputs larger than Max.
	Saturated FloatingInt8 = 0xFF
)

// New assembles a FloatingInt8 from its fields. Only the low four bits of
// each argument are used.
func New(shift, mantissa uint8) FloatingInt8 {
	return FloatingInt8((shift&shiftMask)<<mantissaBits | mantissa&mantissaMask)
}

// Shift returns the exponent field.
func (f FloatingInt8) Shift() uint8 {
	return uint8(f>>mantissaBits) & shiftMask
}

// Mantissa returns the mantissa field without the implicit leading one.
func (f FloatingInt8) Mantissa() uint8 {
	return uint8(f) & mantissaMask
}

func (f FloatingInt8) Uint64() uint64 {
	return Decode(f)
}

func (f FloatingInt8) String() string {
	return fmt.Sprintf("sh:%d m:%d", f.Shift(), f.Mantissa())
}

// Encode rounds v to the nearest FloatingInt8, ties rounding up. The boolean
// reports whether v was in range; if v > Max the result is Saturated and the
// boolean is false.
//
// Values below 32 are encoded exactly.
func Encode(v uint64) (FloatingInt8, bool) {
	if v > Max {
		return Saturated, false
	}
	if v < 2*hiddenBit {
		// [0, 16) is stored as the mantissa with shift 0, [16, 32) lands on
		// shift 1 because bit 4 doubles as the hidden bit.
		return FloatingInt8(v), true
	}

	// index of the highest set bit, in [5, 19] given v <= Max
	i := bits.Len64(v) - 1

	// keep the hidden bit, the mantissa and one rounding bit
	window := (v >> (i - mantissaBits - 1)) & (1<<(mantissaBits+2) - 1)
	if window&1 == 1 {
		window++
	}
	if window&(1<<(mantissaBits+2)) != 0 {
		// the mantissa overflowed into the next bucket
		i++
	}
	mantissa := uint8(window>>1) & mantissaMask
	return New(uint8(i-3), mantissa), true
}

// Decode returns the value f represents. Every byte is a valid encoding.
func Decode(f FloatingInt8) uint64 {
	shift := f.Shift()
	mantissa := uint64(f.Mantissa())
	if shift == 0 {
		return mantissa
	}
	return (hiddenBit + mantissa) << (shift - 1)
}

// Table returns the decoded value of every FloatingInt8, indexed by its byte
// value.
func Table() [256]uint64 {
	var t [256]uint64
	for i := range t {
		t[i] = Decode(FloatingInt8(i))
	}
	return t
}
