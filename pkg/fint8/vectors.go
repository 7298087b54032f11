package fint8

import "fmt"

// Vector is a reference encoding: Encode(Input) must return (Encoded, Exact)
// and Decode(Encoded) must return Decoded.
type Vector struct {
	Input   uint64
	Encoded FloatingInt8
	Decoded uint64
	Exact   bool
}

// Check runs the vector through the codec and describes the first mismatch.
func (v Vector) Check() error {
	enc, exact := Encode(v.Input)
	if enc != v.Encoded {
		return fmt.Errorf("Encode(%d) = 0x%02x, expected 0x%02x", v.Input, uint8(enc), uint8(v.Encoded))
	}
	if exact != v.Exact {
		return fmt.Errorf("Encode(%d) exact = %t, expected %t", v.Input, exact, v.Exact)
	}
	if dec := Decode(enc); dec != v.Decoded {
		return fmt.Errorf("Decode(0x%02x) = %d, expected %d", uint8(enc), dec, v.Decoded)
	}
	return nil
}

// Vectors covers the exact range, rounding down, rounding up across a
// bucket boundary, the top bucket and saturation.
var Vectors = []Vector{
	{0, 0x00, 0, true},
	{5, 0x05, 5, true},
	{16, 0x10, 16, true},
	{30, 0x1e, 30, true},
	{32, 0x20, 32, true},
	{33, 0x21, 34, true},
	{40, 0x24, 40, true},
	{41, 0x25, 42, true},
	{80, 0x34, 80, true},
	{85, 0x35, 84, true},
	{86, 0x36, 88, true},
	{95, 0x38, 96, true},
	{100, 0x39, 100, true},
	{187, 0x47, 184, true},
	{188, 0x48, 192, true},
	{252, 0x50, 256, true},
	{687, 0x65, 672, true},
	{688, 0x66, 704, true},
	{704, 0x66, 704, true},
	{750, 0x67, 736, true},
	{1024, 0x70, 1024, true},
	{1055, 0x70, 1024, true},
	{1059, 0x71, 1088, true},
	{1472, 0x77, 1472, true},
	{1504, 0x78, 1536, true},
	{3967, 0x8f, 3968, true},
	{4031, 0x8f, 3968, true},
	{6400, 0x99, 6400, true},
	{10200, 0xa4, 10240, true},
	{10700, 0xa5, 10752, true},
	{24100, 0xb8, 24576, true},
	{47120, 0xc7, 47104, true},
	{48144, 0xc8, 49152, true},
	{64511, 0xcf, 63488, true},
	{64512, 0xd0, 65536, true},
	{65408, 0xd0, 65536, true},
	{88000, 0xd5, 86016, true},
	{88120, 0xd6, 90112, true},
	{120000, 0xdd, 118784, true},
	{120831, 0xdd, 118784, true},
	{120832, 0xde, 122880, true},
	{333333, 0xf4, 327680, true},
	{335871, 0xf4, 327680, true},
	{335872, 0xf5, 344064, true},
	{425985, 0xfa, 425984, true},
	{482345, 0xfd, 475136, true},
	{507904, 0xff, 507904, true},
	{507905, 0xff, 507904, true},
	{516095, 0xff, 507904, true},
	{516096, 0xff, 507904, false},
	{0xffffffff, 0xff, 507904, false},
}
