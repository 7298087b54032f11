package encoding

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

func TestSizeVarint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		// spread lengths across every varint size
		n := rng.Uint64() >> rng.Intn(64)

		x := len(binary.AppendUvarint([]byte{}, n))
		y := SizeVarint(n)

		if x != y {
			t.Fatalf("Mismatch for %d: binary.AppendUvarint size = %d, SizeVarint size = %d", n, x, y)
		}
	}
}
