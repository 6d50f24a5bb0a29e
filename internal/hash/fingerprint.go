// Package hash computes identities for sampled profiles.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Floats computes the xxHash64 of the IEEE-754 bit patterns of every slice in
// order. Slice boundaries are mixed in, so {a, b} and {a}, {b} hash differently.
func Floats(slices ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range slices {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
