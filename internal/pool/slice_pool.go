// Package pool provides pooled working arrays for the tail-point scan.
package pool

import "sync"

// MaxPooledFloat64Cap is the largest capacity returned to the pool.
// Larger slices are dropped so a single huge profile does not pin memory.
const MaxPooledFloat64Cap = 1 << 16

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has length size. Its contents are unspecified; callers
// overwrite every element before reading. If the pooled slice has insufficient
// capacity, a new slice is allocated.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	quadV, release := pool.GetFloat64Slice(len(p.Phi))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > MaxPooledFloat64Cap {
			return
		}
		float64SlicePool.Put(ptr)
	}
}
