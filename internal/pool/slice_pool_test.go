package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with requested length", func(t *testing.T) {
		slice, release := GetFloat64Slice(200)
		defer release()

		require.Len(t, slice, 200)
		require.GreaterOrEqual(t, cap(slice), 200)
	})

	t.Run("grows when pooled capacity is insufficient", func(t *testing.T) {
		_, release := GetFloat64Slice(4)
		release()

		slice, release := GetFloat64Slice(4096)
		defer release()
		require.Len(t, slice, 4096)
	})

	t.Run("zero length", func(t *testing.T) {
		slice, release := GetFloat64Slice(0)
		defer release()
		require.Empty(t, slice)
	})

	t.Run("oversized slices are not retained", func(t *testing.T) {
		slice, release := GetFloat64Slice(MaxPooledFloat64Cap + 1)
		require.Len(t, slice, MaxPooledFloat64Cap+1)
		require.NotPanics(t, release)
	})

	t.Run("slices are writable after reuse", func(t *testing.T) {
		first, release := GetFloat64Slice(8)
		for i := range first {
			first[i] = float64(i)
		}
		release()

		second, release := GetFloat64Slice(8)
		defer release()
		for i := range second {
			second[i] = -1
		}
		require.Equal(t, -1.0, second[7])
	})
}

func BenchmarkGetFloat64Slice(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		s, release := GetFloat64Slice(1000)
		s[0] = 1
		release()
	}
}
