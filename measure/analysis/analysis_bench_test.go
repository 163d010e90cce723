package analysis

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-fx/internal/testutil"
)

func BenchmarkLevels(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		signal := testutil.Sine(1000, 48000, 16000, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 2))

			for range b.N {
				Levels(signal)
			}
		})
	}
}

func BenchmarkDominantFrequency(b *testing.B) {
	for _, n := range []int{1024, 8192} {
		signal := testutil.Sine(1000, 48000, 16000, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := DominantFrequency(signal, 48000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
