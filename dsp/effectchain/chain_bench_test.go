package effectchain

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

func BenchmarkChainProcessInPlace(b *testing.B) {
	graph := buildGraphJSON(
		graphNode{ID: "drive", Type: TypeDistortion},
		graphNode{ID: "trem", Type: TypeTremolo},
		graphNode{ID: "echo", Type: TypeDelay, Params: map[string]any{"durationMs": 120}},
		graphNode{ID: "comp", Type: TypeCompressor},
	)

	c := New(DefaultContext(), nil)
	if err := c.LoadGraph(graph); err != nil {
		b.Fatal(err)
	}

	for _, n := range []int{64, 512, 4096} {
		src := testutil.Noise(2, 20000, n)
		buf := make([]core.Sample, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 2))

			for range b.N {
				copy(buf, src)
				c.ProcessInPlace(buf)
			}
		})
	}
}
