package filter

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-img/internal/testutil"
)

func BenchmarkFilters(b *testing.B) {
	in := testutil.DeterministicNoise(1, 255, 512, 512)

	for _, name := range Names() {
		e, _ := Lookup(name)
		b.Run(fmt.Sprintf("%s/512x512", name), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = e.Apply(in, e.DefaultParam)
			}
		})
	}
}
