package distgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/syncdist/distgraph"
)

func BenchmarkBuild(b *testing.B) {
	trs := fleet(b, 150)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distgraph.Build(context.Background(), trs)
	}
}
