// SPDX-License-Identifier: MIT
package components_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/arenagraph/builder"
	"github.com/katalvlaran/arenagraph/components"
	"github.com/katalvlaran/arenagraph/core"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	el, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithShuffle()},
		builder.Path(4000), builder.Cycle(3000), builder.Star(2000), builder.Isolated(1000),
	)
	if err != nil {
		b.Fatal(err)
	}
	g, err := el.Graph()
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkCount(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.Count(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountUnionFind(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.CountUnionFind(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountParallel(b *testing.B) {
	g := benchGraph(b)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.CountParallel(ctx, g, 4); err != nil {
			b.Fatal(err)
		}
	}
}
