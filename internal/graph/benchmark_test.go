package graph_test

import (
	"fmt"
	"testing"

	"github.com/gradix-ml/gradix/internal/graph"
)

// buildChain constructs x + x² + x³ + ... with shared powers, depth terms.
func buildChain(depth int) (*graph.Node, *graph.Node) {
	x := graph.Leaf(1.0001)
	sum := x
	term := x
	for i := 0; i < depth; i++ {
		term = graph.Mul(term, x)
		sum = graph.Add(sum, term)
	}
	return sum, x
}

func BenchmarkBuildGraph(b *testing.B) {
	for _, depth := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buildChain(depth)
			}
		})
	}
}

func BenchmarkDifferentiate(b *testing.B) {
	for _, depth := range []int{10, 100, 1000} {
		out, _ := buildChain(depth)
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := graph.Differentiate(out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDifferentiate_Diamond(b *testing.B) {
	x := graph.Leaf(1)
	y := x
	for i := 0; i < 64; i++ {
		y = graph.Mul(y, y)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := graph.Differentiate(y); err != nil {
			b.Fatal(err)
		}
	}
}
