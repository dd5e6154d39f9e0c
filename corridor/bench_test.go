package corridor_test

import (
	"testing"

	"github.com/katalvlaran/pixmaze/corridor"
	"github.com/katalvlaran/pixmaze/pixel"
)

// comb returns an n×n maze: an open top corridor with vertical teeth every
// other column reaching the bottom row. n must be odd.
func comb(n int) pixel.Buffer {
	pix := make([]byte, n*n)
	for x := 1; x < n-1; x++ {
		pix[n+x] = pixel.Open
	}
	for x := 1; x < n-1; x += 2 {
		for y := 2; y < n; y++ {
			pix[y*n+x] = pixel.Open
		}
	}
	pix[1] = pixel.Open
	b, _ := pixel.New(pix, n, n, pixel.Greyscale)
	return b
}

// BenchmarkBuild measures corridor compression on a 501×501 comb.
func BenchmarkBuild(b *testing.B) {
	buf := comb(501)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = corridor.Build(buf)
	}
}

// BenchmarkSolve measures Dijkstra over the compressed comb.
func BenchmarkSolve(b *testing.B) {
	m, err := corridor.Build(comb(501))
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Solve()
	}
}
