//go:build bench

package txt2html

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// BenchmarkResolvePoolSize benchmarks pool size calculation.
func BenchmarkResolvePoolSize(b *testing.B) {
	workers := []int{0, 1, 2, 4, 8}

	for _, w := range workers {
		b.Run(workerName(w), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := ResolvePoolSize(w)
				_ = result
			}
		})
	}
}

func workerName(w int) string {
	if w == 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", w)
}

// BenchmarkConverterParallel benchmarks one Converter shared by goroutines,
// as the CLI worker pool uses it.
func BenchmarkConverterParallel(b *testing.B) {
	reg := NewRegistry()
	if err := reg.Register(StagePre, LinkifyHook, ImageHook); err != nil {
		b.Fatal(err)
	}
	conv := NewConverter(WithRegistry(reg))
	body := strings.Repeat("a < b & c\n  [1] http://example.com/\n./logo.png\n", 200)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := conv.Convert(io.Discard, Input{Source: strings.NewReader(body), Title: "bench"}); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
