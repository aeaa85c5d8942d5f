package search

import (
	"fmt"
	"testing"

	"github.com/hupe1980/qmcgo/discrepancy"
)

func BenchmarkSearcher_Exhaust(b *testing.B) {
	const n = 64

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			kern, err := discrepancy.NewShift1Lattice(n, 2)
			if err != nil {
				b.Fatal(err)
			}

			s, err := New(kern, false, WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()

			var sink float64
			b.ResetTimer()
			for b.Loop() {
				v, err := s.Exhaust(2)
				if err != nil {
					b.Fatal(err)
				}
				sink = v
			}
			_ = sink
		})
	}
}

func BenchmarkKorobov_Exhaust(b *testing.B) {
	const s = 3

	for _, n := range []int{256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			kern, err := discrepancy.NewShift1Lattice(n, s)
			if err != nil {
				b.Fatal(err)
			}

			k, err := NewKorobov(kern, false)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()

			var sink float64
			b.ResetTimer()
			for b.Loop() {
				v, err := k.ExhaustCoprime(s)
				if err != nil {
					b.Fatal(err)
				}
				sink = v
			}
			_ = sink
		})
	}
}

func BenchmarkCBC_ExhaustCoprime(b *testing.B) {
	const (
		n = 256
		s = 5
	)

	kern, err := discrepancy.NewShift1Lattice(n, s)
	if err != nil {
		b.Fatal(err)
	}

	c, err := NewCBC(kern, false)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	var sink float64
	b.ResetTimer()
	for b.Loop() {
		v, err := c.ExhaustCoprime(s)
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
	_ = sink
}
