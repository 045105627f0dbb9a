package slotvec

import (
	"fmt"
	"testing"

	"github.com/hupe1980/slotvec/testutil"
)

type benchRecord struct {
	ID    uint64
	Score float32
	Flags [4]uint8
}

func benchConfig() Config[benchRecord] {
	return Config[benchRecord]{
		Equal:   func(elem, key benchRecord) bool { return elem.ID == key.ID },
		Destroy: func(benchRecord) {},
		Print:   func(benchRecord) {},
	}
}

func BenchmarkVectorPush(b *testing.B) {
	v, err := New(benchConfig())
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Push(benchRecord{ID: uint64(i)}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVectorFind(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			v, err := New(benchConfig(), WithCapacity(n))
			if err != nil {
				b.Fatal(err)
			}
			defer v.Close()

			rng := testutil.NewRNG(1)
			for i := range n {
				if _, err := v.Push(benchRecord{ID: uint64(i)}); err != nil {
					b.Fatal(err)
				}
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := v.Find(benchRecord{ID: uint64(rng.Intn(n))}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
