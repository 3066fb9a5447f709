package entropy_test

import (
	"testing"

	"github.com/katalvlaran/isdsec/entropy"
)

// sink prevents the compiler from discarding benchmark results.
var sink float64

func BenchmarkBinaryEntropy(b *testing.B) {
	x := 0.11
	for i := 0; i < b.N; i++ {
		sink += entropy.BinaryEntropy(x)
	}
}

func BenchmarkBinomialBig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = entropy.BinomialBig(2000, 220)
	}
}
