package entropy_test

import (
	"fmt"

	"github.com/katalvlaran/isdsec/entropy"
)

// ExampleBinaryEntropy shows the maximum and a clamped endpoint.
func ExampleBinaryEntropy() {
	fmt.Printf("%.3f %.3f\n", entropy.BinaryEntropy(0.5), entropy.BinaryEntropy(0))
	// Output:
	// 1.000 0.000
}

// ExampleBinomialBig prints an exact coefficient.
func ExampleBinomialBig() {
	fmt.Println(entropy.BinomialBig(10, 3), entropy.BinomialBig(7, 2))
	// Output:
	// 120 21
}
