package gvbound_test

import (
	"fmt"

	"github.com/katalvlaran/isdsec/gvbound"
)

func ExampleDistance() {
	d, err := gvbound.Distance(10, 3)
	fmt.Println(d, err)
	// Output:
	// 1 <nil>
}
