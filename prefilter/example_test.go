package prefilter_test

import (
	"fmt"

	"github.com/coregx/pattern/prefilter"
)

// ExampleByteSet demonstrates probing a needle fingerprint.
func ExampleByteSet() {
	set := prefilter.NewByteSet([]byte("needle"))

	fmt.Println(set.Contains('e'))
	fmt.Println(set.Contains('z'))
	// Output:
	// true
	// false
}
