package osstr_test

import (
	"fmt"

	"github.com/coregx/pattern"
	"github.com/coregx/pattern/osstr"
)

// ExampleRune demonstrates splitting an OS string on a character.
func ExampleRune() {
	s := osstr.FromString("hello")
	for piece := range pattern.Split(osstr.Haystack(s), osstr.Rune('l')) {
		fmt.Printf("%q\n", string(piece))
	}
	// Output:
	// "he"
	// ""
	// "o"
}

// ExampleFromWide demonstrates an unpaired surrogate surviving the round
// trip through WTF-8.
func ExampleFromWide() {
	s := osstr.FromWide([]uint16{'a', 0xD800, 'b'})

	fmt.Println(len(s))
	fmt.Println(s.Wide())
	fmt.Println(s.Lossy())
	// Output:
	// 5
	// [97 55296 98]
	// a�b
}
