package pattern_test

import (
	"fmt"
	"unicode"

	"github.com/coregx/pattern"
	"golang.org/x/text/runes"
)

// ExampleFind demonstrates finding the first and last match.
func ExampleFind() {
	h := pattern.Text("abbcbbd")
	i, _ := pattern.Find(h, pattern.Substr("bb"))
	j, _ := pattern.RFind(h, pattern.Substr("bb"))
	fmt.Println(i, j)
	// Output: 1 4
}

// ExampleSearcher demonstrates driving a searcher by hand.
func ExampleSearcher() {
	h := pattern.Text("abbcbbd")
	s := pattern.Substr("bb").Searcher(h)
	for {
		a, b, ok := s.NextMatch()
		if !ok {
			break
		}
		fmt.Printf("[%d, %d) %q\n", h.Offset(a), h.Offset(b), h.Range(a, b))
	}
	// Output:
	// [1, 3) "bb"
	// [4, 6) "bb"
}

// ExampleSplit demonstrates splitting a string on a substring.
func ExampleSplit() {
	for piece := range pattern.Split(pattern.Text("hangman"), pattern.Substr("an")) {
		fmt.Printf("%q ", piece)
	}
	fmt.Println()
	// Output: "h" "gm" ""
}

// ExampleRSplitN demonstrates splitting from the back.
func ExampleRSplitN() {
	for piece := range pattern.RSplitN(pattern.Text("a/b/c"), pattern.Rune('/'), 2) {
		fmt.Println(piece)
	}
	// Output:
	// c
	// a/b
}

// ExampleTrim demonstrates trimming runs of a rune set.
func ExampleTrim() {
	p := pattern.RuneSet(runes.In(unicode.White_Space))
	fmt.Printf("%q\n", pattern.Trim(pattern.Text("\t hello \n"), p))
	// Output: "hello"
}

// ExampleSeq demonstrates searching a typed slice.
func ExampleSeq() {
	h := pattern.Slice([]uint32{1, 2, 2, 3, 2, 2, 4})
	for i, m := range pattern.MatchIndices(h, pattern.Seq([]uint32{2, 2})) {
		fmt.Println(i, m)
	}
	// Output:
	// 1 [2 2]
	// 4 [2 2]
}

// ExampleAnyOf demonstrates searching for several needles at once.
func ExampleAnyOf() {
	p := pattern.MustAnyOf("cat", "dog")
	fmt.Println(pattern.Count(pattern.Text("cat, dog, bird, cat"), p))
	// Output: 3
}

// ExampleMatches demonstrates the direction dependence of overlapping
// needles.
func ExampleMatches() {
	h := pattern.Text("aaa")
	for i := range pattern.MatchIndices(h, pattern.Substr("aa")) {
		fmt.Println("forward", i)
	}
	for i := range pattern.RMatchIndices(h, pattern.Substr("aa")) {
		fmt.Println("backward", i)
	}
	// Output:
	// forward 0
	// backward 1
}
