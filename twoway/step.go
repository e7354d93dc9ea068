package twoway

import "fmt"

// Kind identifies the outcome of one search step.
type Kind uint8

const (
	// Done means the cursor reached the opposite boundary.
	Done Kind = iota

	// Match means [Start, End) holds an occurrence of the needle.
	Match

	// Reject means no occurrence starts inside [Start, End).
	Reject
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Done:
		return "Done"
	case Match:
		return "Match"
	case Reject:
		return "Reject"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Step is the result of a single Next or NextBack call.
// Start and End are element offsets into the haystack.
type Step struct {
	Kind  Kind
	Start int
	End   int
}

// String formats the step as Match(a, b), Reject(a, b) or Done.
func (s Step) String() string {
	if s.Kind == Done {
		return "Done"
	}
	return fmt.Sprintf("%s(%d, %d)", s.Kind, s.Start, s.End)
}

func matched(start, end int) Step  { return Step{Kind: Match, Start: start, End: end} }
func rejected(start, end int) Step { return Step{Kind: Reject, Start: start, End: end} }
