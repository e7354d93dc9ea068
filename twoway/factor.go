package twoway

import "golang.org/x/exp/constraints"

// maximalSuffix computes the maximal suffix of arr under one lexical order.
//
// The maximal suffix gives a candidate critical factorization (u, v) of arr.
// It returns (i, p) where i is the start of v and p is the period of v.
// orderGreater selects '>' instead of '<'; both orders must be computed and
// the one with the larger i is a critical factorization.
//
// For long period needles the returned period is a lower bound only.
func maximalSuffix[E constraints.Ordered](arr []E, orderGreater bool) (int, int) {
	left := 0   // i
	right := 1  // j
	offset := 0 // k, 0-based
	period := 1 // p

	for right+offset < len(arr) {
		a := arr[right+offset]
		b := arr[left+offset]
		switch {
		case (a < b && !orderGreater) || (a > b && orderGreater):
			// Suffix is smaller, period is the whole prefix so far.
			right += offset + 1
			offset = 0
			period = right - left
		case a == b:
			// Advance through a repetition of the current period.
			if offset+1 == period {
				right += offset + 1
				offset = 0
			} else {
				offset++
			}
		default:
			// Suffix is larger, start over from here.
			left = right
			right++
			offset = 0
			period = 1
		}
	}
	return left, period
}

// reverseMaximalSuffix computes the maximal suffix of the reverse of arr.
//
// It returns i, the start of v' counted from the back, and stops early once
// a period of knownPeriod is reached.
func reverseMaximalSuffix[E constraints.Ordered](arr []E, knownPeriod int, orderGreater bool) int {
	left := 0
	right := 1
	offset := 0
	period := 1
	n := len(arr)

	for right+offset < n {
		a := arr[n-(1+right+offset)]
		b := arr[n-(1+left+offset)]
		switch {
		case (a < b && !orderGreater) || (a > b && orderGreater):
			right += offset + 1
			offset = 0
			period = right - left
		case a == b:
			if offset+1 == period {
				right += offset + 1
				offset = 0
			} else {
				offset++
			}
		default:
			left = right
			right++
			offset = 0
			period = 1
		}
		if period == knownPeriod {
			break
		}
	}
	return left
}
