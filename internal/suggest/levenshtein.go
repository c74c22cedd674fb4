package suggest

import "strings"

// Distance computes the Levenshtein edit distance between a and b with unit
// cost for insertion, deletion and substitution. Comparison is
// case-insensitive. Two rows of the DP matrix are kept, so space is O(len(b)).
func Distance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(
				prev[j-1]+1, // substitution
				curr[j-1]+1, // insertion
				prev[j]+1,   // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
