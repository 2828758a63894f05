package arrays

import (
	"github.com/kabu1204/go-sortutil/assert"
	"github.com/kabu1204/go-sortutil/types"
)

// Cut splits s into two freshly-allocated contiguous halves whose
// concatenation reconstructs the input. The left half receives
// floor(len/2) elements.
func Cut(s types.Slice) (left, right types.Slice) {
	assert.NotEmpty(s)
	assert.That(len(s) > 1, "array of length 1 cannot be split")

	mid := len(s) / 2
	left = append(types.Slice(nil), s[:mid]...)
	right = append(types.Slice(nil), s[mid:]...)
	return left, right
}
