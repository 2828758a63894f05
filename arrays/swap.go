// Package arrays holds the array manipulation primitives a divide-and-conquer
// sort is built from: swap, cut, reverse, generation and rendering.
package arrays

import (
	"github.com/kabu1204/go-sortutil/assert"
	"github.com/kabu1204/go-sortutil/types"
)

// Swap exchanges the elements at indices a and b in place.
func Swap(s types.Slice, a, b int) {
	assert.NotEmpty(s)
	assert.InBounds(s, a)
	assert.InBounds(s, b)

	old := s[a]
	s[a], s[b] = s[b], s[a]

	// Index b must now hold the previous a value.
	assert.IndexValue(s, b, old)
}
