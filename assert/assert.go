// Package assert is the fail-fast contract layer guarding the mutating
// array operations. A failed check panics with *Violation; it is not meant
// to be recovered and retried.
package assert

import (
	"fmt"
	"strings"

	"github.com/kabu1204/go-sortutil/types"
)

// Violation carries the description of a failed pre- or postcondition.
type Violation struct {
	msg string
}

func (v *Violation) Error() string { return v.msg }

// That panics with a Violation when ok is false.
func That(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(&Violation{msg: fmt.Sprintf(format, args...)})
	}
}

func NonNil(v interface{}) {
	That(v != nil, "element is nil")
}

// NotBlank fails when the string is empty or whitespace only.
func NotBlank(s string) {
	That(strings.TrimSpace(s) != "", "string is blank or empty")
}

// NotEmpty fails when the slice is nil or has no elements.
func NotEmpty(s types.Slice) {
	That(s != nil, "array is nil")
	That(len(s) > 0, "array is empty")
}

// InBounds fails unless 0 <= i < len(s).
func InBounds(s types.Slice, i int) {
	That(i >= 0 && i < len(s), "index [%d] out of bounds for array of %d element(s)", i, len(s))
}

// IndexValue fails unless the element at index i equals expected.
func IndexValue(s types.Slice, i int, expected types.Element) {
	That(s[i].Equal(expected), "element at index [%d] did not match expected value (%s), received %s instead", i, expected, s[i])
}

// Identical fails unless a and b are present, of equal length and pairwise
// equal. The first mismatching index is reported.
func Identical(a, b types.Slice) {
	That(a != nil, "first array is nil")
	That(b != nil, "second array is nil")
	That(len(a) == len(b), "arrays of different lengths (%d vs %d)", len(a), len(b))
	for i := range a {
		That(a[i].Equal(b[i]), "elements differ at index [%d] (a[%d] == %s, b[%d] == %s)", i, i, a[i], i, b[i])
	}
}

// Sorted fails unless s is ordered in the given direction. Mixed element
// kinds make sortedness undefined and fail as well.
func Sorted(s types.Slice, descending bool) {
	ok, err := types.Sorted(s, descending)
	That(err == nil, "sortedness undefined: %v", err)
	That(ok, "array is not sorted")
}
