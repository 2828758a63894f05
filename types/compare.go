package types

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// ErrUnsupportedComparison reports a comparison between elements whose kinds
// do not match.
var ErrUnsupportedComparison = errors.New("unsupported comparison")

// Compare returns a negative value when a < b, zero when a == b and a
// positive value when a > b. It is defined only when both elements are of
// the same kind.
func Compare(a, b Element) (int, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return utils.IntComparator(a.i, b.i), nil
	case a.kind == KindText && b.kind == KindText:
		return utils.StringComparator(a.s, b.s), nil
	}
	return 0, fmt.Errorf("%w: %s vs %s", ErrUnsupportedComparison, a.kind, b.kind)
}

// MustCompare is Compare for callers that guarantee matching kinds.
func MustCompare(a, b Element) int {
	c, err := Compare(a, b)
	if err != nil {
		panic(err)
	}
	return c
}
