package types

// Sorted reports whether s is ordered in the given direction. Empty and
// single-element slices are sorted. The scan stops at the first adjacent
// pair violating the order and does not report its position.
func Sorted(s Slice, descending bool) (bool, error) {
	for i := 0; i+1 < len(s); i++ {
		c, err := Compare(s[i], s[i+1])
		if err != nil {
			return false, err
		}
		if descending && c < 0 {
			// sorted(DESC) requires s[i] >= s[i+1]
			return false, nil
		}
		if !descending && c > 0 {
			// sorted(ASC) requires s[i] <= s[i+1]
			return false, nil
		}
	}
	return true, nil
}

// SortedAsc is Sorted with the default ascending direction.
func SortedAsc(s Slice) (bool, error) { return Sorted(s, false) }
