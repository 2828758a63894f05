package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	tests := []struct {
		name       string
		s          Slice
		descending bool
		want       bool
	}{
		{"nil_asc", nil, false, true},
		{"empty_asc", Slice{}, false, true},
		{"empty_desc", Slice{}, true, true},
		{"single", Ints(7), false, true},
		{"asc_sorted", Ints(1, 2, 3, 4, 5), false, true},
		{"asc_duplicates", Ints(1, 1, 2, 2), false, true},
		{"asc_unsorted", Ints(2, 4, 1, 3, 5), false, false},
		{"asc_descending_input", Ints(5, 4, 3, 2, 1), false, false},
		{"desc_sorted", Ints(5, 4, 3, 2, 1), true, true},
		{"desc_duplicates", Ints(3, 3, 1), true, true},
		{"desc_unsorted", Ints(1, 2, 3), true, false},
		{"text_asc", Texts("a", "b", "c"), false, true},
		{"text_unsorted", Texts("b", "a"), false, false},
		{"text_desc", Texts("c", "b", "a"), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sorted(tt.s, tt.descending)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Sortedness must agree with the pairwise comparison predicate.
func TestSortedMatchesPairwiseCompare(t *testing.T) {
	slices := []Slice{
		Ints(1, 2, 3), Ints(3, 1, 2), Ints(2, 2, 2),
		Texts("x", "y"), Texts("y", "x"), Ints(1),
	}
	for _, s := range slices {
		for _, descending := range []bool{false, true} {
			want := true
			for i := 0; i+1 < len(s); i++ {
				c := MustCompare(s[i], s[i+1])
				if (!descending && c > 0) || (descending && c < 0) {
					want = false
					break
				}
			}
			got, err := Sorted(s, descending)
			require.NoError(t, err)
			assert.Equalf(t, want, got, "slice %v descending=%v", s, descending)
		}
	}
}

func TestSortedMixedKinds(t *testing.T) {
	_, err := Sorted(Slice{Int(1), Text("a")}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedComparison))
}

func TestSortedAscDefaultsToAscending(t *testing.T) {
	got, err := SortedAsc(Ints(1, 2, 3))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = SortedAsc(Ints(3, 2, 1))
	require.NoError(t, err)
	assert.False(t, got)
}
