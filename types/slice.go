package types

// Slice is an ordered sequence of elements. Operations expect every element
// to be of the same kind; mixed slices surface ErrUnsupportedComparison.
type Slice []Element

func Ints(vs ...int) Slice {
	s := make(Slice, len(vs))
	for i, v := range vs {
		s[i] = Int(v)
	}
	return s
}

func Texts(vs ...string) Slice {
	s := make(Slice, len(vs))
	for i, v := range vs {
		s[i] = Text(v)
	}
	return s
}

func (s Slice) Equal(o Slice) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (s Slice) Clone() Slice {
	if s == nil {
		return nil
	}
	return append(Slice(nil), s...)
}

// Array pairs a slice with the comparator ordering it. Len/Swap/Less are
// the primitives a sorting algorithm consumes.
type Array struct {
	Data Slice
	Cmp  Comparator
}

// NewArray wraps data with the natural same-kind ordering.
func NewArray(data Slice) *Array { return &Array{Data: data, Cmp: MustCompare} }

func (s *Array) Len() int           { return len(s.Data) }
func (s *Array) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }
func (s *Array) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }
