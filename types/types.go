package types

import "strconv"

// Kind enumerates the closed set of orderable element kinds.
type Kind int

const (
	KindInt Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Element is a tagged variant over the supported kinds. The zero value is
// the integer 0.
type Element struct {
	kind Kind
	i    int
	s    string
}

func Int(v int) Element { return Element{kind: KindInt, i: v} }

func Text(v string) Element { return Element{kind: KindText, s: v} }

func (e Element) Kind() Kind { return e.kind }

func (e Element) Int() int { return e.i }

func (e Element) Text() string { return e.s }

// Equal reports structural equality: same kind and same value.
func (e Element) Equal(o Element) bool {
	return e.kind == o.kind && e.i == o.i && e.s == o.s
}

// String renders the element in its natural text form.
func (e Element) String() string {
	if e.kind == KindInt {
		return strconv.Itoa(e.i)
	}
	return e.s
}

type Comparator func(e1, e2 Element) int
