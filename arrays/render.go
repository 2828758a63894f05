package arrays

import (
	"strings"

	"github.com/kabu1204/go-sortutil/types"
)

// Render formats s as <e1,e2,...,en>. Nil and empty slices render as <>.
func Render(s types.Slice) string {
	if len(s) == 0 {
		return "<>"
	}
	var b strings.Builder
	b.WriteByte('<')
	for i, e := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	b.WriteByte('>')
	return b.String()
}
