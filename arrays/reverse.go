package arrays

import (
	"go.uber.org/zap"

	"github.com/kabu1204/go-sortutil/types"
)

var logger = zap.NewNop()

// SetLogger installs the logger used for diagnostic output. Passing nil
// restores the default Nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Reverse returns a new slice with the elements of s in reverse positional
// order. The input is not mutated. A before/after rendering is logged at
// debug level.
func Reverse(s types.Slice) types.Slice {
	target := make(types.Slice, len(s))
	for i := range s {
		target[i] = s[len(s)-(1+i)]
	}
	logger.Debug("reversed array",
		zap.String("input", Render(s)),
		zap.String("output", Render(target)),
	)
	return target
}
