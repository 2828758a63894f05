package arrays

import (
	"math/rand"
	"sync"
	"time"

	"github.com/kabu1204/go-sortutil/assert"
	"github.com/kabu1204/go-sortutil/types"
)

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// The process-wide source is created once on first use. math/rand sources
// are not safe for unsynchronized concurrent use, so draws are serialized.
var (
	rngOnce sync.Once
	rngMu   sync.Mutex
	rng     *rand.Rand
)

func defaultIntn(n int) int {
	rngOnce.Do(func() {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

type sourceFunc func(n int) int

func (f sourceFunc) Intn(n int) int { return f(n) }

// Generate returns size integer elements drawn uniformly from [0, size)
// using the shared process-wide source.
func Generate(size int) types.Slice {
	return GenerateFrom(sourceFunc(defaultIntn), size)
}

// GenerateFrom is Generate with an injected source, for callers that need
// a deterministic sequence.
func GenerateFrom(src Source, size int) types.Slice {
	assert.NonNil(src)
	assert.That(size >= 0, "size must be non-negative, got %d", size)

	s := make(types.Slice, size)
	for i := 0; i < size; i++ {
		s[i] = types.Int(src.Intn(size))
	}
	return s
}

// Blank returns size empty text elements.
func Blank(size int) types.Slice {
	assert.That(size >= 0, "size must be non-negative, got %d", size)

	s := make(types.Slice, size)
	for i := 0; i < size; i++ {
		s[i] = types.Text("")
	}
	return s
}
