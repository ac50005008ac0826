package weather

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

// Rand is the randomness seam for all weather draws. Forecast and actual
// draws are sequenced through a single source so a replay with the same
// source reproduces identical outcomes.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// SeededRand is the production source: a PCG generator derived from a seed.
type SeededRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededRand(seed int64) *SeededRand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &SeededRand{
		rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

func (r *SeededRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *SeededRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// ScriptedRand replays queued values; deterministic and test-friendly.
// Exhausted queues yield zero, which maps to the first catalog entry for
// IntN draws and to "forecast holds" for accuracy checks.
type ScriptedRand struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

func NewScriptedRand() *ScriptedRand {
	return &ScriptedRand{}
}

// PushFloat queues values returned by Float64, in order.
func (r *ScriptedRand) PushFloat(vs ...float64) {
	r.mu.Lock()
	r.floats = append(r.floats, vs...)
	r.mu.Unlock()
}

// PushInt queues values returned by IntN, in order.
func (r *ScriptedRand) PushInt(vs ...int) {
	r.mu.Lock()
	r.ints = append(r.ints, vs...)
	r.mu.Unlock()
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *ScriptedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

var (
	_ Rand = (*SeededRand)(nil)
	_ Rand = (*ScriptedRand)(nil)
)
