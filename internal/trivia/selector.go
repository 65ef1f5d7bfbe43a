package trivia

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Rand is the randomness source used for quiz draws. Injecting it keeps the
// selector deterministic under test; production wiring uses a locked PRNG
// seeded from crypto-quality entropy.
type Rand interface {
	Intn(n int) int
}

// Selector picks one unseen question from a candidate pool for the quiz flow.
type Selector struct {
	rand Rand
}

// NewSelector builds a Selector around the given randomness source, falling
// back to a seeded locked PRNG when src is nil.
func NewSelector(src Rand) *Selector {
	if src == nil {
		src = newLockedRand()
	}
	return &Selector{rand: src}
}

// Next returns one question chosen uniformly at random from pool, skipping
// every id in excluded. A nil result means the pool is exhausted, which is a
// normal outcome for the quiz flow rather than an error.
func (s *Selector) Next(pool []Question, excluded []int) *Question {
	skip := make(map[int]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, seen := skip[q.ID]; seen {
			continue
		}
		candidates = append(candidates, q)
	}

	if len(candidates) == 0 {
		return nil
	}
	picked := candidates[s.rand.Intn(len(candidates))]
	return &picked
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand() *lockedRand {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// Entropy read failures are effectively impossible on supported
		// platforms; a zero seed still yields a usable sequence.
		return &lockedRand{rng: rand.New(rand.NewSource(0))}
	}
	return &lockedRand{rng: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
