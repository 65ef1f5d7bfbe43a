package trivia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRand returns preset values so draws are fully deterministic.
type stubRand struct {
	values []int
	pos    int
}

func (s *stubRand) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestSelectorNeverReturnsExcluded(t *testing.T) {
	pool := makeQuestions(20)
	excluded := []int{1, 2, 3, 5, 8, 13}
	selector := NewSelector(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		got := selector.Next(pool, excluded)
		require.NotNil(t, got)
		assert.NotContains(t, excluded, got.ID)
	}
}

func TestSelectorExhaustedPoolReturnsNil(t *testing.T) {
	pool := makeQuestions(3)
	selector := NewSelector(rand.New(rand.NewSource(1)))

	assert.Nil(t, selector.Next(pool, []int{1, 2, 3}))
	assert.Nil(t, selector.Next(nil, nil))
	assert.Nil(t, selector.Next([]Question{}, []int{9}))
}

func TestSelectorPicksByRandIndex(t *testing.T) {
	pool := makeQuestions(5)

	// Candidates after excluding 2 and 4 are ids 1, 3, 5; index 1 is id 3.
	selector := NewSelector(&stubRand{values: []int{1}})
	got := selector.Next(pool, []int{2, 4})
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ID)
}

func TestSelectorEventuallyCoversAllCandidates(t *testing.T) {
	pool := makeQuestions(6)
	selector := NewSelector(rand.New(rand.NewSource(7)))

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		got := selector.Next(pool, nil)
		require.NotNil(t, got)
		seen[got.ID] = true
	}
	// A uniform draw over 6 candidates hits every one of them in 500 tries
	// with overwhelming probability.
	assert.Len(t, seen, 6)
}

func TestSelectorDefaultsToSeededRand(t *testing.T) {
	selector := NewSelector(nil)
	pool := makeQuestions(4)

	got := selector.Next(pool, nil)
	require.NotNil(t, got)
	assert.Contains(t, []int{1, 2, 3, 4}, got.ID)
}
