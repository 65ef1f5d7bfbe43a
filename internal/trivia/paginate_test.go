package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []Question {
	qs := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, Question{ID: i, Question: "q", Answer: "a", Difficulty: 1, Category: 1})
	}
	return qs
}

func TestPaginateReturnsAtMostPageSize(t *testing.T) {
	items := makeQuestions(25)

	for page := 1; page <= 4; page++ {
		got := Paginate(items, page, 10)
		assert.LessOrEqual(t, len(got), 10, "page %d", page)
	}
}

func TestPaginateSlicesAreContiguous(t *testing.T) {
	items := makeQuestions(25)

	first := Paginate(items, 1, 10)
	second := Paginate(items, 2, 10)
	third := Paginate(items, 3, 10)

	assert.Equal(t, items[0:10], first)
	assert.Equal(t, items[10:20], second)
	assert.Equal(t, items[20:25], third)
}

func TestPaginateBeyondLastPageIsEmpty(t *testing.T) {
	items := makeQuestions(10)

	got := Paginate(items, 2, 10)
	assert.Empty(t, got)

	got = Paginate(items, 1000, 10)
	assert.Empty(t, got)
}

func TestPaginateClampsNonPositivePages(t *testing.T) {
	items := makeQuestions(15)

	assert.Equal(t, Paginate(items, 1, 10), Paginate(items, 0, 10))
	assert.Equal(t, Paginate(items, 1, 10), Paginate(items, -3, 10))
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	items := makeQuestions(12)
	original := make([]Question, len(items))
	copy(original, items)

	Paginate(items, 2, 10)
	assert.Equal(t, original, items)
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate(nil, 1, 10))
	assert.Empty(t, Paginate([]Question{}, 1, 10))
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-2", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePage(tc.raw), "raw %q", tc.raw)
	}
}
