package trivia

import "errors"

// ErrNotFound is returned when a requested question or category does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput marks client payloads that fail validation before any store
// mutation happens.
var ErrInvalidInput = errors.New("invalid input")

// AllCategories is the sentinel category id meaning "no category scoping".
const AllCategories = 0

// Question is a single trivia question as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// Category is a display grouping for questions. Categories are read-only at
// the API surface; they are seeded by migration.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap is the wire shape for the category collection: id -> type.
type CategoryMap map[int]string

// CreateQuestionInput carries the fields required to insert a new question.
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// Filter describes the predicates applied when querying questions. The zero
// value matches every question. Predicates compose by logical AND; the store
// adapter compiles them into parameterized SQL.
type Filter struct {
	// CategoryID scopes to an exact category match; AllCategories disables it.
	CategoryID int
	// Search is a case-insensitive substring match against the question text.
	// Empty matches everything.
	Search string
	// ExcludeIDs removes specific question ids from the result set.
	ExcludeIDs []int
}

// Page is one window of an ordered question listing plus the total count the
// window was cut from (global total for plain listing, match count for
// filtered listings).
type Page struct {
	Questions []Question
	Total     int
}
