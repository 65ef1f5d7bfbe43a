package trivia

import "strconv"

// DefaultPageSize is the number of questions served per page.
const DefaultPageSize = 10

// Paginate returns the 1-indexed page cut from items. The slice is a
// contiguous, order-preserving window of at most pageSize elements; a page
// past the end yields an empty slice, never an error. Pages at or below zero
// clamp to the first page. Callers must order items before slicing.
func Paginate(items []Question, page, pageSize int) []Question {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Question{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage interprets a raw page query parameter. Absent or non-numeric
// values default to the first page; the clamping in Paginate covers the rest.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
