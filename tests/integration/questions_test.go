//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestQuestionLifecycle(t *testing.T) {
	before := totalQuestions(t)

	marker := fmt.Sprintf("Integration marker %d?", time.Now().UnixNano())
	createQuestion(t, marker, "an answer", 2, 1)

	after := totalQuestions(t)
	if after != before+1 {
		t.Fatalf("expected total to grow by 1: before=%d after=%d", before, after)
	}

	// Find the created question via search, then delete it.
	resp, body := doJSON(t, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "integration marker"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search failed with status %d", resp.StatusCode)
	}

	var questions []struct {
		ID       int    `json:"id"`
		Question string `json:"question"`
	}
	if err := json.Unmarshal(body["questions"], &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}

	var createdID int
	for _, q := range questions {
		if q.Question == marker {
			createdID = q.ID
		}
	}
	if createdID == 0 {
		t.Fatalf("created question not found via case-insensitive search")
	}

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", createdID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete failed with status %d", resp.StatusCode)
	}

	if got := totalQuestions(t); got != before {
		t.Fatalf("expected total back to %d, got %d", before, got)
	}
}

func TestDeleteMissingQuestion(t *testing.T) {
	resp, body := doJSON(t, http.MethodDelete, "/questions/999999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var message string
	if err := json.Unmarshal(body["message"], &message); err != nil || message != "Not found" {
		t.Fatalf("expected message %q, got %q (err %v)", "Not found", message, err)
	}
}

func TestCreateQuestionRejectsEmptyField(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, "/questions", map[string]any{
		"question":   "",
		"answer":     "a",
		"difficulty": 1,
		"category":   1,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestQuestionsPageBounds(t *testing.T) {
	resp, body := doJSON(t, http.MethodGet, "/questions?page=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var questions []json.RawMessage
	if err := json.Unmarshal(body["questions"], &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(questions) > 10 {
		t.Fatalf("page holds %d questions, want at most 10", len(questions))
	}

	resp, _ = doJSON(t, http.MethodGet, "/questions?page=100000", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for a page past the end, got %d", resp.StatusCode)
	}
}
