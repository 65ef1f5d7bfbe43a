//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

func doJSON(t *testing.T, method, path string, payload any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", baseURL(), path), bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp, decoded
}

func createQuestion(t *testing.T, question, answer string, difficulty, category int) {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, "/questions", map[string]any{
		"question":   question,
		"answer":     answer,
		"difficulty": difficulty,
		"category":   category,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create question failed with status %d", resp.StatusCode)
	}
}

func totalQuestions(t *testing.T) int {
	t.Helper()

	resp, body := doJSON(t, http.MethodGet, "/questions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list questions failed with status %d", resp.StatusCode)
	}
	var total int
	if err := json.Unmarshal(body["total_questions"], &total); err != nil {
		t.Fatalf("decode total_questions: %v", err)
	}
	return total
}
