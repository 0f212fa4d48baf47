package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// titleEntry is one proposed topic: the single key of a reply object and
// its value.
type titleEntry struct {
	Title       string
	Description string
}

// extractJSONObject finds the first complete JSON object in a string.
// Models occasionally wrap the payload in prose or a markdown fence.
func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in response: %w", domain.ErrMalformedGeneration)
	}
	return s[start : end+1], nil
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array in response: %w", domain.ErrMalformedGeneration)
	}
	return s[start : end+1], nil
}

// decodeTitleList parses a title reply: a JSON array of single-key objects
// mapping title to description. Element order is preserved; a multi-key or
// empty element fails the whole reply.
func decodeTitleList(reply string) ([]titleEntry, error) {
	raw, err := extractJSONArray(reply)
	if err != nil {
		return nil, err
	}

	var objects []map[string]string
	if err := json.Unmarshal([]byte(raw), &objects); err != nil {
		return nil, fmt.Errorf("decode title list: %v: %w", err, domain.ErrMalformedGeneration)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("empty title list: %w", domain.ErrMalformedGeneration)
	}

	entries := make([]titleEntry, 0, len(objects))
	for _, obj := range objects {
		if len(obj) != 1 {
			return nil, fmt.Errorf("title object must have exactly one key, got %d: %w", len(obj), domain.ErrMalformedGeneration)
		}
		for title, description := range obj {
			if strings.TrimSpace(title) == "" {
				return nil, fmt.Errorf("empty title: %w", domain.ErrMalformedGeneration)
			}
			entries = append(entries, titleEntry{Title: title, Description: description})
		}
	}
	return entries, nil
}

// decodeScenario parses a dialogue-scenario reply: a single JSON object
// with exactly one title-to-description pair.
func decodeScenario(reply string) (titleEntry, error) {
	raw, err := extractJSONObject(reply)
	if err != nil {
		return titleEntry{}, err
	}

	var obj map[string]string
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return titleEntry{}, fmt.Errorf("decode scenario: %v: %w", err, domain.ErrMalformedGeneration)
	}
	if len(obj) != 1 {
		return titleEntry{}, fmt.Errorf("scenario must be a single-key object, got %d keys: %w", len(obj), domain.ErrMalformedGeneration)
	}
	for title, description := range obj {
		if strings.TrimSpace(title) == "" {
			return titleEntry{}, fmt.Errorf("empty scenario title: %w", domain.ErrMalformedGeneration)
		}
		return titleEntry{Title: title, Description: description}, nil
	}
	return titleEntry{}, fmt.Errorf("empty scenario: %w", domain.ErrMalformedGeneration)
}

// decodeQuizItems parses a quiz reply into quiz items. Every question must
// carry exactly four options with the correct one first.
func decodeQuizItems(reply string) ([]domain.Item, error) {
	raw, err := extractJSONArray(reply)
	if err != nil {
		return nil, err
	}

	var questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		Explanation string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("decode quiz: %v: %w", err, domain.ErrMalformedGeneration)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("empty quiz: %w", domain.ErrMalformedGeneration)
	}

	items := make([]domain.Item, 0, len(questions))
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("quiz question %d is empty: %w", i, domain.ErrMalformedGeneration)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("quiz question %d has %d options, want 4: %w", i, len(q.Options), domain.ErrMalformedGeneration)
		}
		items = append(items, domain.NewQuizItem(q.Question, q.Options, q.Explanation))
	}
	return items, nil
}

// decodeRoles parses a dialogue-roles reply: the learner's role, the
// assistant's role, and the expanded scenario text.
func decodeRoles(reply string) (learnerRole, assistantRole, scenario string, err error) {
	raw, err := extractJSONObject(reply)
	if err != nil {
		return "", "", "", err
	}

	var payload struct {
		Roles    []string `json:"roles"`
		Scenario string   `json:"scenario"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", "", "", fmt.Errorf("decode roles: %v: %w", err, domain.ErrMalformedGeneration)
	}
	if len(payload.Roles) != 2 {
		return "", "", "", fmt.Errorf("roles reply has %d roles, want 2: %w", len(payload.Roles), domain.ErrMalformedGeneration)
	}
	if strings.TrimSpace(payload.Roles[0]) == "" || strings.TrimSpace(payload.Roles[1]) == "" {
		return "", "", "", fmt.Errorf("empty role name: %w", domain.ErrMalformedGeneration)
	}
	return payload.Roles[0], payload.Roles[1], payload.Scenario, nil
}
