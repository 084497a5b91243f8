// Package question normalizes heterogeneous question payloads.
package question

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Raw mirrors the loose question shape returned by the backend question
// source, cached JSON, and the retake boundary. Any subset of fields may be
// absent; ids arrive as strings or numbers depending on the endpoint.
type Raw struct {
	ID         string
	Prompt     string
	Type       string
	Category   string
	TimeLimit  int
	Difficulty string
	Skills     []string
}

type rawWire struct {
	ID         json.RawMessage `json:"id,omitempty"`
	Question   string          `json:"question,omitempty"`
	Text       string          `json:"text,omitempty"`
	Type       string          `json:"type,omitempty"`
	Category   string          `json:"category,omitempty"`
	TimeLimit  json.RawMessage `json:"timeLimit,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
	Skills     []string        `json:"skills,omitempty"`
}

// UnmarshalJSON decodes the loose wire shape, accepting "question" or "text"
// for the prompt and string-or-number ids and time limits.
func (r *Raw) UnmarshalJSON(data []byte) error {
	var w rawWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = flexString(w.ID)
	r.Prompt = w.Question
	if r.Prompt == "" {
		r.Prompt = w.Text
	}
	r.Type = w.Type
	r.Category = w.Category
	r.TimeLimit = flexInt(w.TimeLimit)
	r.Difficulty = w.Difficulty
	r.Skills = w.Skills
	return nil
}

// MarshalJSON writes the canonical wire field names so cached question lists
// round-trip through the same decoder.
func (r Raw) MarshalJSON() ([]byte, error) {
	w := struct {
		ID         string   `json:"id,omitempty"`
		Question   string   `json:"question,omitempty"`
		Type       string   `json:"type,omitempty"`
		Category   string   `json:"category,omitempty"`
		TimeLimit  int      `json:"timeLimit,omitempty"`
		Difficulty string   `json:"difficulty,omitempty"`
		Skills     []string `json:"skills,omitempty"`
	}{r.ID, r.Prompt, r.Type, r.Category, r.TimeLimit, r.Difficulty, r.Skills}
	return json.Marshal(w)
}

func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return strings.TrimSpace(string(raw))
}

func flexInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}
