package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/question"
)

// State is the JSON-serialized client state that survives restarts: the
// anonymous session id, auth tokens, and the last-used question set so a
// retake works offline. All fields round-trip through Save/Load.
type State struct {
	SessionID          string          `json:"session_id"`
	Tokens             model.TokenPair `json:"tokens,omitempty"`
	LastSessionID      string          `json:"last_session_id,omitempty"`
	LastQuestions      []question.Raw  `json:"last_questions,omitempty"`
	LastInterviewType  StoredType      `json:"last_interview_type,omitempty"`
	LastJobDescription string          `json:"last_job_description,omitempty"`
}

// StoredType is the cached interview type configuration.
type StoredType struct {
	Name            string   `json:"name,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	QuestionCount   int      `json:"question_count,omitempty"`
	Skills          []string `json:"skills,omitempty"`
}

// ToInterviewType rebuilds the model config, reattaching the cached job
// description.
func (t StoredType) ToInterviewType(jobDescription string) model.InterviewType {
	return model.InterviewType{
		Name:            t.Name,
		DurationMinutes: t.DurationMinutes,
		QuestionCount:   t.QuestionCount,
		Skills:          t.Skills,
		JobDescription:  jobDescription,
	}
}

// StoredTypeFrom caches the parts of an interview type worth persisting.
func StoredTypeFrom(cfg model.InterviewType) StoredType {
	return StoredType{
		Name:            cfg.Name,
		DurationMinutes: cfg.DurationMinutes,
		QuestionCount:   cfg.QuestionCount,
		Skills:          cfg.Skills,
	}
}

// LoadState reads the state file. A missing file yields a fresh state with a
// new anonymous session id.
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{SessionID: uuid.NewString()}, nil
		}
		return State{}, fmt.Errorf("failed to read state: %w", err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to decode state: %w", err)
	}
	if state.SessionID == "" {
		state.SessionID = uuid.NewString()
	}
	return state, nil
}

// SaveState writes the state file atomically via temp file and rename.
func SaveState(path string, state State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
