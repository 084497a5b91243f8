package session

import (
	"context"
	"errors"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/question"
)

// ErrNoRetakeSource reports that neither the retake boundary nor the local
// cache could produce any question. This is terminal for the flow: the caller
// surfaces it and stays out of a session.
var ErrNoRetakeSource = errors.New("no questions available for retake")

// RetakeBoundary fetches the original question list for a prior session.
type RetakeBoundary interface {
	RetakeQuestions(ctx context.Context, sessionID string) ([]question.Raw, error)
}

// RetakeQuestions rebuilds the question list for a retake attempt. The
// server-fetched set keyed by the prior session id is preferred; a fetch
// failure falls back silently to the most recently cached list. When both
// sources are empty the retake fails with ErrNoRetakeSource.
func RetakeQuestions(ctx context.Context, boundary RetakeBoundary, priorSessionID string, cached []question.Raw, cfg model.InterviewType) ([]model.Question, error) {
	var raws []question.Raw
	if priorSessionID != "" && boundary != nil {
		fetched, err := boundary.RetakeQuestions(ctx, priorSessionID)
		if err == nil && len(fetched) > 0 {
			raws = fetched
		}
	}
	if raws == nil {
		if len(cached) == 0 {
			return nil, ErrNoRetakeSource
		}
		raws = cached
	}
	questions := question.Normalize(raws, cfg)
	if len(questions) == 0 {
		return nil, ErrNoRetakeSource
	}
	return questions, nil
}
