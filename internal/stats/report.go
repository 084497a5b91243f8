// Package stats contains score calculations and reporting.
package stats

import (
	"context"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/store"
)

// Report contains precomputed data for results rendering.
type Report struct {
	Sessions        []model.SessionRecord
	WindowIDs       []int64
	SkillAggsAll    []model.SkillAggregate
	SkillAggsWindow []model.SkillAggregate
}

// BuildReport loads and prepares data for results rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.HistoryFilter) (Report, error) {
	sessions, err := st.ListSessions(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	if filter.Last > 0 && len(sessions) > filter.Last {
		sessions = sessions[len(sessions)-filter.Last:]
	}

	allIDs := interviewIDs(sessions)
	windowIDs := lastInterviewIDs(sessions, filter.CurveWindow)
	skillAggsAll, err := st.ListSkillAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	skillAggsWindow, err := st.ListSkillAggregates(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sessions:        sessions,
		WindowIDs:       windowIDs,
		SkillAggsAll:    skillAggsAll,
		SkillAggsWindow: skillAggsWindow,
	}, nil
}

func interviewIDs(sessions []model.SessionRecord) []int64 {
	ids := make([]int64, len(sessions))
	for i, rec := range sessions {
		ids[i] = rec.RowID
	}
	return ids
}

func lastInterviewIDs(sessions []model.SessionRecord, window int) []int64 {
	if window <= 0 || len(sessions) <= window {
		return interviewIDs(sessions)
	}
	return interviewIDs(sessions[len(sessions)-window:])
}
