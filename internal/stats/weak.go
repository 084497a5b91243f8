package stats

import (
	"context"
	"sort"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/store"
)

// FocusSkillsForType returns the lowest-scoring skills across stored sessions
// of one interview type, for biasing the next session toward weak spots. No
// history yields nil so the caller keeps its configured skill set.
func FocusSkillsForType(ctx context.Context, st *store.Store, interviewType string, top int) ([]string, error) {
	report, err := BuildReport(ctx, st, model.HistoryFilter{InterviewType: interviewType})
	if err != nil {
		return nil, err
	}
	return SelectFocusSkills(report.SkillAggsAll, top), nil
}

// SelectFocusSkills picks the lowest-scoring skills from aggregates, for
// suggesting what to practice next.
func SelectFocusSkills(aggs []model.SkillAggregate, top int) []string {
	if len(aggs) == 0 {
		return nil
	}
	candidates := make([]model.SkillAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		mi := candidates[i].Mean()
		mj := candidates[j].Mean()
		if mi == mj {
			return candidates[i].Skill < candidates[j].Skill
		}
		return mi < mj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	skills := make([]string, 0, top)
	for i := 0; i < top; i++ {
		skills = append(skills, candidates[i].Skill)
	}
	return skills
}

// TopSkillsByCount returns the top N skills by how often they were scored.
func TopSkillsByCount(aggs []model.SkillAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	candidates := make([]model.SkillAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count == candidates[j].Count {
			return candidates[i].Skill < candidates[j].Skill
		}
		return candidates[i].Count > candidates[j].Count
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	skills := make([]string, 0, n)
	for i := 0; i < n; i++ {
		skills = append(skills, candidates[i].Skill)
	}
	return skills
}
