package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return st
}

func testResult(sessionID, interviewType string, score int, completedAt time.Time) model.InterviewResult {
	return model.InterviewResult{
		SessionID:     sessionID,
		InterviewType: interviewType,
		OverallScore:  score,
		SkillScores: []model.SkillScore{
			{Skill: "Communication", Score: score + 5, Percentile: 70, Trend: "up", Feedback: "solid"},
			{Skill: "Leadership", Score: score - 5, Percentile: 55, Trend: "stable", Feedback: "uneven"},
		},
		ImprovementRate: 3.5,
		Feedback:        "keep practicing",
		CompletedAt:     completedAt,
	}
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	var ids []int64
	for i, res := range []model.InterviewResult{
		testResult("s1", "behavioral", 70, base),
		testResult("s2", "technical", 80, base.Add(24*time.Hour)),
		testResult("s3", "behavioral", 75, base.Add(48*time.Hour)),
	} {
		id, err := st.InsertResult(ctx, res, 6, 1800)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	sessions, err := st.ListSessions(ctx, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		if sessions[i].SessionID != want {
			t.Fatalf("session %d = %q, want %q (oldest first)", i, sessions[i].SessionID, want)
		}
	}
	first := sessions[0]
	if first.RowID != ids[0] || first.InterviewType != "behavioral" || first.OverallScore != 70 {
		t.Fatalf("first session = %+v", first)
	}
	if first.QuestionCount != 6 || first.DurationSeconds != 1800 {
		t.Fatalf("stored dimensions = %+v", first)
	}
	if !first.CompletedAt.Equal(base) {
		t.Fatalf("completed at = %v, want %v", first.CompletedAt, base)
	}
}

func TestListSessionsFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	for _, res := range []model.InterviewResult{
		testResult("s1", "behavioral", 70, base),
		testResult("s2", "technical", 80, base.Add(24*time.Hour)),
		testResult("s3", "behavioral", 75, base.Add(48*time.Hour)),
	} {
		if _, err := st.InsertResult(ctx, res, 6, 1800); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	byType, err := st.ListSessions(ctx, model.HistoryFilter{InterviewType: "behavioral"})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 2 || byType[0].SessionID != "s1" || byType[1].SessionID != "s3" {
		t.Fatalf("type filter = %+v", byType)
	}

	since := base.Add(12 * time.Hour)
	recent, err := st.ListSessions(ctx, model.HistoryFilter{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "s2" {
		t.Fatalf("since filter = %+v", recent)
	}
}

func TestListSkillAggregates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	id1, err := st.InsertResult(ctx, testResult("s1", "behavioral", 70, base), 6, 1800)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := st.InsertResult(ctx, testResult("s2", "behavioral", 80, base.Add(time.Hour)), 6, 1800)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	aggs, err := st.ListSkillAggregates(ctx, []int64{id1, id2})
	if err != nil {
		t.Fatalf("aggregates: %v", err)
	}
	byName := map[string]model.SkillAggregate{}
	for _, agg := range aggs {
		byName[agg.Skill] = agg
	}
	comm := byName["Communication"]
	if comm.ScoreSum != 160 || comm.Count != 2 {
		t.Fatalf("communication aggregate = %+v", comm)
	}
	lead := byName["Leadership"]
	if lead.ScoreSum != 140 || lead.Count != 2 {
		t.Fatalf("leadership aggregate = %+v", lead)
	}

	empty, err := st.ListSkillAggregates(ctx, nil)
	if err != nil {
		t.Fatalf("empty aggregates: %v", err)
	}
	if empty != nil {
		t.Fatalf("expected nil for no sessions, got %+v", empty)
	}
}

func TestListSkillScoresForSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	id1, err := st.InsertResult(ctx, testResult("s1", "behavioral", 70, base), 6, 1800)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := st.InsertResult(ctx, testResult("s2", "behavioral", 80, base.Add(time.Hour)), 6, 1800)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	scores, err := st.ListSkillScoresForSessions(ctx, []int64{id1, id2}, []string{"Communication"})
	if err != nil {
		t.Fatalf("skill scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected scores for 2 sessions, got %d", len(scores))
	}
	if scores[id1]["Communication"] != 75 || scores[id2]["Communication"] != 85 {
		t.Fatalf("scores = %+v", scores)
	}
	if _, ok := scores[id1]["Leadership"]; ok {
		t.Fatalf("unrequested skill leaked into result: %+v", scores[id1])
	}
}
