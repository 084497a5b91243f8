package stats

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/store"
)

func TestSelectFocusSkills(t *testing.T) {
	aggs := []model.SkillAggregate{
		{Skill: "Communication", ScoreSum: 180, Count: 2},
		{Skill: "Leadership", ScoreSum: 100, Count: 2},
		{Skill: "Analysis", ScoreSum: 140, Count: 2},
	}
	got := SelectFocusSkills(aggs, 2)
	want := []string{"Leadership", "Analysis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("focus skills = %v, want %v", got, want)
	}
}

func TestSelectFocusSkillsTieBreaksByName(t *testing.T) {
	aggs := []model.SkillAggregate{
		{Skill: "Zeal", ScoreSum: 60, Count: 1},
		{Skill: "Analysis", ScoreSum: 60, Count: 1},
	}
	got := SelectFocusSkills(aggs, 2)
	if !reflect.DeepEqual(got, []string{"Analysis", "Zeal"}) {
		t.Fatalf("tie break = %v", got)
	}
}

func TestSelectFocusSkillsBounds(t *testing.T) {
	if got := SelectFocusSkills(nil, 3); got != nil {
		t.Fatalf("empty aggregates = %v", got)
	}
	aggs := []model.SkillAggregate{{Skill: "Communication", ScoreSum: 80, Count: 1}}
	if got := SelectFocusSkills(aggs, 0); len(got) != 1 {
		t.Fatalf("non-positive top should return everything, got %v", got)
	}
	if got := SelectFocusSkills(aggs, 10); len(got) != 1 {
		t.Fatalf("oversized top should clamp, got %v", got)
	}
}

func TestFocusSkillsForType(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	}()

	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	results := []model.InterviewResult{
		{
			SessionID:     "s1",
			InterviewType: "behavioral",
			OverallScore:  70,
			SkillScores: []model.SkillScore{
				{Skill: "Communication", Score: 90},
				{Skill: "Leadership", Score: 55},
				{Skill: "Self Awareness", Score: 70},
			},
			CompletedAt: base,
		},
		{
			SessionID:     "s2",
			InterviewType: "behavioral",
			OverallScore:  75,
			SkillScores: []model.SkillScore{
				{Skill: "Communication", Score: 85},
				{Skill: "Leadership", Score: 65},
				{Skill: "Self Awareness", Score: 60},
			},
			CompletedAt: base.Add(time.Hour),
		},
		{
			SessionID:     "s3",
			InterviewType: "technical",
			OverallScore:  40,
			SkillScores: []model.SkillScore{
				{Skill: "Problem Solving", Score: 40},
			},
			CompletedAt: base.Add(2 * time.Hour),
		},
	}
	for i, res := range results {
		if _, err := st.InsertResult(ctx, res, 6, 1800); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	skills, err := FocusSkillsForType(ctx, st, "behavioral", 2)
	if err != nil {
		t.Fatalf("focus skills: %v", err)
	}
	// Leadership averages 60 and Self Awareness 65; other types are ignored.
	if !reflect.DeepEqual(skills, []string{"Leadership", "Self Awareness"}) {
		t.Fatalf("focus skills = %v", skills)
	}

	empty, err := FocusSkillsForType(ctx, st, "strategic", 2)
	if err != nil {
		t.Fatalf("focus skills for unseen type: %v", err)
	}
	if empty != nil {
		t.Fatalf("expected nil for an unseen type, got %v", empty)
	}
}

func TestTopSkillsByCount(t *testing.T) {
	aggs := []model.SkillAggregate{
		{Skill: "Communication", ScoreSum: 400, Count: 5},
		{Skill: "Leadership", ScoreSum: 150, Count: 2},
		{Skill: "Analysis", ScoreSum: 170, Count: 2},
	}
	got := TopSkillsByCount(aggs, 2)
	if !reflect.DeepEqual(got, []string{"Communication", "Analysis"}) {
		t.Fatalf("top by count = %v", got)
	}
	if got := TopSkillsByCount(aggs, 0); got != nil {
		t.Fatalf("zero n = %v", got)
	}
}
