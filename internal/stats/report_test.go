package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/store"
)

func TestBuildReport(t *testing.T) {
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
	for i := 0; i < 3; i++ {
		result := model.InterviewResult{
			SessionID:     "s" + string(rune('1'+i)),
			InterviewType: "behavioral",
			OverallScore:  60 + i*10,
			SkillScores: []model.SkillScore{
				{Skill: "Communication", Score: 70 + i*10},
			},
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := st.InsertResult(ctx, result, 6, 1800); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	report, err := BuildReport(ctx, st, model.HistoryFilter{Last: 2, CurveWindow: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2 (last filter)", len(report.Sessions))
	}
	if report.Sessions[0].OverallScore != 70 || report.Sessions[1].OverallScore != 80 {
		t.Fatalf("kept wrong sessions: %+v", report.Sessions)
	}
	if len(report.WindowIDs) != 2 {
		t.Fatalf("window ids = %v", report.WindowIDs)
	}
	if len(report.SkillAggsAll) != 1 || report.SkillAggsAll[0].Count != 2 {
		t.Fatalf("all aggregates = %+v", report.SkillAggsAll)
	}
	// Sessions 2 and 3 carry Communication 80 and 90.
	if report.SkillAggsWindow[0].ScoreSum != 170 {
		t.Fatalf("window aggregates = %+v", report.SkillAggsWindow)
	}
}

func TestBuildReportEmptyStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	}()

	report, err := BuildReport(context.Background(), st, model.HistoryFilter{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 0 || len(report.SkillAggsAll) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}
