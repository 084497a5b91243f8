package evaluate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
)

type stubEvaluator struct {
	scores Scores
	err    error
	calls  int
}

func (s *stubEvaluator) Evaluate(context.Context, []model.Question, []model.Answer, model.InterviewType) (Scores, error) {
	s.calls++
	return s.scores, s.err
}

type stubRanking struct {
	peers model.PeerComparison
	err   error
}

func (s stubRanking) FetchRanking(context.Context, string) (model.PeerComparison, error) {
	return s.peers, s.err
}

type stubMetrics struct {
	rate float64
	err  error
}

func (s stubMetrics) FetchImprovementRate(context.Context) (float64, error) {
	return s.rate, s.err
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestAssemblePrimaryScores(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", Skills: []string{"Communication", "Leadership"}}
	primary := &stubEvaluator{scores: Scores{
		Overall:  75,
		BySkill:  map[string]float64{"Communication": 90, "Leadership": 60},
		Feedback: "solid overall",
	}}
	fallback := &stubEvaluator{}
	a := NewAssembler(primary, fallback, stubRanking{peers: model.PeerComparison{OverallPercentile: 72}}, stubMetrics{rate: 4.5})
	a.SetClock(fixedClock)

	result := a.Assemble(context.Background(), "sess-1", cfg, nil, nil)
	if fallback.calls != 0 {
		t.Fatalf("fallback used despite a healthy primary")
	}
	if result.OverallScore != 75 {
		t.Fatalf("overall = %d, want 75", result.OverallScore)
	}
	if len(result.SkillScores) != 2 {
		t.Fatalf("expected 2 skill scores, got %d", len(result.SkillScores))
	}
	if result.SkillScores[0].Skill != "Communication" || result.SkillScores[1].Skill != "Leadership" {
		t.Fatalf("skills not in configured order: %+v", result.SkillScores)
	}
	if result.SkillScores[0].IndustryAverage != IndustryAverage {
		t.Fatalf("industry average baseline missing: %+v", result.SkillScores[0])
	}
	if len(result.Strengths) != 1 || result.Strengths[0] != "Communication" {
		t.Fatalf("strengths = %v", result.Strengths)
	}
	if len(result.Improvements) != 1 || result.Improvements[0] != "Leadership" {
		t.Fatalf("improvements = %v", result.Improvements)
	}
	if result.Peers.OverallPercentile != 72 {
		t.Fatalf("peers not taken from ranking boundary: %+v", result.Peers)
	}
	if result.ImprovementRate != 4.5 {
		t.Fatalf("improvement rate = %v", result.ImprovementRate)
	}
	if !result.CompletedAt.Equal(fixedClock()) {
		t.Fatalf("completed at = %v", result.CompletedAt)
	}
}

func TestAssembleFallsBackOnPrimaryError(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", Skills: []string{"Communication"}}
	primary := &stubEvaluator{err: errors.New("backend down")}
	fallback := &stubEvaluator{scores: Scores{
		Overall: 62,
		BySkill: map[string]float64{"Communication": 62},
	}}
	a := NewAssembler(primary, fallback, nil, nil)
	a.SetClock(fixedClock)

	result := a.Assemble(context.Background(), "sess-1", cfg, nil, nil)
	if fallback.calls != 1 {
		t.Fatalf("fallback called %d times, want 1", fallback.calls)
	}
	if result.OverallScore != 62 {
		t.Fatalf("overall = %d, want fallback score", result.OverallScore)
	}
}

func TestAssembleNeutralPeersOnRankingFailure(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", Skills: []string{"Communication"}}
	primary := &stubEvaluator{scores: Scores{Overall: 80, BySkill: map[string]float64{"Communication": 80}}}
	a := NewAssembler(primary, &stubEvaluator{}, stubRanking{err: errors.New("ranking down")}, stubMetrics{err: errors.New("metrics down")})
	a.SetClock(fixedClock)

	result := a.Assemble(context.Background(), "sess-1", cfg, nil, nil)
	if result.Peers != NeutralPeers() {
		t.Fatalf("expected neutral peers, got %+v", result.Peers)
	}
	if result.ImprovementRate != 0 {
		t.Fatalf("improvement rate should default to 0, got %v", result.ImprovementRate)
	}
}

func TestAssembleExtraSkillsSortedAfterConfigured(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", Skills: []string{"Leadership"}}
	primary := &stubEvaluator{scores: Scores{
		Overall: 70,
		BySkill: map[string]float64{"Zeal": 70, "Analysis": 70, "Leadership": 70},
	}}
	a := NewAssembler(primary, &stubEvaluator{}, nil, nil)
	a.SetClock(fixedClock)

	result := a.Assemble(context.Background(), "sess-1", cfg, nil, nil)
	got := make([]string, len(result.SkillScores))
	for i, s := range result.SkillScores {
		got[i] = s.Skill
	}
	want := []string{"Leadership", "Analysis", "Zeal"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("skill order = %v, want %v", got, want)
		}
	}
}

func TestRoundScoreClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3.2, 0},
		{0, 0},
		{49.5, 50},
		{99.9, 100},
		{150, 100},
	}
	for _, tt := range tests {
		if got := roundScore(tt.in); got != tt.want {
			t.Fatalf("roundScore(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
