package evaluate

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/nvoloshin/prepterm/internal/model"
)

// Presentation thresholds shared across renders.
const (
	IndustryAverage      = 75
	strengthThreshold    = 85
	improvementThreshold = 75
)

// RankingBoundary fetches the peer-comparison standing.
type RankingBoundary interface {
	FetchRanking(ctx context.Context, sessionID string) (model.PeerComparison, error)
}

// MetricsBoundary fetches the improvement-rate metric.
type MetricsBoundary interface {
	FetchImprovementRate(ctx context.Context) (float64, error)
}

// Assembler builds the InterviewResult from evaluator output and the
// independently fetched ranking and metrics boundaries. Boundary failures
// never block assembly; each fetch recovers on its own.
type Assembler struct {
	primary  Evaluator
	fallback Evaluator
	ranking  RankingBoundary
	metrics  MetricsBoundary
	now      func() time.Time
}

// NewAssembler wires the evaluators and optional boundaries. The fallback
// must not be nil; it is the availability guarantee.
func NewAssembler(primary Evaluator, fallback Evaluator, ranking RankingBoundary, metrics MetricsBoundary) *Assembler {
	return &Assembler{
		primary:  primary,
		fallback: fallback,
		ranking:  ranking,
		metrics:  metrics,
		now:      time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (a *Assembler) SetClock(now func() time.Time) {
	a.now = now
}

// Assemble produces the immutable result for a completed session. The
// primary evaluator is tried first; any error selects the heuristic
// fallback, which cannot fail.
func (a *Assembler) Assemble(ctx context.Context, sessionID string, cfg model.InterviewType, questions []model.Question, answers []model.Answer) model.InterviewResult {
	scores, err := a.evaluate(ctx, questions, answers, cfg)
	if err != nil {
		// Fallback is total; ignore its nil error.
		scores, _ = Heuristic{}.Evaluate(ctx, questions, answers, cfg)
	}

	skillScores := shapeSkillScores(scores.BySkill, cfg)
	var strengths, improvements []string
	for _, s := range skillScores {
		if s.Score > strengthThreshold {
			strengths = append(strengths, s.Skill)
		}
		if s.Score < improvementThreshold {
			improvements = append(improvements, s.Skill)
		}
	}

	result := model.InterviewResult{
		SessionID:     sessionID,
		InterviewType: cfg.Name,
		OverallScore:  roundScore(scores.Overall),
		SkillScores:   skillScores,
		Strengths:     strengths,
		Improvements:  improvements,
		Feedback:      scores.Feedback,
		PerQuestion:   scores.PerQuestion,
		Peers:         a.fetchPeers(ctx, sessionID),
		CompletedAt:   a.now(),
	}
	result.ImprovementRate = a.fetchImprovementRate(ctx)
	return result
}

func (a *Assembler) evaluate(ctx context.Context, questions []model.Question, answers []model.Answer, cfg model.InterviewType) (Scores, error) {
	if a.primary != nil {
		scores, err := a.primary.Evaluate(ctx, questions, answers, cfg)
		if err == nil {
			return scores, nil
		}
	}
	if a.fallback != nil {
		return a.fallback.Evaluate(ctx, questions, answers, cfg)
	}
	return Heuristic{}.Evaluate(ctx, questions, answers, cfg)
}

func (a *Assembler) fetchPeers(ctx context.Context, sessionID string) model.PeerComparison {
	if a.ranking != nil {
		peers, err := a.ranking.FetchRanking(ctx, sessionID)
		if err == nil {
			return peers
		}
	}
	return NeutralPeers()
}

func (a *Assembler) fetchImprovementRate(ctx context.Context) float64 {
	if a.metrics == nil {
		return 0
	}
	rate, err := a.metrics.FetchImprovementRate(ctx)
	if err != nil {
		return 0
	}
	return rate
}

// NeutralPeers is the substitute comparison object when the ranking boundary
// is unavailable.
func NeutralPeers() model.PeerComparison {
	return model.PeerComparison{
		RegionalPercentile:   50,
		ExperiencePercentile: 50,
		OverallPercentile:    50,
	}
}

// shapeSkillScores orders configured skills first, then any extra grouped
// tags alphabetically, and fixes the industry-average baseline so renders
// stay comparable.
func shapeSkillScores(bySkill map[string]float64, cfg model.InterviewType) []model.SkillScore {
	ordered := make([]string, 0, len(bySkill))
	seen := map[string]struct{}{}
	for _, skill := range cfg.Skills {
		if _, ok := bySkill[skill]; ok {
			ordered = append(ordered, skill)
			seen[skill] = struct{}{}
		}
	}
	var extra []string
	for skill := range bySkill {
		if _, ok := seen[skill]; !ok {
			extra = append(extra, skill)
		}
	}
	sort.Strings(extra)
	ordered = append(ordered, extra...)

	scores := make([]model.SkillScore, 0, len(ordered))
	for _, skill := range ordered {
		score := roundScore(bySkill[skill])
		scores = append(scores, model.SkillScore{
			Skill:           skill,
			Score:           score,
			Percentile:      approxPercentile(score),
			Trend:           trendFor(score),
			IndustryAverage: IndustryAverage,
		})
	}
	return scores
}

func roundScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// approxPercentile is a rough standing derived from the score alone; the
// ranking boundary supplies the real percentiles when reachable.
func approxPercentile(score int) int {
	p := score*9/10 + 5
	if p < 1 {
		return 1
	}
	if p > 99 {
		return 99
	}
	return p
}

func trendFor(score int) string {
	switch {
	case score > IndustryAverage:
		return "up"
	case score < IndustryAverage:
		return "down"
	default:
		return "steady"
	}
}
