// Package model defines shared data structures.
package model

import "time"

// Difficulty levels a question can carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question types recognized by the backend.
const (
	TypeBehavioral    = "behavioral"
	TypeProductDesign = "product_design"
	TypeAnalytical    = "analytical"
	TypeTechnical     = "technical"
	TypeStrategic     = "strategic"
)

// Question is one normalized interview question. Immutable once a session starts.
type Question struct {
	ID            string
	Prompt        string
	Category      string
	Difficulty    string
	Type          string
	BudgetSeconds int
	Skills        []string
}

// Answer records the response to a single question. At most one per question id.
type Answer struct {
	QuestionID     string
	Content        string
	ElapsedSeconds int
	AnsweredAt     time.Time
	UsedVoice      bool
}

// InterviewType is the read-only configuration selected before a session.
type InterviewType struct {
	Name            string
	DurationMinutes int
	QuestionCount   int
	Skills          []string
	JobDescription  string
}

// HasJobDescription reports whether the type carries a job description.
func (t InterviewType) HasJobDescription() bool {
	return t.JobDescription != ""
}

// SkillScore is a per-skill evaluation entry within a result.
type SkillScore struct {
	Skill           string
	Score           int
	Percentile      int
	Feedback        string
	Trend           string
	IndustryAverage int
}

// PeerComparison is the externally sourced percentile standing.
type PeerComparison struct {
	AvgScore             float64
	RegionalPercentile   int
	ExperiencePercentile int
	OverallPercentile    int
	SampleSize           int
}

// QuestionEvaluation holds the boundary's verdict for one question.
type QuestionEvaluation struct {
	QuestionID  string
	Score       int
	Feedback    string
	Strengths   []string
	Weaknesses  []string
	ModelAnswer string
}

// InterviewResult aggregates one completed (or retrieved past) session.
// Constructed once; immutable thereafter.
type InterviewResult struct {
	SessionID       string
	InterviewType   string
	OverallScore    int
	SkillScores     []SkillScore
	Strengths       []string
	Improvements    []string
	Peers           PeerComparison
	ImprovementRate float64
	Feedback        string
	PerQuestion     []QuestionEvaluation
	CompletedAt     time.Time
}

// SessionRecord summarizes a stored session for history listings.
type SessionRecord struct {
	RowID           int64
	SessionID       string
	InterviewType   string
	OverallScore    int
	QuestionCount   int
	DurationSeconds int
	CompletedAt     time.Time
}

// HistoryFilter narrows history queries for the results dashboard.
type HistoryFilter struct {
	InterviewType string
	Since         *time.Time
	Last          int
	CurveWindow   int
}

// SkillAggregate sums stored skill scores across sessions.
type SkillAggregate struct {
	Skill    string
	ScoreSum int64
	Count    int64
}

// Mean returns the average score for the aggregate.
func (a SkillAggregate) Mean() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.ScoreSum) / float64(a.Count)
}

// LeaderboardEntry is one row of backend standings.
type LeaderboardEntry struct {
	Rank     int
	Name     string
	Score    float64
	Sessions int
	Region   string
}

// TokenPair holds the opaque auth tokens issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
