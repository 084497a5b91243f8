// Package stats contains score calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nvoloshin/prepterm/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates stored sessions for the overview panels.
type Summary struct {
	Sessions       int
	AvgScore       float64
	BestScore      int
	TotalQuestions int
	AvgMinutes     float64
}

// BuildSummary computes overview aggregates for the sessions.
func BuildSummary(sessions []model.SessionRecord) Summary {
	s := Summary{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return s
	}
	var scoreSum float64
	var minuteSum float64
	for _, rec := range sessions {
		scoreSum += float64(rec.OverallScore)
		minuteSum += float64(rec.DurationSeconds) / 60.0
		s.TotalQuestions += rec.QuestionCount
		if rec.OverallScore > s.BestScore {
			s.BestScore = rec.OverallScore
		}
	}
	s.AvgScore = scoreSum / float64(len(sessions))
	s.AvgMinutes = minuteSum / float64(len(sessions))
	return s
}

// ScoreSeries extracts overall scores in session order.
func ScoreSeries(sessions []model.SessionRecord) []float64 {
	values := make([]float64, len(sessions))
	for i, rec := range sessions {
		values[i] = float64(rec.OverallScore)
	}
	return values
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for stored sessions.
func RenderSummary(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No interviews found.")
		return err
	}
	s := BuildSummary(sessions)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Interviews: %d\n", s.Sessions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Score: %.1f\n", s.AvgScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Score: %d\n", s.BestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Questions Answered: %d\n", s.TotalQuestions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Length: %.1f min\n", s.AvgMinutes); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderScoreCurve prints the overall-score learning curve sized to a given
// total width.
func RenderScoreCurve(w io.Writer, sessions []model.SessionRecord, window, totalWidth, height int, useColor bool) error {
	if len(sessions) == 0 {
		return nil
	}
	scores := MovingAverage(ScoreSeries(sessions), window)
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Score Curve", []Series{
		{Name: "Overall", Values: scores},
	}, width, height, useColor)
}

// RenderSkillCurves prints per-skill learning curves sized to a given total
// width.
func RenderSkillCurves(w io.Writer, sessions []model.SessionRecord, perSession map[int64]map[string]int, skills []string, window, totalWidth, height int, useColor bool) error {
	if len(skills) == 0 || len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Per-Skill Curves"); err != nil {
		return err
	}
	for _, skill := range skills {
		series := make([]float64, len(sessions))
		for i, rec := range sessions {
			if scores, ok := perSession[rec.RowID]; ok {
				if score, ok := scores[skill]; ok {
					series[i] = float64(score)
				}
			}
		}
		series = MovingAverage(series, window)
		width := 0
		if totalWidth > 0 {
			width = PlotWidthFor(totalWidth)
		}
		if err := PlotSeriesWithColor(w, fmt.Sprintf("Skill %s", skill), []Series{
			{Name: "Score", Values: series},
		}, width, height, useColor); err != nil {
			return err
		}
	}
	return nil
}
