package evaluate

import (
	"context"
	"strings"

	"github.com/nvoloshin/prepterm/internal/model"
)

const (
	contentWeight    = 70.0
	efficiencyWeight = 30.0
	targetWordCount  = 50.0
)

// Heuristic is the local, network-free scoring approximation. It guarantees
// a renderable result with zero connectivity: every configured skill gets a
// score. Pure and idempotent: identical answers always produce identical
// scores.
type Heuristic struct{}

// Evaluate implements Evaluator. Per skill, each tagged question contributes
// a content-length proxy (min(words/50, 1) x 70) plus a time-efficiency
// proxy ((1 - elapsed/budget) x 30); contributions are averaged per skill.
// Skills with no tagged question average across all answered questions so
// the skill list stays complete.
func (Heuristic) Evaluate(_ context.Context, questions []model.Question, answers []model.Answer, cfg model.InterviewType) (Scores, error) {
	byID := answersByQuestion(answers)

	perQuestionScore := map[string]float64{}
	var allSum float64
	var allCount int
	for _, q := range questions {
		a, ok := byID[q.ID]
		if !ok {
			continue
		}
		score := questionScore(q, a)
		perQuestionScore[q.ID] = score
		allSum += score
		allCount++
	}
	allMean := 0.0
	if allCount > 0 {
		allMean = allSum / float64(allCount)
	}

	skills := cfg.Skills
	if len(skills) == 0 {
		skills = collectTags(questions)
	}
	bySkill := make(map[string]float64, len(skills))
	for _, skill := range skills {
		var sum float64
		var count int
		for _, q := range questions {
			if !hasTag(q, skill) {
				continue
			}
			score, ok := perQuestionScore[q.ID]
			if !ok {
				continue
			}
			sum += score
			count++
		}
		if count > 0 {
			bySkill[skill] = sum / float64(count)
		} else {
			bySkill[skill] = allMean
		}
	}

	var overall float64
	if len(bySkill) > 0 {
		for _, score := range bySkill {
			overall += score
		}
		overall /= float64(len(bySkill))
	}
	return Scores{
		Overall:  overall,
		BySkill:  bySkill,
		Feedback: "Scored locally; connect to the backend for detailed AI feedback.",
	}, nil
}

func questionScore(q model.Question, a model.Answer) float64 {
	words := float64(len(strings.Fields(a.Content)))
	contentRatio := words / targetWordCount
	if contentRatio > 1 {
		contentRatio = 1
	}
	efficiency := 0.0
	if q.BudgetSeconds > 0 {
		efficiency = 1 - float64(a.ElapsedSeconds)/float64(q.BudgetSeconds)
		if efficiency < 0 {
			efficiency = 0
		}
	}
	return contentRatio*contentWeight + efficiency*efficiencyWeight
}

func hasTag(q model.Question, skill string) bool {
	for _, tag := range skillTags(q) {
		if strings.EqualFold(tag, skill) {
			return true
		}
	}
	return false
}

func collectTags(questions []model.Question) []string {
	seen := map[string]struct{}{}
	var tags []string
	for _, q := range questions {
		for _, tag := range skillTags(q) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
