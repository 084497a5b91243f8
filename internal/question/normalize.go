// Package question normalizes heterogeneous question payloads.
package question

import (
	"fmt"
	"strings"

	"github.com/nvoloshin/prepterm/internal/model"
)

// DefaultBudgetSeconds is used when the configured duration and question
// count cannot produce a positive per-question budget.
const DefaultBudgetSeconds = 180

var jdTemplates = [2]string{
	"Based on the job description, how would your experience help you succeed in this role?",
	"The job description highlights specific responsibilities. Walk through how you would approach your first 90 days.",
}

// BudgetSeconds derives the per-question time budget for an interview type.
func BudgetSeconds(cfg model.InterviewType) int {
	if cfg.QuestionCount <= 0 {
		return DefaultBudgetSeconds
	}
	budget := cfg.DurationMinutes * 60 / cfg.QuestionCount
	if budget <= 0 {
		return DefaultBudgetSeconds
	}
	return budget
}

// Normalize converts a raw candidate list into the ordered, well-formed
// question sequence for one session. Entries without prompt text are dropped,
// missing fields are defaulted, and the result is truncated to the configured
// count. Pure and deterministic: identical inputs produce identical output.
func Normalize(raws []Raw, cfg model.InterviewType) []model.Question {
	count := cfg.QuestionCount
	if count <= 0 {
		count = len(raws)
	}
	if cfg.HasJobDescription() {
		return normalizeWithJD(raws, cfg, count)
	}
	source := raws
	if len(usable(source)) == 0 {
		source = builtinBank
	}
	return normalizeList(source, cfg, count)
}

func normalizeWithJD(raws []Raw, cfg model.InterviewType, count int) []model.Question {
	sourceCount := (count + 1) / 2
	source := raws
	if len(usable(source)) == 0 {
		source = builtinBank
	}
	questions := normalizeList(source, cfg, sourceCount)
	budget := BudgetSeconds(cfg)
	for i := len(questions); i < count; i++ {
		prompt := jdTemplates[(i-len(questions))%len(jdTemplates)]
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Prompt:        prompt,
			Category:      "Role Fit",
			Difficulty:    model.DifficultyMedium,
			Type:          model.TypeBehavioral,
			BudgetSeconds: budget,
			Skills:        append([]string(nil), cfg.Skills...),
		})
	}
	return questions
}

func normalizeList(raws []Raw, cfg model.InterviewType, count int) []model.Question {
	budget := BudgetSeconds(cfg)
	questions := make([]model.Question, 0, count)
	for _, raw := range raws {
		if len(questions) >= count {
			break
		}
		prompt := strings.TrimSpace(raw.Prompt)
		if prompt == "" {
			continue
		}
		q := model.Question{
			ID:            strings.TrimSpace(raw.ID),
			Prompt:        prompt,
			Category:      raw.Category,
			Difficulty:    raw.Difficulty,
			Type:          raw.Type,
			BudgetSeconds: budget,
			Skills:        append([]string(nil), raw.Skills...),
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", len(questions)+1)
		}
		if q.Category == "" {
			q.Category = "General"
		}
		if q.Difficulty == "" {
			q.Difficulty = model.DifficultyMedium
		}
		if q.Type == "" {
			q.Type = model.TypeBehavioral
		}
		if q.Skills == nil {
			q.Skills = []string{}
		}
		questions = append(questions, q)
	}
	return questions
}

func usable(raws []Raw) []Raw {
	out := make([]Raw, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw.Prompt) == "" {
			continue
		}
		out = append(out, raw)
	}
	return out
}
