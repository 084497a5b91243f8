package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nvoloshin/prepterm/internal/model"
)

// builtinTypes is the default interview catalog. Config-file types with the
// same name override these.
var builtinTypes = []model.InterviewType{
	{
		Name:            "behavioral",
		DurationMinutes: 30,
		QuestionCount:   6,
		Skills:          []string{"Communication", "Leadership", "Self Awareness"},
	},
	{
		Name:            "product_design",
		DurationMinutes: 40,
		QuestionCount:   8,
		Skills:          []string{"Product Sense", "User Empathy", "Prioritization"},
	},
	{
		Name:            "analytical",
		DurationMinutes: 40,
		QuestionCount:   8,
		Skills:          []string{"Analytical Thinking", "Data Analysis", "Metrics"},
	},
	{
		Name:            "technical",
		DurationMinutes: 45,
		QuestionCount:   8,
		Skills:          []string{"Technical Depth", "Communication", "Problem Solving"},
	},
	{
		Name:            "strategic",
		DurationMinutes: 35,
		QuestionCount:   7,
		Skills:          []string{"Strategy", "Prioritization", "Stakeholder Management"},
	},
}

// InterviewTypes merges the built-in catalog with config-file types.
func InterviewTypes(fileTypes []TypeConfig) []model.InterviewType {
	byName := make(map[string]model.InterviewType, len(builtinTypes))
	names := make([]string, 0, len(builtinTypes))
	for _, t := range builtinTypes {
		byName[t.Name] = t
		names = append(names, t.Name)
	}
	for _, ft := range fileTypes {
		name := strings.TrimSpace(ft.Name)
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		t := model.InterviewType{
			Name:            name,
			DurationMinutes: ft.Duration,
			QuestionCount:   ft.Questions,
			Skills:          ft.Skills,
		}
		if t.DurationMinutes <= 0 {
			t.DurationMinutes = 30
		}
		if t.QuestionCount <= 0 {
			t.QuestionCount = 6
		}
		byName[name] = t
	}
	sort.Strings(names)
	out := make([]model.InterviewType, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// ResolveType looks up an interview type by name.
func ResolveType(name string, fileTypes []TypeConfig) (model.InterviewType, error) {
	for _, t := range InterviewTypes(fileTypes) {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	available := make([]string, 0)
	for _, t := range InterviewTypes(fileTypes) {
		available = append(available, t.Name)
	}
	return model.InterviewType{}, fmt.Errorf("unknown interview type %q (available: %s)", name, strings.Join(available, ", "))
}
