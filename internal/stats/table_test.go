package stats

import (
	"strings"
	"testing"

	"github.com/nvoloshin/prepterm/internal/model"
)

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable(
		[]string{"Skill", "Avg"},
		[][]string{
			{"Communication", "88.0"},
			{"Zeal", "7.5"},
		},
		map[int]bool{1: true},
	)
	want := []string{
		"Skill" + strings.Repeat(" ", 10) + "Avg",
		"Communication 88.0",
		"Zeal" + strings.Repeat(" ", 11) + "7.5",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty table, got %v", lines)
	}
}

func TestPadCellWideRunes(t *testing.T) {
	got := padCell("面接", 6, false)
	if got != "面接  " {
		t.Fatalf("padded = %q", got)
	}
	if padCell("abc", 2, false) != "abc" {
		t.Fatal("cells wider than the column must pass through")
	}
}

func TestRenderSkillTableWeakestFirst(t *testing.T) {
	var b strings.Builder
	err := RenderSkillTable(&b, []model.SkillAggregate{
		{Skill: "Communication", ScoreSum: 180, Count: 2},
		{Skill: "Leadership", ScoreSum: 120, Count: 2},
	})
	if err != nil {
		t.Fatalf("render skill table: %v", err)
	}
	out := b.String()
	lead := strings.Index(out, "Leadership")
	comm := strings.Index(out, "Communication")
	if lead < 0 || comm < 0 || lead > comm {
		t.Fatalf("expected weakest skill first:\n%s", out)
	}
	if !strings.Contains(out, "60.0") || !strings.Contains(out, "90.0") {
		t.Fatalf("means missing:\n%s", out)
	}
}

func TestRenderLeaderboard(t *testing.T) {
	var b strings.Builder
	err := RenderLeaderboard(&b, []model.LeaderboardEntry{
		{Rank: 1, Name: "Ada", Score: 93.5, Sessions: 40, Region: "EU"},
	})
	if err != nil {
		t.Fatalf("render leaderboard: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Rank", "Name", "Score", "Interviews", "Region", "Ada", "93.5", "EU"} {
		if !strings.Contains(out, want) {
			t.Fatalf("leaderboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLeaderboardEmpty(t *testing.T) {
	var b strings.Builder
	if err := RenderLeaderboard(&b, nil); err != nil {
		t.Fatalf("render empty leaderboard: %v", err)
	}
	if !strings.Contains(b.String(), "Leaderboard is empty.") {
		t.Fatalf("empty leaderboard = %q", b.String())
	}
}
