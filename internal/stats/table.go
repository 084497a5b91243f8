// Package stats contains score calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nvoloshin/prepterm/internal/model"
)

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// Cells can carry wide runes (names, skills), so width is measured in
// display columns, not runes.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// RenderSkillTable prints per-skill aggregates, weakest skills first.
func RenderSkillTable(w io.Writer, aggs []model.SkillAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No skill scores found.")
		return err
	}
	sorted := make([]model.SkillAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		mi := sorted[i].Mean()
		mj := sorted[j].Mean()
		if mi == mj {
			return sorted[i].Skill < sorted[j].Skill
		}
		return mi < mj
	})

	if _, err := fmt.Fprintln(w, "Per-Skill"); err != nil {
		return err
	}
	headers := []string{"Skill", "Avg Score", "Interviews"}
	rows := make([][]string, 0, len(sorted))
	for _, agg := range sorted {
		rows = append(rows, []string{
			agg.Skill,
			fmt.Sprintf("%.1f", agg.Mean()),
			fmt.Sprintf("%d", agg.Count),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLeaderboard prints backend standings as a text table.
func RenderLeaderboard(w io.Writer, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Leaderboard is empty.")
		return err
	}
	headers := []string{"Rank", "Name", "Score", "Interviews", "Region"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Rank),
			e.Name,
			fmt.Sprintf("%.1f", e.Score),
			fmt.Sprintf("%d", e.Sessions),
			e.Region,
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
