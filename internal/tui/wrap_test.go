package tui

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "fits on one line",
			text:  "tell me about yourself",
			width: 40,
			want:  "tell me about yourself",
		},
		{
			name:  "wraps at word boundary",
			text:  "describe a conflict you resolved",
			width: 18,
			want:  "describe a\nconflict you\nresolved",
		},
		{
			name:  "splits overlong word",
			text:  "abcdefghij",
			width: 4,
			want:  "abcd\nefgh\nij",
		},
		{
			name:  "zero width is passthrough",
			text:  "unchanged text",
			width: 0,
			want:  "unchanged text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if got != tt.want {
				t.Fatalf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapTextSingleSpacing(t *testing.T) {
	got := wrapText("walk me through a time you disagreed with a teammate", 16)
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "  ") {
			t.Fatalf("double space in wrapped line %q", line)
		}
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Fatalf("stray edge space in wrapped line %q", line)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{299, "4:59"},
		{300, "5:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.seconds); got != tt.want {
			t.Fatalf("formatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
