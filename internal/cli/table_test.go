package cli

import (
	"strings"
	"testing"
)

func TestTableAddRowNormalisesLength(t *testing.T) {
	table := NewTable([]string{"NAME", "HEX"})
	table.AddRow([]string{"Snow White"})
	table.AddRow([]string{"Soot Black", "#2B2B2B", "extra"})

	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[0][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[0][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "HEX"})
	table.AddRow([]string{"Dalamud Red", "#781A1A"})
	table.AddRow([]string{"Ink Blue", "#1A1F3C"})

	want := "NAME         HEX\n" +
		"-----------  -------\n" +
		"Dalamud Red  #781A1A\n" +
		"Ink Blue     #1A1F3C\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresANSIWidth(t *testing.T) {
	block := "\033[48;2;120;26;26m    \033[0m"
	table := NewTable([]string{"", "NAME"})
	table.AddRow([]string{block, "Dalamud Red"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "----  -----------" {
		t.Errorf("rule = %q, want swatch column width 4", lines[1])
	}
	if !strings.HasPrefix(lines[2], block+"  Dalamud Red") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableRenderWrapsColumn(t *testing.T) {
	table := NewTable([]string{"PATTERN", "DESCRIPTION"})
	table.SetColumnMaxWidth(1, 12)
	table.AddRow([]string{"triadic", "three evenly spaced hues"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if strings.TrimSpace(lines[3]) != "spaced hues" {
		t.Errorf("continuation line = %q", lines[3])
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"120°", 4},
		{"\033[48;2;1;2;3m  \033[0m", 2},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.in); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"words", "one two three", 7, []string{"one two", "three"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"no limit", "anything at all", 0, []string{"anything at all"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
