// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/skim/internal/playback"
)

// frame assembles a full-screen view line by line, mirroring a
// cursor-addressed terminal layout.
type frame struct {
	width int
	lines []string
}

func newFrame(width, height int) *frame {
	return &frame{width: width, lines: make([]string, height)}
}

func (f *frame) setLine(row int, content string) {
	if row < 0 || row >= len(f.lines) {
		return
	}
	f.lines[row] = content
}

// setAnchored places content so that its anchor column (display width
// of the part left of the anchor point) sits on the frame's center
// column.
func (f *frame) setAnchored(row int, content string, anchor int) {
	pad := f.width/2 - anchor
	if pad < 0 {
		pad = 0
	}
	f.setLine(row, strings.Repeat(" ", pad)+content)
}

func (f *frame) setCentered(row int, content string) {
	pad := (f.width - lipgloss.Width(content)) / 2
	if pad < 0 {
		pad = 0
	}
	f.setLine(row, strings.Repeat(" ", pad)+content)
}

func (f *frame) String() string {
	return strings.Join(f.lines, "\n")
}

// styleWord renders one word and returns it with its anchor column:
// the display width left of the ORP rune in focus mode, half the word
// width otherwise.
func styleWord(word string, focus bool) (string, int) {
	runes := []rune(word)
	if !focus {
		return wordStyle.Render(word), runewidth.StringWidth(word) / 2
	}
	orp := orpIndexFor(runes)
	prefix := string(runes[:orp])
	rest := string(runes[orp+1:])
	styled := wordStyle.Render(prefix) + orpStyle.Render(string(runes[orp])) + wordStyle.Render(rest)
	return styled, runewidth.StringWidth(prefix)
}

func orpIndexFor(runes []rune) int {
	idx := playback.ORPIndex(len(runes))
	if idx >= len(runes) {
		idx = len(runes) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
