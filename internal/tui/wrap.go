// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type word struct {
	s     string
	width int
}

func splitWords(text string) []word {
	fields := strings.Fields(text)
	words := make([]word, 0, len(fields))
	for _, f := range fields {
		words = append(words, word{s: f, width: runewidth.StringWidth(f)})
	}
	return words
}

// wrapText breaks text into lines of at most width cells. Words wider than
// a line are hard-broken.
func wrapText(text string, width int) []string {
	words := splitWords(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{joinWords(words)}
	}
	var lines []string
	var line []word
	lineWidth := 0

	for i := 0; i < len(words); {
		w := words[i]
		gap := 0
		if len(line) > 0 {
			gap = 1
		}
		if lineWidth+gap+w.width > width {
			if len(line) > 0 {
				lines = append(lines, joinWords(line))
				line = line[:0]
				lineWidth = 0
				continue
			}
			head, tail := breakWord(w.s, width)
			lines = append(lines, head)
			words[i] = word{s: tail, width: runewidth.StringWidth(tail)}
			continue
		}
		line = append(line, w)
		lineWidth += gap + w.width
		i++
	}
	if len(line) > 0 {
		lines = append(lines, joinWords(line))
	}
	return lines
}

func breakWord(s string, width int) (string, string) {
	var b strings.Builder
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && used > 0 {
			return b.String(), s[i:]
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String(), ""
}

func joinWords(words []word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.s)
	}
	return b.String()
}

// joinWrapped lays out items separated by sep, wrapping between items.
func joinWrapped(items []string, sep string, width int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0
	sepWidth := runewidth.StringWidth(sep)
	for _, item := range items {
		w := runewidth.StringWidth(item)
		if curWidth > 0 && curWidth+sepWidth+w > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteString(sep)
			curWidth += sepWidth
		}
		cur.WriteString(item)
		curWidth += w
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
