package content

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const sparkChars = " .:-=+*#%@"

// RenderReport prints a summary of p for `content check`.
func RenderReport(w io.Writer, p Portfolio) error {
	title := strings.TrimSpace(p.Hero.Title + " " + p.Hero.Accent)
	if p.Name != "" {
		title = p.Name + " · " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	counts := [][]string{
		{"Stats", fmt.Sprint(len(p.About.Stats))},
		{"Skills", fmt.Sprint(len(p.Skills))},
		{"Projects", fmt.Sprint(len(p.Projects))},
		{"Contact", fmt.Sprint(len(p.Contact))},
	}
	for _, line := range formatTable([]string{"Section", "Items"}, counts, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(p.Skills) > 0 {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		rows := make([][]string, 0, len(p.Skills))
		levels := make([]float64, 0, len(p.Skills))
		for _, s := range p.Skills {
			rows = append(rows, []string{s.Name, s.Category, fmt.Sprintf("%d%%", s.Level)})
			levels = append(levels, float64(s.Level))
		}
		for _, line := range formatTable([]string{"Skill", "Category", "Level"}, rows, map[int]bool{2: true}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Levels: %s\n", Sparkline(levels)); err != nil {
			return err
		}
	}

	if len(p.Projects) > 0 {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		rows := make([][]string, 0, len(p.Projects))
		for _, pr := range p.Projects {
			featured := ""
			if pr.Featured {
				featured = "yes"
			}
			rows = append(rows, []string{pr.Title, fmt.Sprint(len(pr.Technologies)), featured})
		}
		for _, line := range formatTable([]string{"Project", "Tech", "Featured"}, rows, map[int]bool{1: true}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

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
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
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
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := widths[i] - runewidth.StringWidth(cell)
		switch {
		case pad <= 0:
			cells[i] = cell
		case rightAlignCols[i]:
			cells[i] = strings.Repeat(" ", pad) + cell
		default:
			cells[i] = cell + strings.Repeat(" ", pad)
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
