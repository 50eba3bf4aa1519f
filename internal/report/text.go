package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// TextFormatter writes an aligned table, one row per record. With Color set,
// the header is bold, very concrete averages green, very abstract ones
// yellow and errors red. Explain breakdowns follow the table.
type TextFormatter struct {
	Color bool
}

var header = []string{"NAME", "TOKENS", "RATED", "AVERAGE", "CONCRETE", "ABSTRACT", "RATIO"}

func (f *TextFormatter) Format(w io.Writer, records []Record) error {
	bold := f.paint(color.Bold)
	red := f.paint(color.FgRed)
	green := f.paint(color.FgGreen)
	yellow := f.paint(color.FgYellow)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		if r.Err != nil {
			rows = append(rows, []string{r.Name, "error: " + r.Err.Error()})
			continue
		}
		res := r.Result
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(res.Tokens),
			strconv.Itoa(res.Rated),
			FormatValue(res.Average),
			strconv.Itoa(res.Concrete),
			strconv.Itoa(res.Abstract),
			FormatValue(res.Ratio),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		if len(row) != len(header) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if _, err := fmt.Fprintln(w, bold.Sprint(joinRow(header, widths))); err != nil {
		return err
	}
	for i, row := range rows {
		var line string
		switch {
		case len(row) != len(header):
			line = runewidth.FillRight(row[0], widths[0]) + "  " + red.Sprint(row[1])
		default:
			line = joinRow(row, widths)
			avg := records[i].Result.Average
			thresholds := records[i].Result.Thresholds
			if records[i].Result.Rated > 0 && avg >= thresholds.VeryConcrete {
				line = green.Sprint(line)
			} else if records[i].Result.Rated > 0 && avg <= thresholds.VeryAbstract {
				line = yellow.Sprint(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, r := range records {
		if r.Err != nil || len(r.Result.Breakdown) == 0 {
			continue
		}
		if err := writeBreakdown(w, bold.Sprint(r.Name), r); err != nil {
			return err
		}
	}
	return nil
}

func writeBreakdown(w io.Writer, title string, r Record) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	width := 0
	for _, tr := range r.Result.Breakdown {
		width = max(width, runewidth.StringWidth(tr.Token))
	}
	for _, tr := range r.Result.Breakdown {
		if _, err := fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(tr.Token, width), tr.Rating); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if f.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func joinRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == 0 {
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		} else {
			b.WriteString(runewidth.FillLeft(cell, widths[i]))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
