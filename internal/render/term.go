package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/litescript/skyq/internal/query"
)

const (
	dateTitle = "Date"
	gutter    = "  "
	rule      = "─"
)

func writeTerm(w io.Writer, res query.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	if res.Single() {
		bw.WriteString(res.Rows[0].Values[0].Text())
		bw.WriteByte('\n')
		return bw.Flush()
	}

	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	bold := r.NewStyle().Bold(opts.Color)

	header := append([]string{dateTitle}, titles(res)...)
	rows := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = append([]string{row.At.String()}, cells(res, row)...)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	total := lipgloss.Width(gutter) * (len(widths) - 1)
	for _, n := range widths {
		total += n
	}

	line := func(s string) {
		bw.WriteString(strings.TrimRight(s, " "))
		bw.WriteByte('\n')
	}

	line(lipgloss.PlaceHorizontal(total, lipgloss.Center, res.Title))
	line(strings.Repeat(rule, total))
	hdr := make([]string, len(header))
	for i, h := range header {
		hdr[i] = lipgloss.PlaceHorizontal(widths[i], lipgloss.Center, h)
	}
	line(bold.Render(strings.Join(hdr, gutter)))
	line(strings.Repeat(rule, total))
	for _, row := range rows {
		padded := make([]string, len(row))
		for i, c := range row {
			padded[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		}
		line(strings.Join(padded, gutter))
	}
	return bw.Flush()
}

func titles(res query.Result) []string {
	out := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		out[i] = c.Title
	}
	return out
}
