// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	minTrendWidth       = 10
)

// RenderOverview prints the plain-text stats report: exam history, the net
// trend, and per-subject averages.
func RenderOverview(w io.Writer, report Report) error {
	if len(report.Exams) == 0 {
		_, err := fmt.Fprintln(w, "No exams recorded yet.")
		return err
	}

	headers := []string{"Date", "Temel D/Y/B", "Temel Net", "Klinik D/Y/B", "Klinik Net", "Total Net"}
	rightAlign := map[int]bool{2: true, 4: true, 5: true}
	rows := make([][]string, 0, len(report.Exams))
	for _, e := range report.Exams {
		rows = append(rows, []string{
			e.CreatedAt,
			fmt.Sprintf("%d/%d/%d", e.Theoretical.Correct, e.Theoretical.Wrong, e.Theoretical.Empty),
			fmt.Sprintf("%.2f", e.Theoretical.Net),
			fmt.Sprintf("%d/%d/%d", e.Clinical.Correct, e.Clinical.Wrong, e.Clinical.Empty),
			fmt.Sprintf("%.2f", e.Clinical.Net),
			fmt.Sprintf("%.2f", e.TotalNet()),
		})
	}
	if err := writeLines(w, formatTable(headers, rows, rightAlign)); err != nil {
		return err
	}

	nets := NetSeries(report.Exams)
	if len(nets) > 1 {
		width := trendWidth()
		trend := nets
		if len(trend) > width {
			trend = trend[len(trend)-width:]
		}
		if _, err := fmt.Fprintf(w, "\nNet trend: [%s]  min %.2f  max %.2f\n", Sparkline(trend), minOf(nets), maxOf(nets)); err != nil {
			return err
		}
	}

	if len(report.SubjectAverages) > 0 {
		if _, err := fmt.Fprintln(w, "\nSubjects"); err != nil {
			return err
		}
		subjHeaders := []string{"Category", "Subject", "Exams", "Avg Net", "Best Net"}
		subjAlign := map[int]bool{2: true, 3: true, 4: true}
		subjRows := make([][]string, 0, len(report.SubjectAverages))
		for _, avg := range report.SubjectAverages {
			subjRows = append(subjRows, []string{
				avg.Category,
				avg.Subject,
				fmt.Sprintf("%d", avg.Exams),
				fmt.Sprintf("%.2f", avg.AvgNet),
				fmt.Sprintf("%.2f", avg.BestNet),
			})
		}
		if err := writeLines(w, formatTable(subjHeaders, subjRows, subjAlign)); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func trendWidth() int {
	width := terminalWidth() - len("Net trend: []  min 000.00  max 000.00")
	if width < minTrendWidth {
		width = minTrendWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func minOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maxOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}
