// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/skim/internal/model"
)

// RenderSummary prints aggregate figures for the sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, bestWPM, totalCompletion float64
	var wordsRead int
	var durationMs int64
	for _, s := range sessions {
		wpm, completion := SessionMetrics(s)
		totalWPM += wpm
		totalCompletion += completion
		if wpm > bestWPM {
			bestWPM = wpm
		}
		wordsRead += s.WordsRead
		durationMs += s.DurationMs
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Words read: %d", wordsRead),
		fmt.Sprintf("Time reading: %.1f min", float64(durationMs)/60000.0),
		fmt.Sprintf("Avg WPM: %.1f", totalWPM/count),
		fmt.Sprintf("Best WPM: %.1f", bestWPM),
		fmt.Sprintf("Avg completion: %.1f%%", (totalCompletion/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrend prints a moving-average WPM sparkline across sessions.
func RenderTrend(w io.Writer, sessions []model.SessionAggregate, window int) error {
	if len(sessions) == 0 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i], _ = SessionMetrics(s)
	}
	wpms = MovingAverage(wpms, window)
	if _, err := fmt.Fprintf(w, "WPM trend [%s]\n\n", Sparkline(wpms)); err != nil {
		return err
	}
	return nil
}

// RenderSessionTable prints one row per session.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return nil
	}
	headers := []string{"Date", "Source", "WPM", "Words", "Read", "Eff. WPM"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		wpm, _ := SessionMetrics(s)
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Source,
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%d", s.WordsTotal),
			fmt.Sprintf("%d", s.WordsRead),
			fmt.Sprintf("%.1f", wpm),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
