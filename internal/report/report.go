// Package report summarizes past games from the JSONL event log.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/guessnumber/guessnumber/internal/log"
)

// Report holds aggregated statistics over every game in the event log.
type Report struct {
	Games        int
	RoundsWon    int
	Guesses      int
	Rejected     int
	BestAttempts int // fewest guesses in a won round, 0 if none won
	AvgAttempts  float64
	PlayTime     time.Duration
}

// Generate builds a Report from log events in file order.
func Generate(events []log.LogEvent) *Report {
	r := &Report{}
	totalAttempts := 0

	for _, e := range events {
		switch e.Event {
		case log.EventGameStarted:
			r.Games++
		case log.EventGuessRejected:
			r.Rejected++
		case log.EventGuessEvaluated:
			r.Guesses++
			if e.Outcome != "correct" {
				continue
			}
			r.RoundsWon++
			totalAttempts += e.Attempt
			if r.BestAttempts == 0 || e.Attempt < r.BestAttempts {
				r.BestAttempts = e.Attempt
			}
		}
	}

	if r.RoundsWon > 0 {
		r.AvgAttempts = float64(totalAttempts) / float64(r.RoundsWon)
	}
	r.PlayTime = computePlayTime(events)
	return r
}

// computePlayTime sums the span of each game, from game_started to its
// game_ended event. A game without game_ended (the process was killed)
// ends at its last event.
func computePlayTime(events []log.LogEvent) time.Duration {
	var total time.Duration
	var start, last time.Time

	flush := func() {
		if !start.IsZero() && last.After(start) {
			total += last.Sub(start)
		}
		start, last = time.Time{}, time.Time{}
	}

	for _, e := range events {
		switch e.Event {
		case log.EventGameStarted:
			flush()
			start, last = e.Time, e.Time
		case log.EventGameEnded:
			last = e.Time
			flush()
		default:
			if !start.IsZero() {
				last = e.Time
			}
		}
	}
	flush()

	return total
}

// Format renders the report as plain text.
func Format(r *Report) string {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("  Guess the Number: Stats\n")
	b.WriteString("========================================\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Games:       %d\n", r.Games)
	fmt.Fprintf(&b, "Rounds won:  %d\n", r.RoundsWon)
	fmt.Fprintf(&b, "Guesses:     %d\n", r.Guesses)
	if r.Rejected > 0 {
		fmt.Fprintf(&b, "  Rejected:  %d\n", r.Rejected)
	}
	b.WriteString("\n")

	if r.RoundsWon > 0 {
		fmt.Fprintf(&b, "Best round:  %d guesses\n", r.BestAttempts)
		fmt.Fprintf(&b, "Average:     %.1f guesses\n", r.AvgAttempts)
		b.WriteString("\n")
	}

	if r.PlayTime > 0 {
		fmt.Fprintf(&b, "Play time:   %s\n", formatDuration(r.PlayTime))
	}

	b.WriteString("========================================\n")

	return b.String()
}

// formatDuration produces a human-readable duration string such as "5m 32s"
// or "1h 12m 5s". Sub-second durations are shown as "< 1s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
