package report

import (
	"strings"
	"testing"
	"time"

	"github.com/guessnumber/guessnumber/internal/log"
)

func at(sec int) time.Time {
	return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(sec) * time.Second)
}

func TestGenerate(t *testing.T) {
	events := []log.LogEvent{
		{Time: at(0), Event: log.EventGameStarted},
		{Time: at(0), Event: log.EventRoundStarted, Round: 1},
		{Time: at(5), Event: log.EventGuessEvaluated, Round: 1, Attempt: 1, Outcome: "too_low"},
		{Time: at(8), Event: log.EventGuessRejected, Round: 1},
		{Time: at(10), Event: log.EventGuessEvaluated, Round: 1, Attempt: 2, Outcome: "too_high"},
		{Time: at(15), Event: log.EventGuessEvaluated, Round: 1, Attempt: 3, Outcome: "correct"},
		{Time: at(15), Event: log.EventRoundStarted, Round: 2},
		{Time: at(20), Event: log.EventGuessEvaluated, Round: 2, Attempt: 1, Outcome: "correct"},
		{Time: at(30), Event: log.EventGameEnded, Won: 2},

		// Second game never logged game_ended.
		{Time: at(100), Event: log.EventGameStarted},
		{Time: at(160), Event: log.EventGuessEvaluated, Round: 1, Attempt: 1, Outcome: "too_low"},
	}

	r := Generate(events)

	if r.Games != 2 {
		t.Errorf("Games = %d, want 2", r.Games)
	}
	if r.RoundsWon != 2 {
		t.Errorf("RoundsWon = %d, want 2", r.RoundsWon)
	}
	if r.Guesses != 5 {
		t.Errorf("Guesses = %d, want 5", r.Guesses)
	}
	if r.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", r.Rejected)
	}
	if r.BestAttempts != 1 {
		t.Errorf("BestAttempts = %d, want 1", r.BestAttempts)
	}
	if r.AvgAttempts != 2 {
		t.Errorf("AvgAttempts = %v, want 2", r.AvgAttempts)
	}
	if r.PlayTime != 90*time.Second {
		t.Errorf("PlayTime = %v, want 1m30s", r.PlayTime)
	}
}

func TestGenerateEmpty(t *testing.T) {
	r := Generate(nil)
	if *r != (Report{}) {
		t.Fatalf("Generate(nil) = %+v, want zero report", *r)
	}
	out := Format(r)
	if strings.Contains(out, "Best round") || strings.Contains(out, "Play time") {
		t.Errorf("empty report should omit win and time lines:\n%s", out)
	}
}

func TestFormat(t *testing.T) {
	r := &Report{Games: 1, RoundsWon: 2, Guesses: 6, BestAttempts: 2, AvgAttempts: 3, PlayTime: 95 * time.Second}
	out := Format(r)
	for _, want := range []string{
		"Rounds won:  2",
		"Best round:  2 guesses",
		"Average:     3.0 guesses",
		"Play time:   1m 35s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 500 * time.Millisecond, want: "< 1s"},
		{d: 42 * time.Second, want: "42s"},
		{d: 5*time.Minute + 32*time.Second, want: "5m 32s"},
		{d: time.Hour + 12*time.Minute + 5*time.Second, want: "1h 12m 5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
