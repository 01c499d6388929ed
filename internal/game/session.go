// Package game holds the guessing session: one secret target and the
// comparison of guesses against it.
package game

import (
	"math/rand"
	"time"
)

// Bounds of the target range, both inclusive.
const (
	MinTarget = 0
	MaxTarget = 100
)

// Outcome is the result of comparing a guess with the target.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// String returns the identifier used in the event log.
func (o Outcome) String() string {
	switch o {
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Session holds the secret target for the current round.
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	rng      *rand.Rand
	target   int
	round    int
	attempts int
}

// New returns a session armed with a target drawn uniformly from
// [MinTarget, MaxTarget]. A nil r uses a time-seeded generator.
func New(r *rand.Rand) *Session {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{rng: r}
	s.arm()
	return s
}

// NewSeeded returns a session whose targets are reproducible for seed.
func NewSeeded(seed int64) *Session {
	return New(rand.New(rand.NewSource(seed)))
}

func (s *Session) arm() {
	s.target = MinTarget + s.rng.Intn(MaxTarget-MinTarget+1)
	s.round++
	s.attempts = 0
}

// Evaluate compares guess with the target. On Correct the session is
// re-armed with a freshly drawn target before returning.
func (s *Session) Evaluate(guess int) Outcome {
	s.attempts++
	switch {
	case guess < s.target:
		return TooLow
	case guess > s.target:
		return TooHigh
	default:
		s.arm()
		return Correct
	}
}

// Target returns the secret for the current round.
func (s *Session) Target() int {
	return s.target
}

// Round returns the 1-based round number.
func (s *Session) Round() int {
	return s.round
}

// Attempts returns how many guesses were evaluated in the current round.
func (s *Session) Attempts() int {
	return s.attempts
}
