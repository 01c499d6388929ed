// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/guessnumber/guessnumber/internal/config"
	"github.com/guessnumber/guessnumber/internal/game"
	"github.com/guessnumber/guessnumber/internal/locale"
	"github.com/guessnumber/guessnumber/internal/log"
)

// Presentation modes recorded in the game_started event.
const (
	ModeTUI      = "tui"
	ModeFallback = "fallback"
)

// ResultKind classifies a submission for rendering.
type ResultKind int

const (
	ResultTooLow ResultKind = iota
	ResultTooHigh
	ResultCorrect
	ResultRejected
)

// Result is what the presentation layer shows after a submission.
type Result struct {
	Kind    ResultKind
	Guess   int
	Attempt int
	Title   string
	Message string
	Err     error
}

// Model is the state shared by the Bubble Tea app and the line fallback:
// the session, its configuration and the event sink.
type Model struct {
	Cfg     *config.Config
	Session *game.Session
	Printer *message.Printer

	// Won counts rounds finished with a correct guess.
	Won int

	sink   log.Sink
	logErr error
}

// NewModel creates a Model around session. A nil sink discards events.
func NewModel(cfg *config.Config, session *game.Session, sink log.Sink) *Model {
	if sink == nil {
		sink = log.Discard
	}
	return &Model{
		Cfg:     cfg,
		Session: session,
		Printer: locale.Printer(cfg.Language),
		sink:    sink,
	}
}

// Start records the beginning of the game and its first round.
func (m *Model) Start(mode string) {
	m.emit(log.LogEvent{Event: log.EventGameStarted, Mode: mode})
	m.roundStarted()
}

// End records the end of the game.
func (m *Model) End() {
	m.emit(log.LogEvent{Event: log.EventGameEnded, Won: m.Won})
}

// Submit parses text and evaluates it against the session.
// Parse failures never reach the session.
func (m *Model) Submit(text string) Result {
	p := m.Printer
	guess, err := game.ParseGuess(text)
	if err != nil {
		m.emit(log.LogEvent{
			Event: log.EventGuessRejected,
			Round: m.Session.Round(),
			Input: text,
			Error: err.Error(),
		})
		msg := p.Sprintf(locale.KeyEmptyGuess)
		if errors.Is(err, game.ErrInvalidGuess) {
			msg = p.Sprintf(locale.KeyInvalidGuess, strings.TrimSpace(text))
		}
		return Result{Kind: ResultRejected, Title: p.Sprintf(locale.KeyErrorTitle), Message: msg, Err: err}
	}

	round, attempt := m.Session.Round(), m.Session.Attempts()+1
	outcome := m.Session.Evaluate(guess)
	m.emit(log.LogEvent{
		Event:   log.EventGuessEvaluated,
		Round:   round,
		Attempt: attempt,
		Guess:   &guess,
		Outcome: outcome.String(),
	})

	res := Result{Guess: guess, Attempt: attempt, Title: p.Sprintf(locale.KeyCheckTitle)}
	switch outcome {
	case game.TooLow:
		res.Kind = ResultTooLow
		res.Message = p.Sprintf(locale.KeyTooLow, strconv.Itoa(guess))
	case game.TooHigh:
		res.Kind = ResultTooHigh
		res.Message = p.Sprintf(locale.KeyTooHigh, strconv.Itoa(guess))
	case game.Correct:
		res.Kind = ResultCorrect
		res.Title = p.Sprintf(locale.KeyCorrectTitle)
		res.Message = p.Sprintf(locale.KeyCorrect)
		m.Won++
		m.roundStarted()
	}
	return res
}

// Description is the static text shown above the input.
func (m *Model) Description() string {
	return m.Printer.Sprintf(locale.KeyDescription, game.MinTarget, game.MaxTarget)
}

// StatusLine summarizes the current round, plus the target when revealed.
func (m *Model) StatusLine() string {
	s := m.Printer.Sprintf(locale.KeyStatus, m.Session.Round(), m.Session.Attempts())
	if m.Cfg.RevealTarget {
		s += " · " + m.Printer.Sprintf(locale.KeyReveal, m.Session.Target())
	}
	return s
}

// LogErr returns the first event log failure, if any.
func (m *Model) LogErr() error {
	return m.logErr
}

func (m *Model) roundStarted() {
	ev := log.LogEvent{Event: log.EventRoundStarted, Round: m.Session.Round()}
	if m.Cfg.RevealTarget {
		target := m.Session.Target()
		ev.Target = &target
	}
	m.emit(ev)
}

// emit appends to the sink. Failures are kept, not returned: the game goes on.
func (m *Model) emit(ev log.LogEvent) {
	if err := m.sink.Append(ev); err != nil && m.logErr == nil {
		m.logErr = err
	}
}
