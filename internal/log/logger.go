// Package log provides structured event logging.
// This file appends JSON events to .guessnumber/log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventGameStarted    = "game_started"
	EventRoundStarted   = "round_started"
	EventGuessEvaluated = "guess_evaluated"
	EventGuessRejected  = "guess_rejected"
	EventGameEnded      = "game_ended"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Round   int       `json:"round,omitempty"`
	Attempt int       `json:"attempt,omitempty"`
	Guess   *int      `json:"guess,omitempty"`
	Target  *int      `json:"target,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
	Input   string    `json:"input,omitempty"`
	Mode    string    `json:"mode,omitempty"`
	Won     int       `json:"won,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Sink receives game events. *Logger and Discard implement it.
type Sink interface {
	Append(event LogEvent) error
}

type discard struct{}

func (discard) Append(LogEvent) error { return nil }

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .guessnumber/log.jsonl inside dir.
// Creates the .guessnumber/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	logDir := filepath.Join(dir, ".guessnumber")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create .guessnumber directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(logDir, "log.jsonl"),
	}, nil
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// The file is opened in append mode, written to, and then closed.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
