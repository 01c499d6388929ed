package tui

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/guessnumber/guessnumber/internal/config"
	"github.com/guessnumber/guessnumber/internal/log"
)

var errTest = errors.New("read-only filesystem")

func fmtInt(n int) string {
	return strconv.Itoa(n)
}

func TestRunFallbackScriptedGame(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(nil, sink)
	target := m.Session.Target()

	input := strings.Join([]string{
		fmtInt(target - 1),
		fmtInt(target + 1),
		"oops",
		fmtInt(target),
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := RunFallback(m, strings.NewReader(input), &out); err != nil {
		t.Fatalf("RunFallback failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Guess a number between 0 and 100.",
		fmtInt(target-1) + " is too low",
		fmtInt(target+1) + " is too high",
		`"oops" is not a whole number`,
		"Correct! Starting the next round.",
		"Rounds won: 1. Bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if sink.events[0].Mode != ModeFallback {
		t.Errorf("mode = %q, want %q", sink.events[0].Mode, ModeFallback)
	}
	last := sink.events[len(sink.events)-1]
	if last.Event != log.EventGameEnded || last.Won != 1 {
		t.Errorf("last event = %+v, want game_ended with won=1", last)
	}
}

func TestRunFallbackEmptyInput(t *testing.T) {
	m := newTestModel(nil, nil)
	var out bytes.Buffer
	if err := RunFallback(m, strings.NewReader(""), &out); err != nil {
		t.Fatalf("RunFallback failed: %v", err)
	}
	if !strings.Contains(out.String(), "Rounds won: 0. Bye!") {
		t.Errorf("output missing farewell:\n%s", out.String())
	}
}

func TestRunFallbackReportsLogFailureOnce(t *testing.T) {
	sink := &recordingSink{err: errTest}
	m := newTestModel(nil, sink)

	var out bytes.Buffer
	if err := RunFallback(m, strings.NewReader("1\n2\n3\n"), &out); err != nil {
		t.Fatalf("RunFallback failed: %v", err)
	}
	if n := strings.Count(out.String(), "event log disabled"); n != 1 {
		t.Errorf("log warning printed %d times, want 1", n)
	}
}

func TestRunFallbackLocalizesLogWarning(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = config.LanguageChinese
	m := newTestModel(cfg, &recordingSink{err: errTest})

	var out bytes.Buffer
	if err := RunFallback(m, strings.NewReader("1\n"), &out); err != nil {
		t.Fatalf("RunFallback failed: %v", err)
	}
	if !strings.Contains(out.String(), "事件日志已停用：read-only filesystem") {
		t.Errorf("output missing localized log warning:\n%s", out.String())
	}
	if strings.Contains(out.String(), "event log disabled") {
		t.Errorf("output mixes in English warning:\n%s", out.String())
	}
}
