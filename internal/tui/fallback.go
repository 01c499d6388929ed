// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/guessnumber/guessnumber/internal/locale"
)

// RunFallback plays the game line by line when stdout is not a terminal.
// Each line of in is one guess; EOF ends the game without error.
func RunFallback(m *Model, in io.Reader, out io.Writer) error {
	p := m.Printer
	m.Start(ModeFallback)

	fmt.Fprintln(out, m.Description())
	if m.Cfg.RevealTarget {
		fmt.Fprintln(out, m.StatusLine())
	}

	reported := false
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, p.Sprintf(locale.KeyPrompt))
		if !scanner.Scan() {
			break
		}
		res := m.Submit(scanner.Text())
		fmt.Fprintln(out, res.Message)
		if res.Kind == ResultCorrect && m.Cfg.RevealTarget {
			fmt.Fprintln(out, m.StatusLine())
		}
		if err := m.LogErr(); err != nil && !reported {
			fmt.Fprintln(out, p.Sprintf(locale.KeyLogDisabled, err))
			reported = true
		}
	}
	fmt.Fprintln(out)

	m.End()
	fmt.Fprintln(out, p.Sprintf(locale.KeyFarewell, m.Won))

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading guesses: %w", err)
	}
	return nil
}
