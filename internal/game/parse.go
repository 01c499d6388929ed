package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyGuess is returned when the input holds nothing but whitespace.
	ErrEmptyGuess = errors.New("empty guess")

	// ErrInvalidGuess is returned when the input is not a base-10 integer.
	ErrInvalidGuess = errors.New("guess is not a whole number")
)

// ParseGuess converts raw user input into a guess.
func ParseGuess(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyGuess
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, text)
	}
	return n, nil
}
