// Package locale registers the game's user-visible strings with
// golang.org/x/text/message and hands out printers per language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Values are format strings in every locale.
// Guesses are passed pre-formatted as %s so the printer does not
// group their digits.
const (
	KeyTitle        = "title"
	KeyDescription  = "description"
	KeyPlaceholder  = "placeholder"
	KeyCheckTitle   = "check_title"
	KeyCorrectTitle = "correct_title"
	KeyErrorTitle   = "error_title"
	KeyTooLow       = "too_low"
	KeyTooHigh      = "too_high"
	KeyCorrect      = "correct"
	KeyEmptyGuess   = "empty_guess"
	KeyInvalidGuess = "invalid_guess"
	KeyStatus       = "status"
	KeyReveal       = "reveal"
	KeyDismiss      = "dismiss"
	KeyPrompt       = "prompt"
	KeyFarewell     = "farewell"
	KeyCtrlCAgain   = "ctrl_c_again"
	KeyLogDisabled  = "log_disabled"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyTitle:        "Guess the Number",
		KeyDescription:  "Guess a number between %d and %d.",
		KeyPlaceholder:  "Type your guess...",
		KeyCheckTitle:   "Check answer",
		KeyCorrectTitle: "Congratulations",
		KeyErrorTitle:   "Invalid input",
		KeyTooLow:       "%s is too low",
		KeyTooHigh:      "%s is too high",
		KeyCorrect:      "Correct! Starting the next round.",
		KeyEmptyGuess:   "Please enter a guess",
		KeyInvalidGuess: "%q is not a whole number",
		KeyStatus:       "Round %d · %d attempts",
		KeyReveal:       "target %d",
		KeyDismiss:      "enter to continue",
		KeyPrompt:       "guess> ",
		KeyFarewell:     "Rounds won: %d. Bye!",
		KeyCtrlCAgain:   "Press Ctrl+C again to exit",
		KeyLogDisabled:  "event log disabled: %v",
	},
	language.Chinese: {
		KeyTitle:        "猜数字",
		KeyDescription:  "猜一个 %d 到 %d 之间的整数。",
		KeyPlaceholder:  "输入你的答案...",
		KeyCheckTitle:   "检查答案",
		KeyCorrectTitle: "恭喜",
		KeyErrorTitle:   "输入有误",
		KeyTooLow:       "%s 小了",
		KeyTooHigh:      "%s 大了",
		KeyCorrect:      "回答正确，进入下一轮！",
		KeyEmptyGuess:   "请输入一个数",
		KeyInvalidGuess: "%q 不是整数",
		KeyStatus:       "第 %d 轮 · 已猜 %d 次",
		KeyReveal:       "答案 %d",
		KeyDismiss:      "按回车继续",
		KeyPrompt:       "猜> ",
		KeyFarewell:     "共猜中 %d 轮，再见！",
		KeyCtrlCAgain:   "再按一次 Ctrl+C 退出",
		KeyLogDisabled:  "事件日志已停用：%v",
	},
}

func init() {
	if err := register(); err != nil {
		panic(err)
	}
}

func register() error {
	for tag, messages := range catalogs {
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}
	return nil
}

// Tag maps a configured language code to a catalog tag.
// Anything other than Chinese falls back to English.
func Tag(lang string) language.Tag {
	base, _ := language.Make(lang).Base()
	if chinese, _ := language.Chinese.Base(); base == chinese {
		return language.Chinese
	}
	return language.English
}

// Printer returns a message printer for the configured language code.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang))
}
