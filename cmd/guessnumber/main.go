// Command guessnumber is a terminal number-guessing game.
package main

import "github.com/guessnumber/guessnumber/internal/cli"

func main() {
	cli.Execute()
}
