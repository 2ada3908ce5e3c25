// internal/render/render.go
//
// Presentation helpers for the console game: the progressive gallows
// illustration, the win art, the turn separator, and the per-turn status
// block. Display-only; nothing here feeds state back into the engine.
package render

import (
	"fmt"
	"strings"
)

// gallowsStages holds one picture per error count, 0 through 6.
var gallowsStages = [...]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

const winArt = `
   \O/
    |    ПОБЕДА!
   / \
=========`

// Stages is the number of distinct gallows pictures.
const Stages = len(gallowsStages)

// Gallows returns the illustration for errorCount wrong guesses.
// Out-of-range counts clamp to the nearest stage.
func Gallows(errorCount int) string {
	if errorCount < 0 {
		errorCount = 0
	}
	if errorCount >= Stages {
		errorCount = Stages - 1
	}
	return gallowsStages[errorCount]
}

// WinArt returns the fixed success illustration.
func WinArt() string { return winArt }

// Separator returns the rule printed between turns.
func Separator() string { return strings.Repeat("-", 40) }

// Snapshot composes the per-turn status block: gallows, mask, remaining
// attempts, and the letters used so far.
func Snapshot(errorCount int, mask string, remaining int, used []string) string {
	return fmt.Sprintf("%s\nWord: %s\nAttempts left: %d\nUsed letters: %s\n",
		Gallows(errorCount), mask, remaining, strings.Join(used, ", "))
}
