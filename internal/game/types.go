// internal/game/types.go
//
// Core type definitions for the hangman round engine.
// Defines:
//   - Mode: round variant (easy/normal).
//   - GuessResult: per-guess outcome (hit/miss/rejected).
//   - Outcome: terminal result of a finished round (win/loss).
//   - Round: state for a single in-progress or finished round.

package game

// Mode selects the round variant.
// Easy pre-reveals one or two letters before the first guess;
// Normal starts with a fully hidden word.
type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeNormal Mode = "normal"
)

// GuessResult is the discriminated outcome of a single submitted guess.
// Possible values:
//   - "hit":       letter is in the secret; mask positions revealed.
//   - "miss":      letter is absent; error count incremented.
//   - "invalid":   input is not a single supported letter; state unchanged.
//   - "duplicate": letter was already guessed; state unchanged.
type GuessResult string

const (
	GuessHit               GuessResult = "hit"
	GuessMiss              GuessResult = "miss"
	GuessRejectedInvalid   GuessResult = "invalid"
	GuessRejectedDuplicate GuessResult = "duplicate"
)

// Rejected reports whether the guess left the round state untouched.
func (g GuessResult) Rejected() bool {
	return g == GuessRejectedInvalid || g == GuessRejectedDuplicate
}

// Outcome is the terminal result of a round. Valid only once Finished()
// reports true.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Round holds the state of a single hangman round. Create with NewRound;
// the zero value is not usable. The secret is fixed for the lifetime of
// the round and the mask only ever moves toward it.
type Round struct {
	ID         string // Unique round identifier (UUID, for log correlation).
	Secret     string // The hidden word (always uppercase).
	ErrorCount int    // Wrong guesses so far; never exceeds MaxErrors.
	MaxErrors  int    // Error budget; reaching it loses the round.
	Mode       Mode   // Effective mode; Easy downgrades to Normal when nothing qualifies for pre-reveal.

	mask    []rune            // per-position: Placeholder or the secret's rune
	guessed map[rune]struct{} // accepted (valid, non-duplicate) guesses
}
