// internal/game/engine.go
//
// Round engine for a single hangman round.
// Responsibilities:
//   - Create rounds with an all-placeholder mask and a fixed error budget.
//   - Easy mode: pre-reveal letters picked by occurrence count.
//   - Validate and apply guesses (one letter, А–Я or Ё, no repeats).
//   - Track state transitions: playing → win/loss.
//
// Notes:
//   - Secret words are supplied by the words package; a non-empty secret is
//     a precondition, not something the engine recovers from.
//   - Every operation is a plain deterministic state transition; the only
//     randomness is the Easy-mode letter sampling in NewRound.
package game

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Placeholder is the mask symbol for an unrevealed letter position.
const Placeholder = '_'

const (
	defaultMaxErrors = 6
	easyReveals      = 2
)

// NewRound constructs a fresh round around secret. The secret is trimmed
// and upper-cased; the mask starts fully hidden.
//
// Easy mode pre-reveal policy, applied before the first guess:
//   - ≥2 letters occurring exactly once → reveal 2 of them, picked uniformly
//     without replacement.
//   - otherwise, any letter occurring exactly twice → reveal 1 such letter.
//   - otherwise nothing qualifies and the round silently downgrades to
//     Normal (observable via Round.Mode).
//
// Pre-revealed letters count as guessed so resubmitting them is a duplicate.
func NewRound(secret string, mode Mode) *Round {
	r := &Round{
		ID:        uuid.NewString(),
		Secret:    strings.ToUpper(strings.TrimSpace(secret)),
		MaxErrors: defaultMaxErrors,
		Mode:      mode,
		guessed:   make(map[rune]struct{}),
	}

	runes := []rune(r.Secret)
	r.mask = make([]rune, len(runes))
	for i := range r.mask {
		r.mask[i] = Placeholder
	}

	if mode == ModeEasy {
		letters := pickEasyLetters(r.Secret)
		if len(letters) == 0 {
			r.Mode = ModeNormal
		}
		for _, l := range letters {
			r.reveal(l)
			r.guessed[l] = struct{}{}
		}
	}
	return r
}

// SubmitGuess validates one raw player input and applies it to the round.
//
// Validation rules:
//   - Round must not be finished.
//   - Input must normalize (trim, upper-case) to exactly one supported
//     letter: А–Я, or Ё as a standalone letter.
//   - The letter must not have been guessed before.
//
// Rejected guesses never mutate state and never cost an attempt.
func (r *Round) SubmitGuess(input string) GuessResult {
	if r.Finished() {
		return GuessRejectedInvalid
	}
	letter, ok := normalizeLetter(input)
	if !ok {
		return GuessRejectedInvalid
	}
	if _, dup := r.guessed[letter]; dup {
		return GuessRejectedDuplicate
	}

	r.guessed[letter] = struct{}{}
	if strings.ContainsRune(r.Secret, letter) {
		r.reveal(letter)
		return GuessHit
	}
	r.ErrorCount++
	return GuessMiss
}

// Finished reports whether the round has terminated: the error budget is
// exhausted, or no placeholder remains in the mask.
func (r *Round) Finished() bool {
	if r.ErrorCount >= r.MaxErrors {
		return true
	}
	for _, c := range r.mask {
		if c == Placeholder {
			return false
		}
	}
	return true
}

// Outcome reports the terminal result. Only meaningful once Finished()
// is true; the error budget is checked first so a loss wins any tie.
func (r *Round) Outcome() Outcome {
	if r.ErrorCount >= r.MaxErrors {
		return OutcomeLoss
	}
	return OutcomeWin
}

// Mask returns the player-visible mask, positions separated by spaces.
func (r *Round) Mask() string {
	parts := make([]string, len(r.mask))
	for i, c := range r.mask {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// GuessedLetters returns every accepted guess, sorted for stable display.
func (r *Round) GuessedLetters() []string {
	out := make([]string, 0, len(r.guessed))
	for l := range r.guessed {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return out
}

// Remaining reports how many wrong guesses are left before the round is lost.
func (r *Round) Remaining() int { return r.MaxErrors - r.ErrorCount }

// reveal writes letter into the mask at every position it occupies in the
// secret. No-op for absent letters.
func (r *Round) reveal(letter rune) {
	for i, c := range []rune(r.Secret) {
		if c == letter {
			r.mask[i] = letter
		}
	}
}

// pickEasyLetters selects the Easy-mode pre-reveal set for secret:
// two distinct single-occurrence letters when possible, else one letter
// occurring exactly twice, else nothing.
func pickEasyLetters(secret string) []rune {
	counts := make(map[rune]int)
	for _, c := range secret {
		counts[c]++
	}

	var singles, doubles []rune
	for l, n := range counts {
		switch n {
		case 1:
			singles = append(singles, l)
		case 2:
			doubles = append(doubles, l)
		}
	}

	if len(singles) >= easyReveals {
		rand.Shuffle(len(singles), func(i, j int) {
			singles[i], singles[j] = singles[j], singles[i]
		})
		return singles[:easyReveals]
	}
	if len(doubles) > 0 {
		return []rune{doubles[rand.Intn(len(doubles))]}
	}
	return nil
}

// normalizeLetter maps raw player input to a single uppercase letter.
// Returns ok=false for anything that is not exactly one supported letter.
func normalizeLetter(s string) (rune, bool) {
	rs := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(rs) != 1 || !isSupportedLetter(rs[0]) {
		return 0, false
	}
	return rs[0], true
}

// isSupportedLetter reports whether c is an uppercase Russian letter.
// Ё sits outside the contiguous А–Я block and is accepted explicitly.
func isSupportedLetter(c rune) bool {
	return (c >= 'А' && c <= 'Я') || c == 'Ё'
}
