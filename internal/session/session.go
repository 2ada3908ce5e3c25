// internal/session/session.go
//
// Menu and round orchestration for the console game.
// Responsibilities:
//   - Main menu loop: easy round, normal round, exit.
//   - Round driver: feed raw input lines to the engine, render each turn,
//     and report a typed RoundResult (won/lost/aborted) to the caller.
//   - Apply the empty-word-source policy (exit vs. return to menu).
//
// Notes:
//   - I/O is injected (io.Reader/io.Writer) so scripted games are testable.
//   - The engine owns all validation; the session only relays raw lines.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordplay-games/hangman/internal/game"
	"github.com/wordplay-games/hangman/internal/render"
	"github.com/wordplay-games/hangman/internal/words"
)

// RoundResult is the discriminated outcome of one driven round.
type RoundResult string

const (
	RoundWon     RoundResult = "won"
	RoundLost    RoundResult = "lost"
	RoundAborted RoundResult = "aborted" // input gone or no words to play
)

// EmptyWordsPolicy decides what an unavailable word source means for the
// program: a fatal setup error, or a recoverable return to the menu.
type EmptyWordsPolicy string

const (
	PolicyExit EmptyWordsPolicy = "exit"
	PolicyMenu EmptyWordsPolicy = "menu"
)

// PolicyFromString maps a config value to a policy, defaulting to exit.
func PolicyFromString(s string) EmptyWordsPolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyMenu)) {
		return PolicyMenu
	}
	return PolicyExit
}

// Config carries session-level knobs.
type Config struct {
	OnEmptyWords EmptyWordsPolicy
}

// Session drives menus and rounds over the given I/O pair.
// list may be nil when the word source failed and the policy is PolicyMenu;
// rounds then abort back to the menu instead of starting.
type Session struct {
	list *words.List
	in   *bufio.Scanner
	out  io.Writer
	cfg  Config
}

// New constructs a Session reading player input from in and writing all
// game output to out.
func New(list *words.List, in io.Reader, out io.Writer, cfg Config) *Session {
	return &Session{list: list, in: bufio.NewScanner(in), out: out, cfg: cfg}
}

const menuText = `Welcome to Hangman!
Would you like to start a new game?

[1] Yes, in easy mode (2 letters revealed up front)
[2] Yes, in normal mode (no letters revealed)
[3] No`

// Run executes the menu loop until the player exits or input runs out.
func (s *Session) Run() {
	for {
		fmt.Fprintln(s.out, menuText)
		fmt.Fprint(s.out, "Enter a number: ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			s.PlayRound(game.ModeEasy)
		case "2":
			s.PlayRound(game.ModeNormal)
		case "3":
			fmt.Fprintln(s.out, "Come back soon, the game will miss you!")
			return
		default:
			fmt.Fprintln(s.out, "Please enter one of: 1, 2, 3.")
		}
	}
}

// PlayRound draws a secret word, runs one full round, and returns its
// typed result. An exhausted input source aborts the round.
func (s *Session) PlayRound(mode game.Mode) RoundResult {
	if s.list == nil || s.list.Len() == 0 {
		fmt.Fprintln(s.out, "No words are available; returning to the menu.")
		log.Warn().Str("policy", string(s.cfg.OnEmptyWords)).Msg("round requested with empty word source")
		return RoundAborted
	}

	r := game.NewRound(s.list.Random(), mode)
	log.Info().
		Str("round", r.ID).
		Str("mode", string(r.Mode)).
		Int("length", len([]rune(r.Secret))).
		Msg("round started")

	if mode == game.ModeEasy && r.Mode == game.ModeNormal {
		fmt.Fprintln(s.out, "No letters qualify for easy mode; starting in normal mode.")
	}

	fmt.Fprintln(s.out, render.Separator())
	fmt.Fprintln(s.out, "The game is on! Name a letter you think is in the hidden word.")

	for !r.Finished() {
		fmt.Fprintln(s.out, render.Separator())
		fmt.Fprint(s.out, render.Snapshot(r.ErrorCount, r.Mask(), r.Remaining(), r.GuessedLetters()))
		fmt.Fprint(s.out, "Your letter (one Russian letter): ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			log.Warn().Str("round", r.ID).Msg("input source exhausted mid-round")
			return RoundAborted
		}
		fmt.Fprintln(s.out, render.Separator())

		res := r.SubmitGuess(line)
		log.Debug().
			Str("round", r.ID).
			Str("result", string(res)).
			Int("errors", r.ErrorCount).
			Msg("guess")

		switch res {
		case game.GuessRejectedInvalid:
			fmt.Fprintln(s.out, "Invalid input. Enter exactly one letter of the Russian alphabet.")
		case game.GuessRejectedDuplicate:
			fmt.Fprintln(s.out, "You already tried that letter; pick another one!")
		case game.GuessHit:
			fmt.Fprintln(s.out, "Correct, that letter is in the word!")
		case game.GuessMiss:
			fmt.Fprintln(s.out, "Sorry, that letter is not in the word.")
		}
	}
	return s.finishRound(r)
}

// finishRound prints the terminal screen and logs the outcome.
func (s *Session) finishRound(r *game.Round) RoundResult {
	defer fmt.Fprintln(s.out, render.Separator())

	if r.Outcome() == game.OutcomeLoss {
		fmt.Fprintf(s.out, "You are out of attempts. The word was: %s\n%s\n",
			r.Secret, render.Gallows(r.ErrorCount))
		log.Info().Str("round", r.ID).Str("outcome", string(game.OutcomeLoss)).Msg("round finished")
		return RoundLost
	}
	fmt.Fprintf(s.out, "Congratulations, you guessed the word: %s\n%s\n",
		r.Secret, render.WinArt())
	log.Info().Str("round", r.ID).Str("outcome", string(game.OutcomeWin)).Msg("round finished")
	return RoundWon
}

// readLine returns the next input line, or ok=false when the source is
// exhausted.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
