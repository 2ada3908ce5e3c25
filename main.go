package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordplay-games/hangman/internal/session"
	"github.com/wordplay-games/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()

	// Default to errors only so log lines do not interleave with gameplay.
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "error")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := session.Config{OnEmptyWords: session.PolicyFromString(os.Getenv("ON_EMPTY_WORDS"))}

	list, err := words.Load(os.Getenv("WORDS_FILE"))
	if err != nil {
		if cfg.OnEmptyWords == session.PolicyExit {
			log.Fatal().Err(err).Msg("failed to load word list")
		}
		log.Warn().Err(err).Msg("word list unavailable; rounds will not start")
		list = nil
	}

	session.New(list, os.Stdin, os.Stdout, cfg).Run()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
