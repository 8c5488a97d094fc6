package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/natmcc/pairs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := pairs.LoadConfig()
	if err != nil {
		fail(err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	in := bufio.NewReader(os.Stdin)
	rows, cols := pairs.StartupDimensions(in, os.Stdout, cfg.Rows, cfg.Cols)

	game, err := pairs.NewGame(pairs.GameOpts{
		Rows:   rows,
		Cols:   cols,
		In:     in,
		Out:    os.Stdout,
		Logger: &logger,
	})
	if err != nil {
		fail(err)
	}

	if err := game.Play(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
