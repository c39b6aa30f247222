package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dgraph-io/badger"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/kodekulture/wordguess/internal/config"
	"github.com/kodekulture/wordguess/repository"
	"github.com/kodekulture/wordguess/repository/badgr"
	"github.com/kodekulture/wordguess/repository/temp"
	"github.com/kodekulture/wordguess/service"
	"github.com/kodekulture/wordguess/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	closeLog := setupLogging(cfg.Log)
	defer closeLog()
	zlog.Info().Msg("setting up WordGuess")

	cache, closeCache := getCacher(cfg.Cache)
	defer closeCache()

	srv, err := service.New(cfg.Game, cache)
	if err != nil {
		zlog.Err(err).Msg("failed to load dictionary")
		closeCache()
		log.Fatal(err)
	}
	defer srv.Stop()

	scr, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err = scr.Init(); err != nil {
		log.Fatal(err)
	}
	go forwardSignals(scr)

	err = tui.New(scr, srv, tui.NewPalette(cfg.UI.Accessible)).Run()

	// the screen must be released before anything is printed
	scr.Fini()
	fmt.Println("Shutting down WordGuess.")
	if err != nil {
		zlog.Err(err).Msg("session ended with an error")
		fmt.Println("Got an error, is the window big enough?")
	}
}

// setupLogging points zerolog at the configured log file, or silences it.
// Logs can never share the terminal with the game screen.
func setupLogging(cfg config.Log) func() {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if cfg.File == "" {
		zlog.Logger = zlog.Output(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
	return func() { _ = f.Close() }
}

// getCacher opens the badger-backed dictionary cache. Any failure degrades
// to an in-memory cache; a broken cache never stops the game.
func getCacher(cfg config.Cache) (repository.Dictionary, func()) {
	if cfg.Disabled {
		return temp.NewDictionaryRepo(), func() {}
	}
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			zlog.Warn().Err(err).Msg("no user cache dir, dictionary cache disabled")
			return temp.NewDictionaryRepo(), func() {}
		}
		dir = filepath.Join(base, "wordguess")
	}
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		zlog.Warn().Err(err).Str("dir", dir).Msg("failed to open dictionary cache")
		return temp.NewDictionaryRepo(), func() {}
	}
	return badgr.New(db), func() { _ = db.Close() }
}

// forwardSignals turns SIGINT/SIGTERM into an interrupt event so the game
// loop unwinds and the terminal is restored.
func forwardSignals(scr tcell.Screen) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sig
	_ = scr.PostEvent(tcell.NewEventInterrupt(nil))
}
