package service

import (
	"errors"

	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordguess/game"
	"github.com/kodekulture/wordguess/game/word"
	"github.com/kodekulture/wordguess/internal/config"
	"github.com/kodekulture/wordguess/repository"
)

// Service owns the loaded dictionary and produces rounds from it.
type Service struct {
	dict  *word.Dictionary
	cache repository.Dictionary
	cfg   config.Game
	tally game.Tally
}

// New builds the service, loading the dictionary through the cache.
func New(cfg config.Game, cache repository.Dictionary) (*Service, error) {
	dict, err := loadDictionary(cfg, cache)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("dictionary", cfg.Dictionary).
		Int("length", cfg.Length).
		Int("pool", dict.Len()).
		Msg("dictionary ready")
	return &Service{dict: dict, cache: cache, cfg: cfg}, nil
}

// loadDictionary serves the parsed dictionary from the cache when the source
// has not changed, and parses and re-caches it otherwise.
func loadDictionary(cfg config.Game, cache repository.Dictionary) (*word.Dictionary, error) {
	opts := word.Options{Length: cfg.Length, Accented: cfg.Accented}
	fingerprint, err := word.Fingerprint(cfg.Dictionary, opts)
	if err != nil {
		return nil, errs.WrapCode(err, errs.NotFound, "dictionary not readable")
	}
	d, err := cache.Load(fingerprint)
	if err == nil {
		log.Debug().Str("fingerprint", fingerprint).Msg("dictionary cache hit")
		return d, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		// a broken cache entry is not fatal, reparse the source instead
		log.Err(err).Caller().Msg("dictionary cache unreadable")
	}

	d, err = word.LoadFile(cfg.Dictionary, opts)
	if err != nil {
		if errors.Is(err, word.ErrEmptyPool) {
			return nil, errs.WrapCode(err, errs.NotFound, "dictionary has no playable words")
		}
		return nil, errs.WrapCode(err, errs.Internal, "error loading dictionary")
	}
	if err := cache.Dump(fingerprint, d); err != nil {
		log.Err(err).Caller().Msg("failed to cache dictionary")
	}
	return d, nil
}

// NewRound starts a round against a fresh secret.
func (s *Service) NewRound() *game.Round {
	secret := s.dict.Random()
	// the secret only ever reaches the log, never the screen
	log.Debug().Str("secret", secret).Msg("starting round")
	return game.New(word.New(secret), s.cfg.Tries, s.dict)
}

// Record counts the outcome of a finished round.
func (s *Service) Record(r *game.Round) {
	s.tally.Record(r)
	log.Info().
		Bool("won", r.Won()).
		Int("guesses", len(r.Guesses)).
		Dur("took", r.Duration()).
		Msg("round over")
}

// Tally returns the session score so far.
func (s *Service) Tally() game.Tally {
	return s.tally
}

// Dictionary returns the loaded dictionary.
func (s *Service) Dictionary() *word.Dictionary {
	return s.dict
}

// Length is the configured word length.
func (s *Service) Length() int {
	return s.cfg.Length
}

// Tries is the configured number of guesses per round.
func (s *Service) Tries() int {
	return s.cfg.Tries
}

// Stop logs the final score before shutdown.
func (s *Service) Stop() {
	log.Info().Int("won", s.tally.Won).Int("lost", s.tally.Lost).Msg("session over")
}
