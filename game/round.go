package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/x/ptr"

	"github.com/kodekulture/wordguess/game/word"
)

const (
	// DefaultLength is the word length used when none is configured
	DefaultLength = 5

	// DefaultTries is the number of guesses a round allows when none is configured
	DefaultTries = 6
)

var (
	// ErrRoundOver is returned by Play once the round has ended
	ErrRoundOver = errors.New("round is over")

	// ErrUnknownWord is returned by Play for guesses outside the lexicon
	ErrUnknownWord = errors.New("unknown word")

	// ErrWordLength is returned by Play for guesses of the wrong length
	ErrWordLength = errors.New("wrong word length")
)

// Lexicon is the set of words accepted as guesses.
type Lexicon interface {
	Contains(word string) bool
}

// Round is a single game against one secret word.
type Round struct {
	CreatedAt time.Time
	EndedAt   *time.Time
	Secret    word.Word
	Guesses   []word.Word
	MaxTries  int
	ID        uuid.UUID

	lex     Lexicon
	letters map[rune]word.LetterStatus
}

func New(secret word.Word, tries int, lex Lexicon) *Round {
	return &Round{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Secret:    secret,
		MaxTries:  tries,
		lex:       lex,
		letters:   make(map[rune]word.LetterStatus),
	}
}

// Play must be called in a synchronized manner (from a single goroutine) because it modifies the round state.
// It scores the guess against the secret, records it and returns the scored word.
//
// Guesses of the wrong length or outside the lexicon are rejected without consuming a try.
//
// Play also sets the EndTime of the round when the last try is used up or the secret is found.
func (r *Round) Play(guess string) (word.Word, error) {
	if r.Ended() {
		return word.Word{}, ErrRoundOver
	}
	w := word.New(guess)
	if len(w.Runes()) != len(r.Secret.Runes()) {
		return word.Word{}, ErrWordLength
	}
	// a nil lexicon accepts any guess
	if r.lex != nil && !r.lex.Contains(w.Word) {
		return word.Word{}, ErrUnknownWord
	}

	// process the guess
	w.PlayedAt = time.Now().UTC()
	w.Check(r.Secret)
	r.Guesses = append(r.Guesses, w)

	// a letter's status only ever improves
	runes := w.Runes()
	for i, st := range w.Stats {
		if st > r.letters[runes[i]] {
			r.letters[runes[i]] = st
		}
	}

	if r.Ended() {
		r.EndedAt = ptr.Obj(time.Now())
	}
	return w, nil
}

// Won returns true if the last guess matched the secret exactly
func (r *Round) Won() bool {
	if len(r.Guesses) == 0 {
		return false
	}
	return r.Guesses[len(r.Guesses)-1].Correct()
}

// Lost returns true if the round ended without the secret being found
func (r *Round) Lost() bool {
	return r.Ended() && !r.Won()
}

// CanPlay returns true if the round still accepts guesses
func (r *Round) CanPlay() bool {
	return !r.Ended()
}

// Ended returns true if all tries are used up or the secret has been found
func (r *Round) Ended() bool {
	return len(r.Guesses) >= r.MaxTries || r.Won()
}

// TriesLeft returns the number of guesses remaining
func (r *Round) TriesLeft() int {
	return r.MaxTries - len(r.Guesses)
}

// LetterStatus returns the best status the letter c earned across all guesses so far.
func (r *Round) LetterStatus(c rune) word.LetterStatus {
	return r.letters[c]
}

// Duration reports how long the round has been running, or how long it ran.
func (r *Round) Duration() time.Duration {
	if r.EndedAt == nil {
		return time.Since(r.CreatedAt)
	}
	return ptr.ToObj(r.EndedAt).Sub(r.CreatedAt)
}

// Tally accumulates round outcomes across a session.
type Tally struct {
	Won  int
	Lost int
}

// Record counts the outcome of a finished round.
func (t *Tally) Record(r *Round) {
	if r.Won() {
		t.Won++
	} else {
		t.Lost++
	}
}
