package word

import (
	"strings"
	"time"
)

// LetterStatus is an enum type for the status of a letter in a word guess
type (
	LetterStatus   int
	LetterStatuses []LetterStatus
)

func (s LetterStatuses) Ints() []int {
	ints := make([]int, len(s))
	for i, v := range s {
		ints[i] = int(v)
	}
	return ints
}

const (
	Unknown LetterStatus = iota // The letter has not been played
	Miss                        // The letter claims no remaining occurrence in the secret
	Partial                     // The letter is in the secret but in the wrong position
	Exact                       // The letter is in the secret and in the correct position
)

// Statuses are ordered: a bigger value is strictly better. Displays that
// accumulate the best known status per letter rely on this ordering.

// Word contains the guessed text, the per-position status of each letter
// and the time the word was played.
// For example guessing 'WEIRD' against 'WORLD' gives
//
// W -> Exact
// E -> Miss
// I -> Miss
// R -> Partial
// D -> Exact
type Word struct {
	Word     string
	PlayedAt time.Time
	Stats    LetterStatuses
}

func New(word string) Word {
	return Word{Word: strings.ToUpper(word)}
}

func (w Word) Runes() []rune {
	return []rune(w.Word)
}

// Correct returns true if every letter of the word is an exact match
func (w Word) Correct() bool {
	if w.Word == "" || len(w.Stats) == 0 {
		return false
	}
	for _, c := range w.Stats {
		if c != Exact {
			return false
		}
	}
	return true
}

// Check scores `w` against the secret word, sets the LetterStatus of each
// letter of `w` and returns the statuses.
//
// Two passes, left to right. Pass one claims exact positions and blanks the
// claimed secret letters so they cannot be matched again. Pass two walks the
// remaining positions and claims the leftmost still-unclaimed occurrence of
// the guessed letter, if any. A letter of the guess repeated more often than
// it occurs in the secret therefore degrades to Miss once the secret's
// occurrences are used up.
func (w *Word) Check(secret Word) LetterStatuses {
	secretRunes := secret.Runes()
	guessRunes := w.Runes()

	stats := make(LetterStatuses, len(guessRunes))
	for i := range stats {
		stats[i] = Miss
	}

	// both words must have the same length, the caller ensures this
	if len(guessRunes) != len(secretRunes) {
		w.Stats = stats
		return stats
	}

	for i, r := range guessRunes {
		if r == secretRunes[i] {
			stats[i] = Exact
			secretRunes[i] = 0
		}
	}

	for i, r := range guessRunes {
		if stats[i] == Exact {
			continue
		}
		for j, left := range secretRunes {
			if left == r {
				stats[i] = Partial
				secretRunes[j] = 0
				break
			}
		}
	}

	w.Stats = stats
	return stats
}

func (w *Word) String() string {
	return w.Word
}
