// Package repository is responsible for the permanent storage of data of this application
package repository

import (
	"errors"

	"github.com/kodekulture/wordguess/game/word"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("not found")

// Dictionary caches parsed dictionaries keyed by the fingerprint of their
// source, so that large word lists are not re-parsed on every run.
type Dictionary interface {
	// Load returns the dictionary stored under fingerprint, or ErrNotFound
	Load(fingerprint string) (*word.Dictionary, error)

	// Dump stores the dictionary under fingerprint
	Dump(fingerprint string, d *word.Dictionary) error

	// Drop deletes all cached dictionaries
	Drop() error
}
