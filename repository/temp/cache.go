// Package temp holds throwaway in-memory implementations of the repository
// interfaces, used when no durable store is available or wanted.
package temp

import (
	"sync"

	"github.com/kodekulture/wordguess/game/word"
	"github.com/kodekulture/wordguess/repository"
)

type DictionaryRepo struct {
	mu      sync.RWMutex
	entries map[string]*word.Dictionary
}

// Dump implements repository.Dictionary.
func (r *DictionaryRepo) Dump(fingerprint string, d *word.Dictionary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[fingerprint] = d
	return nil
}

// Load implements repository.Dictionary.
func (r *DictionaryRepo) Load(fingerprint string) (*word.Dictionary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[fingerprint]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

// Drop implements repository.Dictionary.
func (r *DictionaryRepo) Drop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*word.Dictionary)
	return nil
}

func NewDictionaryRepo() *DictionaryRepo {
	return &DictionaryRepo{entries: make(map[string]*word.Dictionary)}
}
