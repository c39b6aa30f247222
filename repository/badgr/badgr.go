// Package badgr is an adapter for the badgerDB
package badgr

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger"

	"github.com/kodekulture/wordguess/game/word"
	"github.com/kodekulture/wordguess/repository"
)

type DictionaryRepo struct {
	db *badger.DB
}

// dictionaryDTO is the stored form of a parsed dictionary.
type dictionaryDTO struct {
	Pool []string `json:"pool"`
	All  []string `json:"all"`
}

// Dump implements repository.Dictionary.
func (r *DictionaryRepo) Dump(fingerprint string, d *word.Dictionary) error {
	return r.db.Update(func(txn *badger.Txn) error {
		b, err := json.Marshal(dictionaryDTO{Pool: d.Words(), All: d.AllWords()})
		if err != nil {
			return err
		}
		e := badger.NewEntry([]byte(fingerprint), b)
		return txn.SetEntry(e)
	})
}

// Load implements repository.Dictionary.
func (r *DictionaryRepo) Load(fingerprint string) (*word.Dictionary, error) {
	var dto dictionaryDTO
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fingerprint))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &dto)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return word.Restore(dto.Pool, dto.All)
}

// Drop implements repository.Dictionary.
func (r *DictionaryRepo) Drop() error {
	return r.db.DropAll()
}

func New(db *badger.DB) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}
