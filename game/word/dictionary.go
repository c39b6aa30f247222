package word

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrEmptyPool is returned when a dictionary source yields no playable words.
var ErrEmptyPool = errors.New("no playable words")

// Options controls which words from a source end up in the playable pool.
type Options struct {
	// Length is the exact rune count a playable word must have.
	Length int
	// Accented admits words containing letters outside A-Z (e.g. É, Ñ).
	Accented bool
}

// Dictionary is an immutable word list built from a line-oriented source.
//
// The playable pool is the subset of words eligible as secrets; the full
// word set is larger and is what guesses are validated against.
type Dictionary struct {
	pool    []string
	all     map[string]struct{}
	letters []rune // sorted
}

// Load reads a line-per-word source and builds a Dictionary.
//
// Lines that are not valid UTF-8 are skipped. Every remaining line is
// uppercased and recorded in the full word set, even when it does not make
// the pool, so that guesses and the inflection heuristics can see it.
func Load(r io.Reader, opts Options) (*Dictionary, error) {
	all := make(map[string]struct{})
	var pool []string
	letterSet := make(map[rune]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			continue
		}
		line := strings.TrimSpace(string(raw))
		upper := strings.ToUpper(line)
		all[upper] = struct{}{}
		if len(all)&0x3ff == 0 {
			log.Debug().Int("words", len(all)).Msg("loading dictionary")
		}
		// Words capitalised in the source are proper nouns or abbreviations.
		if line != "" && line[0] >= 'A' && line[0] <= 'Z' {
			continue
		}
		if !playable(upper, opts, all) {
			continue
		}
		pool = append(pool, upper)
		for _, c := range upper {
			letterSet[c] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w of length %d", ErrEmptyPool, opts.Length)
	}

	letters := lo.Keys(letterSet)
	slices.Sort(letters)
	return &Dictionary{pool: pool, all: all, letters: letters}, nil
}

// LoadFile opens path and builds a Dictionary from it.
func LoadFile(path string, opts Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", path, err)
	}
	return d, nil
}

// playable reports whether word may serve as a secret. all must already
// contain every word seen so far, including word itself.
func playable(word string, opts Options, all map[string]struct{}) bool {
	if isBlocked(word) {
		return false
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	for _, c := range runes {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	if len(runes) != opts.Length {
		return false
	}
	if !opts.Accented {
		for _, c := range runes {
			if c < 'A' || c > 'Z' {
				return false
			}
		}
	}

	// Drop trivial inflections whose stem is itself a known word, so the
	// pool is not dominated by plurals and -ED/-ING forms.
	known := func(s string) bool {
		_, ok := all[s]
		return ok
	}
	n := len(runes)
	stem := func(k int) string { return string(runes[:n-k]) }
	if n >= 1 {
		switch string(runes[n-1:]) {
		case "D", "R", "S", "Y":
			if known(stem(1)) {
				return false
			}
		}
	}
	if n >= 2 {
		switch string(runes[n-2:]) {
		case "ED", "ER", "ES", "LY":
			if known(stem(2)) {
				return false
			}
		}
	}
	if n >= 3 {
		suffix := string(runes[n-3:])
		switch suffix {
		case "IES", "IED", "IER", "ING":
			if known(stem(3) + "Y") {
				return false
			}
		}
		if suffix == "ING" && (known(stem(3)) || known(stem(3)+"E")) {
			return false
		}
	}
	return true
}

// Restore rebuilds a Dictionary from a previously dumped pool and word set.
func Restore(pool, all []string) (*Dictionary, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	allSet := make(map[string]struct{}, len(all))
	for _, w := range all {
		allSet[w] = struct{}{}
	}
	letterSet := make(map[rune]struct{})
	for _, w := range pool {
		for _, c := range w {
			letterSet[c] = struct{}{}
		}
	}
	letters := lo.Keys(letterSet)
	slices.Sort(letters)
	return &Dictionary{pool: slices.Clone(pool), all: allSet, letters: letters}, nil
}

// Random returns a uniformly chosen word from the playable pool.
func (d *Dictionary) Random() string {
	return d.pool[rand.IntN(len(d.pool))]
}

// Contains reports whether word is in the full word set.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.all[strings.ToUpper(word)]
	return ok
}

// HasLetter reports whether any pool word contains the letter c.
func (d *Dictionary) HasLetter(c rune) bool {
	_, ok := slices.BinarySearch(d.letters, c)
	return ok
}

// Letters returns the sorted set of letters occurring in the pool.
func (d *Dictionary) Letters() []rune {
	return slices.Clone(d.letters)
}

// Words returns a copy of the playable pool.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.pool)
}

// AllWords returns the full word set in no particular order.
func (d *Dictionary) AllWords() []string {
	return lo.Keys(d.all)
}

// Len is the playable pool size.
func (d *Dictionary) Len() int {
	return len(d.pool)
}

// Fingerprint identifies a dictionary source and the options used to parse
// it. Cached dictionaries are keyed by it, so any change to the file or to
// the parsing rules invalidates the cache.
func Fingerprint(path string, opts Options) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%d|%t|%d",
		path, info.Size(), info.ModTime().UnixNano(), opts.Length, opts.Accented, blocklistRevision)
	return hex.EncodeToString(h.Sum(nil)), nil
}
