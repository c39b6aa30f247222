// Package tui renders the game on a terminal screen and translates key
// presses into plays.
package tui

import (
	"errors"
	"fmt"
	"slices"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lordvidex/errs"

	"github.com/kodekulture/wordguess/game"
	"github.com/kodekulture/wordguess/game/word"
	"github.com/kodekulture/wordguess/service"
)

// ErrScreenTooSmall is returned when the terminal cannot fit the board.
var ErrScreenTooSmall = errs.B().Code(errs.FailedPrecondition).Msg("screen is too small for the board").Err()

// errQuit unwinds the event loop when the player leaves.
var errQuit = errors.New("quit")

const emptyGlyph = '?'

// revealDelay paces the letter-by-letter reveal of a scored guess.
const revealDelay = 100 * time.Millisecond

// Handler owns the screen and runs the game loop on it.
type Handler struct {
	scr tcell.Screen
	srv *service.Service
	pal Palette

	length  int
	tries   int
	letters []rune // sorted, drives the info panel

	layout Layout
	delay  time.Duration

	// state of the round being displayed
	round       *game.Round
	row         []rune
	col         int
	shown       map[rune]word.LetterStatus
	lastMessage string
}

func New(scr tcell.Screen, srv *service.Service, pal Palette) *Handler {
	return &Handler{
		scr:     scr,
		srv:     srv,
		pal:     pal,
		length:  srv.Length(),
		tries:   srv.Tries(),
		letters: srv.Dictionary().Letters(),
		delay:   revealDelay,
		shown:   make(map[rune]word.LetterStatus),
	}
}

// Run plays rounds until the player quits with Esc or the screen becomes
// unusable. A nil error means a normal quit.
func (h *Handler) Run() error {
	if err := h.resize(); err != nil {
		return err
	}
	for {
		h.reset(h.srv.NewRound())
		h.redraw()
		h.message("Guess the word!")

		won, err := h.playRound()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		h.srv.Record(h.round)
		if won {
			h.message("You guessed correctly!")
		} else {
			h.message(fmt.Sprintf("Sorry, you didn't guess; it was '%s'...", h.round.Secret.Word))
		}
		h.drawScore()
		h.scr.Show()

		// any key starts the next round, Esc leaves
		ev, err := h.pollKey()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return nil
		}
	}
}

// reset points the display at a fresh round.
func (h *Handler) reset(r *game.Round) {
	h.round = r
	h.row = emptyRow(h.length)
	h.col = 0
	h.shown = make(map[rune]word.LetterStatus)
	h.lastMessage = ""
}

// playRound drives one round. It reports whether the secret was guessed,
// or errQuit when the player pressed Esc.
func (h *Handler) playRound() (bool, error) {
	for h.round.CanPlay() {
		ev, err := h.pollKey()
		if err != nil {
			return false, err
		}
		// whatever the key, the old message is stale now
		h.message("")

		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false, errQuit

		case isBackspace(ev):
			if h.col > 0 {
				h.col--
				h.row[h.col] = emptyGlyph
				h.drawCell(h.col, len(h.round.Guesses), emptyGlyph, h.pal.Empty)
				h.scr.Show()
			}

		case h.col < h.length:
			// still typing the guess; anything but a known letter is
			// ignored, terminals love to send control sequences
			if ev.Key() != tcell.KeyRune {
				break
			}
			c := unicode.ToUpper(ev.Rune())
			if _, ok := slices.BinarySearch(h.letters, c); !ok || !unicode.IsLetter(c) {
				break
			}
			h.row[h.col] = c
			h.drawCell(h.col, len(h.round.Guesses), c, h.pal.Guess)
			h.col++
			h.scr.Show()

		case ev.Key() == tcell.KeyEnter:
			guess := string(h.row)
			w, err := h.round.Play(guess)
			if errors.Is(err, game.ErrUnknownWord) {
				h.message(fmt.Sprintf("%q is not a known word", guess))
				h.scr.Beep()
				continue
			}
			if err != nil {
				return false, err
			}
			h.reveal(w, len(h.round.Guesses)-1)
			if w.Correct() {
				return true, nil
			}
			h.row = emptyRow(h.length)
			h.col = 0
		}
	}
	return false, nil
}

// reveal paints a scored guess one letter at a time, upgrading the info
// panel as it goes.
func (h *Handler) reveal(w word.Word, rowIdx int) {
	runes := w.Runes()
	for i, st := range w.Stats {
		h.drawCell(i, rowIdx, runes[i], h.pal.Status(st))
		if st > h.shown[runes[i]] {
			h.shown[runes[i]] = st
		}
		h.drawInfoLetter(runes[i])
		h.scr.Show()
		time.Sleep(h.delay)
	}
}

// pollKey returns the next key press, handling resizes and interrupts on
// the way.
func (h *Handler) pollKey() (*tcell.EventKey, error) {
	for {
		switch ev := h.scr.PollEvent().(type) {
		case *tcell.EventKey:
			return ev, nil
		case *tcell.EventResize:
			if err := h.resize(); err != nil {
				return nil, err
			}
		case *tcell.EventInterrupt:
			return nil, errQuit
		case nil:
			return nil, errQuit
		}
	}
}

// resize recomputes the layout and repaints, failing when the screen has
// become too small for the board.
func (h *Handler) resize() error {
	w, hgt := h.scr.Size()
	h.layout = Layout{Width: w, Height: hgt, Length: h.length, Tries: h.tries, Letters: len(h.letters)}
	if !h.layout.Fits() {
		return ErrScreenTooSmall
	}
	h.redraw()
	return nil
}

func isBackspace(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return true
	}
	return false
}

func emptyRow(length int) []rune {
	row := make([]rune, length)
	for i := range row {
		row[i] = emptyGlyph
	}
	return row
}
