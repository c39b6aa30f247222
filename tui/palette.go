package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kodekulture/wordguess/game/word"
)

// Palette maps everything drawn on screen to a style.
type Palette struct {
	Empty   tcell.Style
	Board   tcell.Style
	Guess   tcell.Style
	Message tcell.Style
	Miss    tcell.Style
	Partial tcell.Style
	Exact   tcell.Style
}

// NewPalette returns the default palette, or one that avoids red/green
// pairs when accessible is set.
func NewPalette(accessible bool) Palette {
	p := Palette{
		Empty:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Board:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Guess:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Message: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	if accessible {
		p.Miss = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
		p.Partial = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorTeal)
		p.Exact = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple)
	} else {
		p.Miss = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
		p.Partial = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
		p.Exact = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)
	}
	return p
}

// Status returns the style for a scored letter.
func (p Palette) Status(s word.LetterStatus) tcell.Style {
	switch s {
	case word.Exact:
		return p.Exact
	case word.Partial:
		return p.Partial
	case word.Miss:
		return p.Miss
	default:
		return p.Empty
	}
}
