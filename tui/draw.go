package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// redraw repaints the whole screen from the current state.
func (h *Handler) redraw() {
	h.scr.Clear()
	h.drawTitle()
	h.drawFrame()
	for _, c := range h.letters {
		h.drawInfoLetter(c)
	}
	for y := 0; y < h.tries; y++ {
		for x := 0; x < h.length; x++ {
			h.drawCell(x, y, emptyGlyph, h.pal.Empty)
		}
	}
	if h.round != nil {
		for y, g := range h.round.Guesses {
			runes := g.Runes()
			for x, st := range g.Stats {
				h.drawCell(x, y, runes[x], h.pal.Status(st))
			}
		}
		for x := 0; x < h.col; x++ {
			h.drawCell(x, len(h.round.Guesses), h.row[x], h.pal.Guess)
		}
	}
	h.drawScore()
	h.message(h.lastMessage)
	h.scr.Show()
}

func (h *Handler) drawTitle() {
	x := h.layout.TitleX()
	h.drawText(x, titleRow, title, h.pal.Message)
	h.drawText(x, titleRow+1, strings.Repeat("=", len(title)), h.pal.Message)
}

func (h *Handler) drawFrame() {
	x := h.layout.FrameX()
	bar := strings.Repeat("-", 2*h.length-1)
	h.drawText(x, h.layout.FrameTop(), "/"+bar+"\\", h.pal.Board)
	for y := 0; y < h.tries; y++ {
		for j := 0; j <= h.length; j++ {
			h.scr.SetContent(x+2*j, boardTop+y, '|', nil, h.pal.Board)
		}
	}
	h.drawText(x, h.layout.FrameBottom(), "\\"+bar+"/", h.pal.Board)
}

// drawCell paints one board cell, x and y in board coordinates.
func (h *Handler) drawCell(x, y int, c rune, style tcell.Style) {
	cx, cy := h.layout.CellPos(x, y)
	h.scr.SetContent(cx, cy, c, nil, style)
}

// drawInfoLetter paints one letter of the info panel in its current status.
func (h *Handler) drawInfoLetter(c rune) {
	i, ok := slices.BinarySearch(h.letters, c)
	if !ok {
		return
	}
	cx, cy := h.layout.InfoPos(i)
	h.scr.SetContent(cx, cy, c, nil, h.pal.Status(h.shown[c]))
}

func (h *Handler) drawScore() {
	t := h.srv.Tally()
	score := fmt.Sprintf("Won %d  Lost %d", t.Won, t.Lost)
	x := h.layout.CenterX(len(score))
	if x < 0 {
		x = 0
	}
	h.drawText(x, h.layout.ScoreRow(), score, h.pal.Message)
}

func (h *Handler) drawText(x, y int, s string, style tcell.Style) {
	for i, c := range []rune(s) {
		h.scr.SetContent(x+i, y, c, nil, style)
	}
}
