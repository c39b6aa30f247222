package tui

// Vertical anchors, in screen rows.
const (
	titleRow      = 1
	boardTop      = 5 // from the top
	messageOffset = 4 // from the bottom of the board
)

const title = "Word Guess!"

// Layout places every element of the screen for a given terminal and board
// size. All methods assume the layout Fits.
type Layout struct {
	Width   int // terminal columns
	Height  int // terminal rows
	Length  int // letters per word
	Tries   int // rows on the board
	Letters int // distinct letters in the info panel
}

// TitleX is the column the title starts at.
func (l Layout) TitleX() int {
	return (l.Width - len(title) - 1) / 2
}

// FrameX is the left edge of the board outline.
func (l Layout) FrameX() int {
	return l.Width/2 - l.Length - 1
}

// FrameTop is the row of the upper board outline.
func (l Layout) FrameTop() int {
	return boardTop - 1
}

// FrameBottom is the row of the lower board outline.
func (l Layout) FrameBottom() int {
	return boardTop + l.Tries
}

// CellPos returns the screen position of board cell (x, y).
func (l Layout) CellPos(x, y int) (int, int) {
	return l.Width/2 - l.Length + 2*x, boardTop + y
}

// ScoreRow is the row the running score is drawn on.
func (l Layout) ScoreRow() int {
	return boardTop + l.Tries + 2
}

// CenterX is the column a text of width w starts at to sit centred.
func (l Layout) CenterX(w int) int {
	return (l.Width - w - 1) / 2
}

// MessageRow is the first row of the message block.
func (l Layout) MessageRow() int {
	return boardTop + l.Tries + messageOffset
}

// MessageHeight is the number of rows the message block may use.
func (l Layout) MessageHeight() int {
	h := l.Height - l.MessageRow()
	if h > 4 {
		h = 4
	}
	return h
}

// infoCols is the number of letters per info panel row, split evenly
// between the two sides of the board.
func (l Layout) infoCols() int {
	tries := l.Tries
	if tries < 1 {
		tries = 1
	}
	cols := 2 * l.Letters / tries
	if cols%2 == 1 {
		cols--
	}
	if cols < 2 {
		cols = 2
	}
	return cols
}

// InfoPos returns the screen position of the i-th info letter. The first
// half of each row sits left of the board, the second half right of it.
func (l Layout) InfoPos(i int) (int, int) {
	cols := l.infoCols()
	xWidth := 2*cols + (l.Length+1)/2
	offLeft := l.Width/2 - xWidth
	offRight := (l.Width+1)/2 + 3

	x := (i % cols) * 2
	y := i / cols

	cx := offLeft + x
	if x >= cols {
		cx = offRight + x
	}
	return cx, boardTop + 2*y
}

// Fits reports whether the whole layout fits on the screen.
func (l Layout) Fits() bool {
	if l.TitleX() < 0 || l.FrameX() < 0 {
		return false
	}
	// at least one message line must fit below the board
	if l.MessageHeight() < 1 {
		return false
	}
	if l.Letters > 0 {
		if cx, _ := l.InfoPos(0); cx < 0 {
			return false
		}
		// the rightmost column of the right-hand block
		cols := l.infoCols()
		last := cols - 1
		if l.Letters < cols {
			last = l.Letters - 1
		}
		if cx, _ := l.InfoPos(last); cx >= l.Width {
			return false
		}
		if _, cy := l.InfoPos(l.Letters - 1); cy >= l.Height {
			return false
		}
	}
	return true
}
