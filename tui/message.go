package tui

// wrapMessage hard-wraps msg into lines at most width runes long and
// returns them with the width of the widest line.
func wrapMessage(msg string, width int) ([]string, int) {
	if width < 1 {
		return nil, 0
	}
	var (
		lines  []string
		widest int
	)
	runes := []rune(msg)
	for len(runes) > 0 {
		n := len(runes)
		if n > width {
			n = width
		}
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
		if n > widest {
			widest = n
		}
	}
	return lines, widest
}

// message renders msg centred below the board, replacing whatever was
// there. The block is cleared even for an empty msg.
func (h *Handler) message(msg string) {
	h.lastMessage = msg
	row := h.layout.MessageRow()
	height := h.layout.MessageHeight()
	lines, width := wrapMessage(msg, h.layout.Width)
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := 0; i < height; i++ {
		for x := 0; x < h.layout.Width; x++ {
			h.scr.SetContent(x, row+i, ' ', nil, h.pal.Message)
		}
		if i < len(lines) {
			h.drawText((h.layout.Width-width)/2, row+i, lines[i], h.pal.Message)
		}
	}
	h.scr.Show()
}
