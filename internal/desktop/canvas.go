package desktop

import (
	"image/color"
	"strconv"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var (
	uncoveredColor = color.RGBA{0xE0, 0xF5, 0xFF, 0xFF}
	panelColor     = color.RGBA{0x4A, 0x6E, 0x80, 0xFF}
	borderColor    = color.RGBA{0x76, 0xAF, 0xCC, 0xFF}
	mineColor      = color.RGBA{0x70, 0x7A, 0x80, 0xFF}
	backdropColor  = color.RGBA{0x94, 0xDB, 0xFF, 0xFF}
)

// Canvas remembers the last draw request of every panel. The board writes
// into it through DrawPanel; the render loop only reads.
type Canvas struct {
	panels []mines.DrawRequest
}

func NewCanvas(cells int) *Canvas {
	return &Canvas{panels: make([]mines.DrawRequest, cells)}
}

// [*Canvas] implements [mines.Drawer]
func (c *Canvas) DrawPanel(req mines.DrawRequest) {
	if req.Index < 0 || req.Index >= len(c.panels) {
		return
	}
	c.panels[req.Index] = req
}

func (c *Canvas) Panels() []mines.DrawRequest {
	return c.panels
}

// Fill is the inner color of a panel.
func Fill(v mines.Visual) color.RGBA {
	switch v {
	case mines.Blank, mines.Number:
		return uncoveredColor
	case mines.Exploded:
		return mineColor
	default:
		return panelColor
	}
}

// Symbol is the text drawn on top of a panel, if any.
func Symbol(req mines.DrawRequest) string {
	switch req.Visual {
	case mines.Flagged:
		return "F"
	case mines.Number:
		return strconv.Itoa(req.Number)
	case mines.Exploded:
		return "B"
	default:
		return ""
	}
}

// Banner is the message shown once the game is over.
func Banner(s mines.Status) string {
	switch s {
	case mines.Won:
		return "GAME WON"
	case mines.Lost:
		return "GAME OVER"
	default:
		return ""
	}
}
