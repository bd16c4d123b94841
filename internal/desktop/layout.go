package desktop

import "github.com/vancomm/minesweeper-board/internal/mines"

// CellAt resolves a pointer position to a panel index. Panel (row, col)
// covers the open square ((col+1)*w, (row+1)*w) to ((col+2)*w, (row+2)*w);
// a pointer exactly on a panel edge hits nothing.
func CellAt(p mines.Params, x, y int) int {
	w := p.PanelWidth
	if w <= 0 || x <= 0 || y <= 0 || x%w == 0 || y%w == 0 {
		return mines.NoPanel
	}
	return p.Resolve(y/w-1, x/w-1)
}

// ScreenSize is the canvas size with a one panel margin around the grid.
func ScreenSize(p mines.Params) (width, height int) {
	return (p.Columns + 2) * p.PanelWidth, (p.Rows + 2) * p.PanelWidth
}
