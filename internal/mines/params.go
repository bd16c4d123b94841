package mines

import (
	"fmt"
	"math"
	"strings"
)

// NoPanel is the index of an input that resolved to no panel.
const NoPanel = -1

// Params fixes a board's shape for its whole lifetime. Panels are indexed
// column-major: index = col*Rows + row.
type Params struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	MineCount  int `json:"mine_count"`
	PanelWidth int `json:"panel_width"`
}

func (p Params) Unpack() (rows, columns, mineCount, panelWidth int) {
	return p.Rows, p.Columns, p.MineCount, p.PanelWidth
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Columns <= 0 {
		return fmt.Errorf("%w (rows = %d, columns = %d)",
			ErrInvalidDimensions, p.Rows, p.Columns)
	}
	if p.Rows > math.MaxInt/p.Columns {
		return fmt.Errorf("%w (rows = %d, columns = %d overflow the panel count)",
			ErrInvalidDimensions, p.Rows, p.Columns)
	}
	if p.MineCount <= 0 || p.MineCount >= p.Cells() {
		return fmt.Errorf("%w (mine count = %d, panels = %d)",
			ErrInvalidMineCount, p.MineCount, p.Cells())
	}
	if p.PanelWidth <= 0 {
		return fmt.Errorf("%w (panel width = %d)",
			ErrInvalidPanelWidth, p.PanelWidth)
	}
	return nil
}

func (p Params) Cells() int {
	return p.Rows * p.Columns
}

func (p Params) SafeCells() int {
	return p.Cells() - p.MineCount
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Columns
}

func (p Params) ValidIndex(i int) bool {
	return 0 <= i && i < p.Cells()
}

// Resolve maps a (row, col) input to a panel index, or NoPanel when the
// coordinate falls outside the grid.
func (p Params) Resolve(row, col int) int {
	if !p.InBounds(row, col) {
		return NoPanel
	}
	return p.Index(row, col)
}

func (p Params) Index(row, col int) int {
	return col*p.Rows + row
}

func (p Params) Position(i int) (row, col int) {
	return i % p.Rows, i / p.Rows
}

// Neighbors lists the in-bounds indices around i. Edges are decided on
// (row, col) so that a panel at the top or bottom of a column never picks
// up panels of the adjacent column.
func (p Params) Neighbors(i int) []int {
	if !p.ValidIndex(i) {
		return nil
	}
	row, col := p.Position(i)
	neighbors := make([]int, 0, 8)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if p.InBounds(row+dr, col+dc) {
				neighbors = append(neighbors, p.Index(row+dr, col+dc))
			}
		}
	}
	return neighbors
}

// Seed encodes the params as "rows:columns:mines:width".
func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d:%d", p.Rows, p.Columns, p.MineCount, p.PanelWidth)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &p.Rows, &p.Columns, &p.MineCount, &p.PanelWidth,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`invalid board params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
