package mines

import "strconv"

// Kind is what a panel hides: a mine or the number of adjacent mines.
type Kind int8

const Mine Kind = -1

func (k Kind) IsMine() bool {
	return k == Mine
}

// Number returns the adjacent mine count, or -1 for a mine.
func (k Kind) Number() int {
	return int(k)
}

// [Kind] implements [fmt.Stringer]
func (k Kind) String() string {
	if k.IsMine() {
		return "*"
	}
	return strconv.Itoa(int(k))
}

// Panel is a single grid cell. A panel only changes state through reveal,
// toggleFlag and reset, each of which emits a draw request.
type Panel struct {
	kind    Kind
	covered bool
	flagged bool

	index    int
	row, col int
	width    int
	drawer   Drawer
}

func newPanel(index, row, col, width int, kind Kind, drawer Drawer) *Panel {
	return &Panel{
		kind:    kind,
		covered: true,
		index:   index,
		row:     row,
		col:     col,
		width:   width,
		drawer:  drawer,
	}
}

func (p Panel) Kind() Kind {
	return p.kind
}

func (p Panel) Covered() bool {
	return p.covered
}

func (p Panel) Flagged() bool {
	return p.flagged
}

func (p Panel) Index() int {
	return p.index
}

// Visual is the enumerated state the renderer needs to draw the panel.
func (p Panel) Visual() Visual {
	switch {
	case p.covered && p.flagged:
		return Flagged
	case p.covered:
		return Covered
	case p.kind.IsMine():
		return Exploded
	case p.kind == 0:
		return Blank
	default:
		return Number
	}
}

// View is the draw request describing the panel's current state.
func (p Panel) View() DrawRequest {
	req := DrawRequest{
		Index:  p.index,
		Row:    p.row,
		Col:    p.col,
		X:      (p.col + 1) * p.width,
		Y:      (p.row + 1) * p.width,
		Size:   p.width,
		Visual: p.Visual(),
	}
	if req.Visual == Number {
		req.Number = p.kind.Number()
	}
	return req
}

func (p *Panel) draw() {
	p.drawer.DrawPanel(p.View())
}

// reveal uncovers the panel and reports whether anything changed.
// Flagged panels stay covered.
func (p *Panel) reveal() bool {
	if !p.covered || p.flagged {
		return false
	}
	p.covered = false
	p.draw()
	return true
}

func (p *Panel) toggleFlag() bool {
	if !p.covered {
		return false
	}
	p.flagged = !p.flagged
	p.draw()
	return true
}

func (p *Panel) reset() {
	p.kind = 0
	p.covered = true
	p.flagged = false
	p.draw()
}
