package mines

import (
	"fmt"

	"github.com/gammazero/deque"
)

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

var statusNames = [...]string{
	InProgress: "in_progress",
	Won:        "won",
	Lost:       "lost",
}

// [Status] implements [fmt.Stringer]
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int8(s))
	}
	return statusNames[s]
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("unknown status %d", int8(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Board owns every panel of one game. It is not safe for concurrent use;
// callers serialize input so that each event completes before the next.
type Board struct {
	Params

	panels   []*Panel
	revealed int
	status   Status

	placer Placer
	drawer Drawer
}

// NewBoard validates params, places the mines and draws every panel once.
// A nil placer places mines at random; a nil drawer discards draw requests.
func NewBoard(params Params, placer Placer, drawer Drawer) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if placer == nil {
		placer = RandomPlacer{Rand: NewRand()}
	}
	if drawer == nil {
		drawer = Discard
	}

	b := &Board{
		Params: params,
		placer: placer,
		drawer: drawer,
	}

	panels, err := b.generate()
	if err != nil {
		return nil, err
	}
	b.panels = panels
	b.Draw()

	return b, nil
}

func (b *Board) generate() ([]*Panel, error) {
	cells, mineCount := b.Cells(), b.MineCount

	placed, err := b.placer.Place(cells, mineCount)
	if err != nil {
		return nil, err
	}
	if err := validatePlacement(placed, cells, mineCount); err != nil {
		return nil, err
	}

	panels := make([]*Panel, cells)
	for i := range cells {
		row, col := b.Position(i)
		panels[i] = newPanel(i, row, col, b.PanelWidth, 0, b.drawer)
	}
	for _, i := range placed {
		panels[i].kind = Mine
	}
	for i, p := range panels {
		if p.kind.IsMine() {
			continue
		}
		var n Kind
		for _, j := range b.Neighbors(i) {
			if panels[j].kind.IsMine() {
				n++
			}
		}
		p.kind = n
	}

	return panels, nil
}

func (b *Board) Status() Status {
	return b.status
}

// RevealedCount is the number of safe panels uncovered so far.
func (b *Board) RevealedCount() int {
	return b.revealed
}

func (b *Board) Panel(i int) (Panel, bool) {
	if !b.ValidIndex(i) {
		return Panel{}, false
	}
	return *b.panels[i], true
}

func (b *Board) Mines() []int {
	mines := make([]int, 0, b.MineCount)
	for i, p := range b.panels {
		if p.kind.IsMine() {
			mines = append(mines, i)
		}
	}
	return mines
}

// RevealAt uncovers the panel at i. Revealing a mine loses the game;
// revealing a zero panel cascades through its zero region; uncovering the
// last safe panel wins. Anything else (game over, flagged, already
// uncovered, out of range) is a no-op.
func (b *Board) RevealAt(i int) Status {
	if b.status != InProgress || !b.ValidIndex(i) {
		return b.status
	}

	p := b.panels[i]
	if !p.reveal() {
		return b.status
	}
	if p.kind.IsMine() {
		b.status = Lost
		return b.status
	}

	b.revealed++
	if p.kind == 0 {
		b.propagate(i)
	}

	if b.revealed == b.SafeCells() {
		b.status = Won
	}
	return b.status
}

// propagate drains a worklist of zero panels, uncovering their covered,
// unflagged neighbors. Panels only ever go from covered to uncovered, so
// each index is queued at most once.
func (b *Board) propagate(from int) {
	var todo deque.Deque[int]
	todo.PushBack(from)

	for todo.Len() > 0 {
		i := todo.PopFront()
		for _, j := range b.Neighbors(i) {
			q := b.panels[j]
			if q.kind.IsMine() || !q.reveal() {
				continue
			}
			b.revealed++
			if q.kind == 0 {
				todo.PushBack(j)
			}
		}
	}
}

// ToggleFlagAt flips the flag of a covered panel while the game is running.
func (b *Board) ToggleFlagAt(i int) bool {
	if b.status != InProgress || !b.ValidIndex(i) {
		return false
	}
	return b.panels[i].toggleFlag()
}

// Activate is the primary action: reveal while the game runs, start over
// once it has ended.
func (b *Board) Activate(i int) (Status, error) {
	if b.status.Terminal() {
		if err := b.Reset(); err != nil {
			return b.status, err
		}
		return b.status, nil
	}
	return b.RevealAt(i), nil
}

// Reset throws every panel away and generates a fresh board with the same
// params. The board is left untouched if placement fails.
func (b *Board) Reset() error {
	panels, err := b.generate()
	if err != nil {
		return fmt.Errorf("unable to regenerate board: %w", err)
	}
	for _, p := range b.panels {
		p.reset()
	}
	b.panels = panels
	b.revealed = 0
	b.status = InProgress
	return nil
}

// Draw emits a draw request for every panel.
func (b *Board) Draw() {
	for _, p := range b.panels {
		p.draw()
	}
}

// Views returns the current draw request of every panel by index.
func (b *Board) Views() []DrawRequest {
	views := make([]DrawRequest, len(b.panels))
	for i, p := range b.panels {
		views[i] = p.View()
	}
	return views
}
