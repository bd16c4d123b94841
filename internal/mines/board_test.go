package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBoard(t *testing.T, rows, columns int, mines ...int) *Board {
	t.Helper()
	b, err := NewBoard(
		Params{Rows: rows, Columns: columns, MineCount: len(mines), PanelWidth: 10},
		FixedPlacer(mines), nil,
	)
	require.NoError(t, err)
	return b
}

func countMines(b *Board) (n int) {
	for i := range b.Cells() {
		p, _ := b.Panel(i)
		if p.Kind().IsMine() {
			n++
		}
	}
	return
}

// requireConsistent checks the mine count and every number against a scan
// over coordinates.
func requireConsistent(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, b.MineCount, countMines(b))
	for col := 0; col < b.Columns; col++ {
		for row := 0; row < b.Rows; row++ {
			p, ok := b.Panel(col*b.Rows + row)
			require.True(t, ok)
			if p.Kind().IsMine() {
				continue
			}
			want := 0
			for dc := -1; dc <= 1; dc++ {
				for dr := -1; dr <= 1; dr++ {
					r, c := row+dr, col+dc
					if (dr == 0 && dc == 0) || r < 0 || r >= b.Rows || c < 0 || c >= b.Columns {
						continue
					}
					q, _ := b.Panel(c*b.Rows + r)
					if q.Kind().IsMine() {
						want++
					}
				}
			}
			require.Equal(t, want, p.Kind().Number(), "panel at %d:%d", row, col)
		}
	}
}

func uncovered(b *Board) map[int]bool {
	set := map[int]bool{}
	for i := range b.Cells() {
		if p, _ := b.Panel(i); !p.Covered() {
			set[i] = true
		}
	}
	return set
}

func TestNewBoardRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		placer Placer
		err    error
	}{
		{"zero rows", Params{Rows: 0, Columns: 5, MineCount: 1, PanelWidth: 1}, nil, ErrInvalidDimensions},
		{"negative columns", Params{Rows: 5, Columns: -5, MineCount: 1, PanelWidth: 1}, nil, ErrInvalidDimensions},
		{"no mines", Params{Rows: 5, Columns: 5, MineCount: 0, PanelWidth: 1}, nil, ErrInvalidMineCount},
		{"only mines", Params{Rows: 5, Columns: 5, MineCount: 25, PanelWidth: 1}, nil, ErrInvalidMineCount},
		{"no width", Params{Rows: 5, Columns: 5, MineCount: 3, PanelWidth: 0}, nil, ErrInvalidPanelWidth},
		{"bad layout", Params{Rows: 5, Columns: 5, MineCount: 2, PanelWidth: 1}, FixedPlacer{1, 1}, ErrInvalidPlacement},
		{"short layout", Params{Rows: 5, Columns: 5, MineCount: 2, PanelWidth: 1}, FixedPlacer{1}, ErrInvalidPlacement},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.params, test.placer, nil)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestGeneratedBoardsAreConsistent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []Params{
		{Rows: 9, Columns: 9, MineCount: 10, PanelWidth: 50},
		{Rows: 9, Columns: 9, MineCount: 35, PanelWidth: 50},
		{Rows: 16, Columns: 16, MineCount: 40, PanelWidth: 50},
		{Rows: 16, Columns: 30, MineCount: 99, PanelWidth: 50},
		{Rows: 10, Columns: 20, MineCount: 40, PanelWidth: 50},
		{Rows: 1, Columns: 7, MineCount: 3, PanelWidth: 50},
		{Rows: 7, Columns: 1, MineCount: 3, PanelWidth: 50},
		{Rows: 3, Columns: 3, MineCount: 8, PanelWidth: 50},
	}
	for _, params := range tests {
		t.Run(params.Seed(), func(t *testing.T) {
			for range 20 {
				b, err := NewBoard(params, RandomPlacer{Rand: r}, nil)
				require.NoError(t, err)
				requireConsistent(t, b)
				assert.Equal(t, InProgress, b.Status())
				assert.Zero(t, b.RevealedCount())
			}
		})
	}
}

func TestOneRowScenario(t *testing.T) {
	b := fixedBoard(t, 1, 3, 2)

	kinds := make([]Kind, 3)
	for i := range kinds {
		p, _ := b.Panel(i)
		kinds[i] = p.Kind()
	}
	assert.Equal(t, []Kind{0, 1, Mine}, kinds)

	assert.Equal(t, Won, b.RevealAt(0))
	assert.Equal(t, map[int]bool{0: true, 1: true}, uncovered(b))
	assert.Equal(t, 2, b.RevealedCount())
}

func TestOneRowMineInMiddle(t *testing.T) {
	b := fixedBoard(t, 1, 3, 1)

	assert.Equal(t, InProgress, b.RevealAt(0))
	assert.Equal(t, map[int]bool{0: true}, uncovered(b))
	assert.Equal(t, Won, b.RevealAt(2))
}

func TestSingleMineWinsInOneClick(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	requireConsistent(t, b)

	assert.Equal(t, Won, b.RevealAt(15))
	assert.Equal(t, 15, b.RevealedCount())

	p, _ := b.Panel(0)
	assert.True(t, p.Covered())
	assert.Len(t, uncovered(b), 15)
}

func TestRevealNeighborOfMineOnlyUncoversIt(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)

	for _, i := range []int{1, 4, 5} {
		assert.Equal(t, InProgress, b.RevealAt(i))
	}
	assert.Equal(t, map[int]bool{1: true, 4: true, 5: true}, uncovered(b))
	assert.Equal(t, 3, b.RevealedCount())

	assert.Equal(t, Won, b.RevealAt(10))
}

func TestRevealMineLoses(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	b.RevealAt(5)

	assert.Equal(t, Lost, b.RevealAt(0))
	assert.Equal(t, 1, b.RevealedCount())
	assert.Len(t, uncovered(b), 2)

	// nothing moves after the game is over
	assert.Equal(t, Lost, b.RevealAt(15))
	assert.False(t, b.ToggleFlagAt(15))
	assert.Equal(t, 1, b.RevealedCount())
	assert.Len(t, uncovered(b), 2)
}

func TestRevealIsNoOpOnUncoveredAndOutOfRange(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	b.RevealAt(1)

	assert.Equal(t, InProgress, b.RevealAt(1))
	assert.Equal(t, InProgress, b.RevealAt(-1))
	assert.Equal(t, InProgress, b.RevealAt(16))
	assert.False(t, b.ToggleFlagAt(-1))
	assert.False(t, b.ToggleFlagAt(16))
	assert.Equal(t, 1, b.RevealedCount())
}

func TestFlagProtectsPanel(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)

	require.True(t, b.ToggleFlagAt(0))
	assert.Equal(t, InProgress, b.RevealAt(0))
	p, _ := b.Panel(0)
	assert.True(t, p.Covered())
	assert.True(t, p.Flagged())

	require.True(t, b.ToggleFlagAt(0))
	assert.Equal(t, Lost, b.RevealAt(0))
}

func TestFlagOnUncoveredPanelIsRejected(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	b.RevealAt(5)

	assert.False(t, b.ToggleFlagAt(5))
	p, _ := b.Panel(5)
	assert.False(t, p.Flagged())
}

func TestPropagationSkipsFlaggedPanels(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	require.True(t, b.ToggleFlagAt(15))

	assert.Equal(t, InProgress, b.RevealAt(10))
	assert.Equal(t, 14, b.RevealedCount())
	p, _ := b.Panel(15)
	assert.True(t, p.Covered())

	require.True(t, b.ToggleFlagAt(15))
	assert.Equal(t, Won, b.RevealAt(15))
}

// expectedRegion computes the flood fill from a zero panel on coordinates.
func expectedRegion(b *Board, start int) map[int]bool {
	region := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row, col := i%b.Rows, i/b.Rows
		for dc := -1; dc <= 1; dc++ {
			for dr := -1; dr <= 1; dr++ {
				r, c := row+dr, col+dc
				if r < 0 || r >= b.Rows || c < 0 || c >= b.Columns {
					continue
				}
				j := c*b.Rows + r
				if region[j] {
					continue
				}
				region[j] = true
				if p, _ := b.Panel(j); p.Kind() == 0 {
					stack = append(stack, j)
				}
			}
		}
	}
	return region
}

func TestZeroRegionPropagation(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	params := Params{Rows: 12, Columns: 17, MineCount: 25, PanelWidth: 10}

	checked := 0
	for range 50 {
		b, err := NewBoard(params, RandomPlacer{Rand: r}, nil)
		require.NoError(t, err)

		start := -1
		for i := range b.Cells() {
			if p, _ := b.Panel(i); p.Kind() == 0 {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}
		checked++

		want := expectedRegion(b, start)
		status := b.RevealAt(start)

		assert.Equal(t, want, uncovered(b))
		assert.Equal(t, len(want), b.RevealedCount())
		for i := range want {
			p, _ := b.Panel(i)
			assert.False(t, p.Kind().IsMine())
		}
		if len(want) == params.SafeCells() {
			assert.Equal(t, Won, status)
		} else {
			assert.Equal(t, InProgress, status)
		}
	}
	assert.NotZero(t, checked)
}

func TestRevealingEverySafePanelWins(t *testing.T) {
	b, err := NewBoard(
		Params{Rows: 8, Columns: 8, MineCount: 10, PanelWidth: 10},
		RandomPlacer{Rand: rand.New(rand.NewPCG(5, 6))}, nil,
	)
	require.NoError(t, err)

	for i := range b.Cells() {
		if p, _ := b.Panel(i); p.Kind().IsMine() {
			continue
		}
		status := b.RevealAt(i)
		if b.RevealedCount() < b.SafeCells() {
			require.Equal(t, InProgress, status)
		}
	}
	assert.Equal(t, Won, b.Status())
	assert.Equal(t, b.SafeCells(), b.RevealedCount())
}

func TestActivateResetsFinishedGame(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	b.ToggleFlagAt(3)

	status, err := b.Activate(0)
	require.NoError(t, err)
	require.Equal(t, Lost, status)

	status, err = b.Activate(-1)
	require.NoError(t, err)
	assert.Equal(t, InProgress, status)
	assert.Zero(t, b.RevealedCount())
	assert.Empty(t, uncovered(b))
	p, _ := b.Panel(3)
	assert.False(t, p.Flagged())
	requireConsistent(t, b)

	status, err = b.Activate(15)
	require.NoError(t, err)
	assert.Equal(t, Won, status)
}

func TestActivateOutOfRangeWhileRunningIsNoOp(t *testing.T) {
	b := fixedBoard(t, 4, 4, 0)
	status, err := b.Activate(100)
	require.NoError(t, err)
	assert.Equal(t, InProgress, status)
	assert.Empty(t, uncovered(b))
}

func TestResetRerandomizes(t *testing.T) {
	params := Params{Rows: 10, Columns: 20, MineCount: 40, PanelWidth: 50}
	b, err := NewBoard(params, RandomPlacer{Rand: rand.New(rand.NewPCG(7, 8))}, nil)
	require.NoError(t, err)

	for i := range b.Cells() {
		if p, _ := b.Panel(i); !p.Kind().IsMine() {
			b.RevealAt(i)
			break
		}
	}

	before := b.Mines()
	changed := false
	for range 5 {
		require.NoError(t, b.Reset())
		assert.Equal(t, InProgress, b.Status())
		assert.Zero(t, b.RevealedCount())
		assert.Empty(t, uncovered(b))
		requireConsistent(t, b)
		if !assert.ObjectsAreEqual(before, b.Mines()) {
			changed = true
		}
	}
	assert.True(t, changed)
}

type failingPlacer struct {
	calls int
}

func (p *failingPlacer) Place(cells, mines int) ([]int, error) {
	p.calls++
	if p.calls > 1 {
		return nil, ErrInvalidPlacement
	}
	return FixedPlacer{0}.Place(cells, mines)
}

func TestResetFailureKeepsBoard(t *testing.T) {
	b, err := NewBoard(Params{Rows: 2, Columns: 2, MineCount: 1, PanelWidth: 1}, &failingPlacer{}, nil)
	require.NoError(t, err)
	b.RevealAt(0)
	require.Equal(t, Lost, b.Status())

	_, err = b.Activate(0)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
	assert.Equal(t, Lost, b.Status())
}

func TestDrawRequests(t *testing.T) {
	rec := &Recorder{}
	b, err := NewBoard(
		Params{Rows: 4, Columns: 4, MineCount: 1, PanelWidth: 50},
		FixedPlacer{0}, rec,
	)
	require.NoError(t, err)

	initial := rec.Drain()
	require.Len(t, initial, 16)
	for i, req := range initial {
		assert.Equal(t, i, req.Index)
		assert.Equal(t, Covered, req.Visual)
		assert.Equal(t, 50, req.Size)
	}

	b.ToggleFlagAt(5)
	assert.Equal(t, []DrawRequest{
		{Index: 5, Row: 1, Col: 1, X: 100, Y: 100, Size: 50, Visual: Flagged},
	}, rec.Drain())

	b.ToggleFlagAt(5)
	b.RevealAt(5)
	assert.Equal(t, []DrawRequest{
		{Index: 5, Row: 1, Col: 1, X: 100, Y: 100, Size: 50, Visual: Covered},
		{Index: 5, Row: 1, Col: 1, X: 100, Y: 100, Size: 50, Visual: Number, Number: 1},
	}, rec.Drain())

	b.RevealAt(0)
	assert.Equal(t, []DrawRequest{
		{Index: 0, Row: 0, Col: 0, X: 50, Y: 50, Size: 50, Visual: Exploded},
	}, rec.Drain())

	// rejected inputs draw nothing
	b.RevealAt(3)
	b.ToggleFlagAt(3)
	assert.Zero(t, rec.Len())

	_, err = b.Activate(3)
	require.NoError(t, err)
	reset := rec.Drain()
	require.Len(t, reset, 16)
	for _, req := range reset {
		assert.Equal(t, Covered, req.Visual)
	}
}

func TestViewsDescribeEveryPanel(t *testing.T) {
	b := fixedBoard(t, 1, 3, 2)
	b.RevealAt(0)

	views := b.Views()
	require.Len(t, views, 3)
	assert.Equal(t, Blank, views[0].Visual)
	assert.Equal(t, Number, views[1].Visual)
	assert.Equal(t, 1, views[1].Number)
	assert.Equal(t, Covered, views[2].Visual)
}
