package handlers

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // draw every panel
	"o": 2, // open (reveal) row col
	"f": 2, // toggle flag row col
	"a": 2, // primary action row col
	"n": 0, // new board
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrCommandNargs   = errors.New("invalid number of arguments")
)

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand applies one text command. Coordinates outside the grid
// resolve to no panel and are ignored by the board.
func executeCommand(b *mines.Board, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return ErrCommandNargs
	}

	index := mines.NoPanel
	if nargs == 2 {
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		index = b.Resolve(row, col)
	}

	switch parts[0] {
	case "g":
		b.Draw()
	case "o":
		b.RevealAt(index)
	case "f":
		b.ToggleFlagAt(index)
	case "a":
		_, err := b.Activate(index)
		return err
	case "n":
		return b.Reset()
	}
	return nil
}
