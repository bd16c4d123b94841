package handlers

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

var ErrBoardTooLarge = errors.New("board too large")

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// NewBoardDTO leaves absent fields nil so they fall back to the defaults;
// fields that are present are validated as given.
type NewBoardDTO struct {
	Rows       *int `schema:"rows"`
	Columns    *int `schema:"columns"`
	MineCount  *int `schema:"mine_count"`
	PanelWidth *int `schema:"panel_width"`
}

func ParseNewBoardParams(src map[string][]string, defaults mines.Params, maxCells int) (mines.Params, error) {
	var dto NewBoardDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.Params{}, err
	}

	params := defaults
	if dto.Rows != nil {
		params.Rows = *dto.Rows
	}
	if dto.Columns != nil {
		params.Columns = *dto.Columns
	}
	if dto.MineCount != nil {
		params.MineCount = *dto.MineCount
	}
	if dto.PanelWidth != nil {
		params.PanelWidth = *dto.PanelWidth
	}

	if err := params.Validate(); err != nil {
		return mines.Params{}, err
	}
	if params.Cells() > maxCells {
		return mines.Params{}, fmt.Errorf("%w (panels = %d, max = %d)",
			ErrBoardTooLarge, params.Cells(), maxCells)
	}
	return params, nil
}

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var pos PositionDTO
	err := decoder.Decode(&pos, src)
	return pos, err
}
