package desktop

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Controller turns resolved pointer input into board operations. It is
// driven from the render loop, one event at a time.
type Controller struct {
	log    *logrus.Logger
	board  *mines.Board
	canvas *Canvas
}

func NewController(log *logrus.Logger, params mines.Params, placer mines.Placer) (*Controller, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	canvas := NewCanvas(params.Cells())
	board, err := mines.NewBoard(params, placer, canvas)
	if err != nil {
		return nil, err
	}
	return &Controller{log: log, board: board, canvas: canvas}, nil
}

func (c *Controller) Params() mines.Params {
	return c.board.Params
}

func (c *Controller) Status() mines.Status {
	return c.board.Status()
}

func (c *Controller) Canvas() *Canvas {
	return c.canvas
}

// Primary handles a left click: reveal the panel under the pointer, or
// start a new game if this one is over.
func (c *Controller) Primary(x, y int) {
	index := CellAt(c.board.Params, x, y)
	before := c.board.Status()
	status, err := c.board.Activate(index)
	if err != nil {
		c.log.WithError(err).Error("unable to start a new game")
		return
	}
	c.logTransition(before, status, index)
}

// Secondary handles a right click: toggle the flag under the pointer.
func (c *Controller) Secondary(x, y int) {
	index := CellAt(c.board.Params, x, y)
	if c.board.ToggleFlagAt(index) {
		c.log.WithField("index", index).Debug("flag toggled")
	}
}

func (c *Controller) Reset() {
	if err := c.board.Reset(); err != nil {
		c.log.WithError(err).Error("unable to start a new game")
		return
	}
	c.log.Debug("new game")
}

func (c *Controller) logTransition(before, after mines.Status, index int) {
	fields := logrus.Fields{
		"index":    index,
		"revealed": c.board.RevealedCount(),
	}
	switch {
	case before.Terminal() && !after.Terminal():
		c.log.Info("new game")
	case !before.Terminal() && after.Terminal():
		c.log.WithFields(fields).Info(Banner(after))
	default:
		c.log.WithFields(fields).Debug("reveal")
	}
}
