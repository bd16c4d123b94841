package desktop

import (
	"flag"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Config represents the command-line parameters for the desktop client.
type Config struct {
	Rows       int
	Columns    int
	MineCount  int
	PanelWidth int
	Seed       uint64
	Debug      bool
}

// NewConfig returns the classic 10x20 board with 40 mines.
func NewConfig() *Config {
	return &Config{Rows: 10, Columns: 20, MineCount: 40, PanelWidth: 50}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "number of columns")
	fs.IntVar(&c.MineCount, "mines", c.MineCount, "number of mines")
	fs.IntVar(&c.PanelWidth, "width", c.PanelWidth, "panel size in pixels")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "mine placement seed (0 = random)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log every input")
}

func (c *Config) Params() mines.Params {
	return mines.Params{
		Rows:       c.Rows,
		Columns:    c.Columns,
		MineCount:  c.MineCount,
		PanelWidth: c.PanelWidth,
	}
}

func (c *Config) Placer() mines.Placer {
	if c.Seed == 0 {
		return mines.RandomPlacer{Rand: mines.NewRand()}
	}
	return mines.RandomPlacer{Rand: rand.New(rand.NewPCG(c.Seed, c.Seed))}
}
