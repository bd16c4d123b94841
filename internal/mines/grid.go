package mines

import (
	"fmt"
	"strings"
)

// Symbol is the one-character form of a draw request used in text dumps.
func (r DrawRequest) Symbol() string {
	switch r.Visual {
	case Covered:
		return "#"
	case Flagged:
		return "F"
	case Blank:
		return "."
	case Number:
		return fmt.Sprint(r.Number)
	case Exploded:
		return "*"
	default:
		return "!"
	}
}

// [*Board] implements [fmt.Stringer]. Rows are printed top to bottom as
// the player sees them.
func (b *Board) String() string {
	return b.dump(func(p *Panel) string {
		return p.View().Symbol()
	})
}

// Layout prints what every panel hides, covered or not.
func (b *Board) Layout() string {
	return b.dump(func(p *Panel) string {
		if p.kind == 0 {
			return "."
		}
		return p.kind.String()
	})
}

func (b *Board) dump(symbol func(*Panel) string) string {
	var sb strings.Builder
	for row := range b.Rows {
		for col := range b.Columns {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(symbol(b.panels[b.Index(row, col)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
