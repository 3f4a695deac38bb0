package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/internal/grapheme"
	"github.com/iw2rmb/selmenu/layer"
)

// ErrInvalidPos is returned by CoordsAtPos for positions outside the document.
var ErrInvalidPos = errors.New("editor: position outside document")

// CoordsAtPos returns the one-cell rectangle of pos in surface coordinates.
//
// Positions scrolled out of the viewport still map (to rows above or below
// the surface); only positions outside the document are an error.
func (m Model) CoordsAtPos(pos buffer.Pos) (layer.Rect, error) {
	doc := m.buf.Doc()
	if !doc.Contains(pos) {
		return layer.Rect{}, fmt.Errorf("%w: %d:%d", ErrInvalidPos, pos.Row, pos.Col)
	}

	x := m.gutterWidth(doc.LineCount()) + m.cellOffset(doc.Line(pos.Row), pos.Col)
	y := pos.Row - m.viewport.YOffset
	return layer.Rect{Left: x, Top: y, Right: x + 1, Bottom: y + 1}, nil
}

// cellOffset is the number of cells before grapheme col.
func (m Model) cellOffset(line string, col int) int {
	cells := 0
	for i, c := range grapheme.Split(line) {
		if i >= col {
			break
		}
		cells += grapheme.CellWidth(c, m.cfg.TabWidth)
	}
	return cells
}

// screenToDocPos maps viewport-local cell coordinates to a document position.
// Gutter clicks map to column 0; coordinates past the line end map to its end.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	doc := m.buf.Doc()
	row := clampInt(m.viewport.YOffset+y, 0, doc.LineCount()-1)

	vx := x - m.gutterWidth(doc.LineCount())
	if vx <= 0 {
		return buffer.Pos{Row: row}
	}

	cells := 0
	clusters := grapheme.Split(doc.Line(row))
	for i, c := range clusters {
		w := grapheme.CellWidth(c, m.cfg.TabWidth)
		if vx < cells+w {
			return buffer.Pos{Row: row, Col: i}
		}
		cells += w
	}
	return buffer.Pos{Row: row, Col: len(clusters)}
}
