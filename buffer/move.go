package buffer

import "github.com/iw2rmb/selmenu/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // keep the anchor and move only the head
}

func (b *Buffer) Move(m Move) {
	head := ClampPos(b.moveHead(b.sel.Head, m), b.doc)
	if m.Extend {
		b.setSelection(Selection{Anchor: b.sel.Anchor, Head: head})
		return
	}
	b.setSelection(Cursor(head))
}

func (b *Buffer) moveHead(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: b.doc.LineLen(p.Row - 1)}
	case DirRight:
		if p.Col < b.doc.LineLen(p.Row) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row == b.doc.LineCount()-1 {
			return p
		}
		return Pos{Row: p.Row + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := grapheme.Split(b.doc.Line(p.Row))
	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: b.doc.LineLen(p.Row)}
	case DirUp:
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: min(p.Col, b.doc.LineLen(p.Row-1))}
	case DirDown:
		if p.Row == b.doc.LineCount()-1 {
			return p
		}
		return Pos{Row: p.Row + 1, Col: min(p.Col, b.doc.LineLen(p.Row+1))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	last := b.doc.LineCount() - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: last, Col: b.doc.LineLen(last)}
	default:
		return p
	}
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
