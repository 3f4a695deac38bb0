package buffer

import (
	"strings"

	"github.com/iw2rmb/selmenu/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replace(b.sel.Range(), s)
}

// InsertNewline inserts a line break at the cursor, or replaces the
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteSelection removes the selected text. No-op for an empty selection.
func (b *Buffer) DeleteSelection() {
	if b.sel.Empty() {
		return
	}
	b.replace(b.sel.Range(), "")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if !b.sel.Empty() {
		b.DeleteSelection()
		return
	}
	cur := b.sel.Head
	if cur.Row == 0 && cur.Col == 0 {
		return
	}
	start := Pos{Row: cur.Row, Col: cur.Col - 1}
	if cur.Col == 0 {
		// Join with the previous line.
		start = Pos{Row: cur.Row - 1, Col: b.doc.LineLen(cur.Row - 1)}
	}
	b.replace(Range{Start: start, End: cur}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if !b.sel.Empty() {
		b.DeleteSelection()
		return
	}
	cur := b.sel.Head
	last := b.doc.LineCount() - 1
	lineLen := b.doc.LineLen(cur.Row)
	if cur.Row == last && cur.Col == lineLen {
		return
	}
	end := Pos{Row: cur.Row, Col: cur.Col + 1}
	if cur.Col == lineLen {
		end = Pos{Row: cur.Row + 1, Col: 0}
	}
	b.replace(Range{Start: cur, End: end}, "")
}

// replace swaps r for text and leaves the cursor after the inserted text.
// The previous line slice is never written to, so older States stay valid.
func (b *Buffer) replace(r Range, text string) {
	r = NormalizeRange(Range{Start: ClampPos(r.Start, b.doc), End: ClampPos(r.End, b.doc)})
	if r.IsEmpty() && text == "" {
		return
	}

	prev := b.State()

	startLine := b.doc.Line(r.Start.Row)
	endLine := b.doc.Line(r.End.Row)
	before := grapheme.Slice(startLine, 0, r.Start.Col)
	after := grapheme.Slice(endLine, r.End.Col, grapheme.Count(endLine))

	inserted := strings.Split(text, "\n")
	inserted[0] = before + inserted[0]
	lastIns := len(inserted) - 1
	cursor := Pos{
		Row: r.Start.Row + lastIns,
		Col: grapheme.Count(inserted[lastIns]),
	}
	inserted[lastIns] += after

	old := b.doc.lines
	if len(old) == 0 {
		old = []string{""}
	}
	lines := make([]string, 0, len(old)-(r.End.Row-r.Start.Row)+lastIns)
	lines = append(lines, old[:r.Start.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, old[r.End.Row+1:]...)

	b.doc = Doc{lines: lines}
	b.sel = Cursor(cursor)
	b.version++
	b.recordUndo(prev)
}
