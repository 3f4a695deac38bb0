package buffer

import (
	"strings"

	"github.com/iw2rmb/selmenu/internal/grapheme"
)

// Doc is an immutable list of lines. Lines never contain '\n'.
//
// Docs produced by the same Buffer share line storage until an edit, which
// keeps Eq cheap for the common "selection only" transaction.
type Doc struct {
	lines []string
}

func NewDoc(text string) Doc {
	return Doc{lines: strings.Split(text, "\n")}
}

func (d Doc) LineCount() int {
	if len(d.lines) == 0 {
		return 1
	}
	return len(d.lines)
}

func (d Doc) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return d.lines[row]
}

// LineLen returns the grapheme count of row.
func (d Doc) LineLen(row int) int {
	return grapheme.Count(d.Line(row))
}

func (d Doc) Text() string {
	return strings.Join(d.lines, "\n")
}

// Eq reports structural equality: same line count and same line text.
func (d Doc) Eq(o Doc) bool {
	if len(d.lines) != len(o.lines) {
		return false
	}
	if len(d.lines) == 0 || &d.lines[0] == &o.lines[0] {
		return true
	}
	for i := range d.lines {
		if d.lines[i] != o.lines[i] {
			return false
		}
	}
	return true
}

// Slice returns the text in r, joining rows with '\n'.
func (d Doc) Slice(r Range) string {
	r = NormalizeRange(r)
	r.Start = ClampPos(r.Start, d)
	r.End = ClampPos(r.End, d)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Slice(d.Line(r.Start.Row), r.Start.Col, r.End.Col)
	}

	var sb strings.Builder
	sb.WriteString(grapheme.Slice(d.Line(r.Start.Row), r.Start.Col, d.LineLen(r.Start.Row)))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(d.Line(row))
	}
	sb.WriteByte('\n')
	sb.WriteString(grapheme.Slice(d.Line(r.End.Row), 0, r.End.Col))
	return sb.String()
}

// Selection is an anchor/head pair. The head moves with the cursor; an
// empty selection is a plain cursor.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Cursor returns an empty selection at p.
func Cursor(p Pos) Selection {
	return Selection{Anchor: p, Head: p}
}

func (s Selection) Empty() bool { return s.Anchor == s.Head }

func (s Selection) Eq(o Selection) bool {
	return s.Anchor == o.Anchor && s.Head == o.Head
}

// Range returns the selection in document order.
func (s Selection) Range() Range {
	return NormalizeRange(Range{Start: s.Anchor, End: s.Head})
}

// State is an immutable editor snapshot.
type State struct {
	Doc       Doc
	Selection Selection
}

// Eq reports whether both the document and the selection are equal.
func (s State) Eq(o State) bool {
	return s.Doc.Eq(o.Doc) && s.Selection.Eq(o.Selection)
}

func (s State) SelectedText() string {
	return s.Doc.Slice(s.Selection.Range())
}
