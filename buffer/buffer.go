package buffer

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the mutable document: text plus selection.
//
// Version increases on every effective change to either.
type Buffer struct {
	doc     Doc
	sel     Selection
	version uint64

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		doc: NewDoc(text),
		opt: opt,
	}
}

func (b *Buffer) Text() string { return b.doc.Text() }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Doc() Doc { return b.doc }

// State returns the current snapshot.
func (b *Buffer) State() State {
	return State{Doc: b.doc, Selection: b.sel}
}

func (b *Buffer) Cursor() Pos { return b.sel.Head }

func (b *Buffer) Selection() Selection { return b.sel }

// SetCursor collapses the selection to p.
func (b *Buffer) SetCursor(p Pos) {
	b.setSelection(Cursor(ClampPos(p, b.doc)))
}

// SetSelection sets the anchor and head, clamped into the document.
func (b *Buffer) SetSelection(s Selection) {
	b.setSelection(Selection{
		Anchor: ClampPos(s.Anchor, b.doc),
		Head:   ClampPos(s.Head, b.doc),
	})
}

// SelectAll selects the whole document with the head at the end.
func (b *Buffer) SelectAll() {
	last := b.doc.LineCount() - 1
	b.setSelection(Selection{
		Anchor: Pos{},
		Head:   Pos{Row: last, Col: b.doc.LineLen(last)},
	})
}

// ClearSelection collapses the selection onto its head.
func (b *Buffer) ClearSelection() {
	b.setSelection(Cursor(b.sel.Head))
}

func (b *Buffer) setSelection(next Selection) {
	if next.Eq(b.sel) {
		return
	}
	b.sel = next
	b.version++
}
