package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_ClampsAndKeepsDirection(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Selection{Anchor: Pos{Row: 1, Col: 99}, Head: Pos{Row: 0, Col: -1}})
	sel := b.Selection()
	if sel.Anchor != (Pos{Row: 1, Col: 2}) || sel.Head != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("selection=%+v", sel)
	}
	if got, want := sel.Range(), (Range{Start: Pos{}, End: Pos{Row: 1, Col: 2}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if sel.Empty() {
		t.Fatalf("expected non-empty selection")
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetSelection(sel)
	if b.Version() != 1 {
		t.Fatalf("same selection must not bump version, got %d", b.Version())
	}
}

func TestBuffer_SelectAllAndClear(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SelectAll()
	if got := b.State().SelectedText(); got != "ab\ncd" {
		t.Fatalf("selected text=%q", got)
	}
	b.ClearSelection()
	if !b.Selection().Empty() {
		t.Fatalf("expected collapsed selection")
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want head (1,2)", got)
	}
}

func TestState_SnapshotsAreImmutable(t *testing.T) {
	b := New("hello", Options{})
	before := b.State()

	b.SetCursor(Pos{Col: 5})
	afterMove := b.State()
	if !before.Doc.Eq(afterMove.Doc) {
		t.Fatalf("cursor move must keep doc equal")
	}
	if before.Selection.Eq(afterMove.Selection) {
		t.Fatalf("cursor move must change selection")
	}

	b.InsertText("!")
	if got := before.Doc.Text(); got != "hello" {
		t.Fatalf("old snapshot mutated: %q", got)
	}
	if before.Doc.Eq(b.State().Doc) {
		t.Fatalf("edit must change doc")
	}
}

func TestDoc_EqIsStructural(t *testing.T) {
	a := NewDoc("x\ny")
	b := NewDoc("x\ny")
	if !a.Eq(b) {
		t.Fatalf("docs with equal lines must be equal")
	}
	if a.Eq(NewDoc("x\nz")) || a.Eq(NewDoc("x")) {
		t.Fatalf("docs with different lines must differ")
	}
}

func TestDoc_Contains(t *testing.T) {
	d := NewDoc("ab\nc")
	cases := []struct {
		p    Pos
		want bool
	}{
		{Pos{Row: 0, Col: 2}, true},
		{Pos{Row: 1, Col: 1}, true},
		{Pos{Row: 1, Col: 2}, false},
		{Pos{Row: 2, Col: 0}, false},
		{Pos{Row: -1, Col: 0}, false},
	}
	for _, tc := range cases {
		if got := d.Contains(tc.p); got != tc.want {
			t.Fatalf("Contains(%v): got %v, want %v", tc.p, got, tc.want)
		}
	}
}
