package buffer

// Pos points into the logical document by (row, col).
// Row and Col are 0-based; Col counts grapheme clusters.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open span in document coordinates: [Start, End).
// Start <= End in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPos clamps p into the bounds of d.
//
// The returned Pos always satisfies:
// - 0 <= Row < d.LineCount()
// - 0 <= Col <= d.LineLen(Row)
func ClampPos(p Pos, d Doc) Pos {
	row := clampInt(p.Row, 0, d.LineCount()-1)
	return Pos{Row: row, Col: clampInt(p.Col, 0, d.LineLen(row))}
}

// Contains reports whether p addresses a valid position in d.
func (d Doc) Contains(p Pos) bool {
	if p.Row < 0 || p.Row >= d.LineCount() {
		return false
	}
	return p.Col >= 0 && p.Col <= d.LineLen(p.Row)
}
