package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelection
	cellCursor
)

func (m *Model) renderContent() string {
	st := m.buf.State()
	doc := st.Doc
	sel := st.Selection.Range()
	head := st.Selection.Head

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(doc.LineCount())
	}

	out := make([]string, 0, doc.LineCount())
	for row := 0; row < doc.LineCount(); row++ {
		var sb strings.Builder
		if digits > 0 {
			style := m.cfg.Style.LineNum
			if row == head.Row {
				style = m.cfg.Style.LineNumActive
			}
			sb.WriteString(style.Render(fmt.Sprintf("%*d ", digits, row+1)))
		}
		m.renderLine(&sb, row, doc.Line(row), sel, head)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine writes one logical line, grouping clusters into style runs.
func (m *Model) renderLine(sb *strings.Builder, row int, line string, sel buffer.Range, head buffer.Pos) {
	clusters := grapheme.Split(line)

	var run strings.Builder
	kind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(kind).Render(run.String()))
		run.Reset()
	}

	for col, c := range clusters {
		k := m.kindAt(buffer.Pos{Row: row, Col: col}, sel, head)
		if k != kind {
			flush()
			kind = k
		}
		if c == "\t" {
			c = strings.Repeat(" ", m.cfg.TabWidth)
		}
		run.WriteString(c)
	}
	flush()

	if m.focused && head.Row == row && head.Col >= len(clusters) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
}

func (m *Model) kindAt(p buffer.Pos, sel buffer.Range, head buffer.Pos) cellKind {
	if m.focused && p == head {
		return cellCursor
	}
	if !sel.IsEmpty() && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0 {
		return cellSelection
	}
	return cellText
}

func (m *Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellSelection:
		return m.cfg.Style.Selection
	case cellCursor:
		return m.cfg.Style.Cursor
	default:
		return m.cfg.Style.Text
	}
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprint(max(lineCount, 1)))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}
