package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the cluster-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" || end <= start {
		return ""
	}
	if start < 0 {
		start = 0
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// CellWidth returns the terminal width of one cluster. Tabs take tabWidth
// cells and zero-width clusters still occupy one cell so the cursor stays
// visible on them.
func CellWidth(cluster string, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
