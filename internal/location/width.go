package location

import "golang.org/x/text/width"

// DisplayWidth returns the number of terminal columns s occupies,
// counting East-Asian wide and fullwidth runes as two columns and
// everything else as one. Columns recorded on a Location are rune
// counts; this is the terminal-rendering companion used when aligning
// a caret under a source line (internal/errors).
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// ColumnOffset returns the terminal-column offset of the 1-based rune
// column within line, accounting for wide runes that precede it —
// the value internal/errors pads with spaces to align a caret.
func ColumnOffset(line string, column int) int {
	if column <= 1 {
		return 0
	}
	offset := 0
	n := 0
	for _, r := range line {
		if n >= column-1 {
			break
		}
		offset += runeWidth(r)
		n++
	}
	return offset
}
