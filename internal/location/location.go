// Package location provides source positions used throughout the
// compiler pipeline: lexer, parser, semantic layer, checker and
// translator all tag their nodes and diagnostics with a Location.
package location

import "fmt"

// Location is a source position: a file path plus a 1-based line and
// column. Locations are value-copied; nothing here owns state.
type Location struct {
	Path   string
	Line   int
	Column int
}

// Global is the distinguished location used for synthetic and built-in
// entities (e.g. the built-in scope's Bool/Integer/Float/Text types
// and built-in function overloads), which have no source position.
var Global = Location{Path: "<builtin>", Line: 0, Column: 0}

// IsGlobal reports whether l is the synthetic built-in location.
func (l Location) IsGlobal() bool {
	return l == Global
}

// String formats the location as "path:line:column", the form used by
// diagnostic messages (see internal/errors).
func (l Location) String() string {
	if l.IsGlobal() {
		return l.Path
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// New constructs a Location at the given path/line/column.
func New(path string, line, column int) Location {
	return Location{Path: path, Line: line, Column: column}
}
