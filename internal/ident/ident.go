// Package ident implements interned identifiers (Symbol) used as the
// names of variables and functions. Equality between symbols is by
// string content; interning means two symbols with the same text
// always compare equal and share storage.
package ident

import "sync"

// Symbol is an interned textual identifier.
type Symbol struct {
	text string
}

// String returns the symbol's textual form.
func (s Symbol) String() string {
	return s.text
}

// Equal reports whether two symbols have the same textual content.
func (s Symbol) Equal(o Symbol) bool {
	return s.text == o.text
}

var (
	mu    sync.Mutex
	table = map[string]Symbol{}
)

// New interns s and returns its Symbol. Calling New twice with the
// same text returns equal Symbols.
func New(s string) Symbol {
	mu.Lock()
	defer mu.Unlock()
	if sym, ok := table[s]; ok {
		return sym
	}
	sym := Symbol{text: s}
	table[s] = sym
	return sym
}
