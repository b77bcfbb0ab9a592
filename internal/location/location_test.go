package location

import "testing"

func TestStringFormatsPathLineColumn(t *testing.T) {
	loc := New("main.src", 3, 7)
	if got, want := loc.String(), "main.src:3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGlobalIsGlobal(t *testing.T) {
	if !Global.IsGlobal() {
		t.Errorf("Global.IsGlobal() = false, want true")
	}
	if New("x.src", 1, 1).IsGlobal() {
		t.Errorf("non-global location reported IsGlobal() = true")
	}
}

func TestLocationValueCopy(t *testing.T) {
	a := New("a.src", 1, 1)
	b := a
	b.Line = 99
	if a.Line == 99 {
		t.Errorf("Location is not value-copied: mutating b affected a")
	}
}

func TestGlobalString(t *testing.T) {
	if got, want := Global.String(), "<builtin>"; got != want {
		t.Errorf("Global.String() = %q, want %q", got, want)
	}
}
