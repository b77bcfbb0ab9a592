package errors

import (
	"strings"
	"testing"

	"github.com/reactor-lang/reactorc/internal/location"
)

func TestErrorFormatsPathLineColCodeMessage(t *testing.T) {
	loc := location.New("main.src", 2, 5)
	err := New(NewLineExpected, loc, "expected a new line after statement")
	want := "main.src:2:5: NEW_LINE_EXPECTED: expected a new line after statement"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithSecondaryDoesNotMutateOriginal(t *testing.T) {
	loc := location.New("main.src", 2, 5)
	original := New(Redefinition, loc, "f is already defined")
	withSecond := original.WithSecondary(location.New("main.src", 1, 1))

	if original.Secondary != nil {
		t.Errorf("WithSecondary must not mutate the receiver")
	}
	if withSecond.Secondary == nil {
		t.Fatalf("WithSecondary should set a secondary location on the copy")
	}
	if !strings.Contains(withSecond.Format(false), "originally defined at main.src:1:1") {
		t.Errorf("Format should mention the secondary location, got %q", withSecond.Format(false))
	}
}

func TestFormatRendersCaretUnderColumn(t *testing.T) {
	err := New(ExpressionExpected, location.New("x.src", 1, 5), "expected an expression")
	err.Source = "1 2 3"
	err.File = "x.src"
	formatted := err.Format(false)
	if !strings.Contains(formatted, "1 2 3") {
		t.Errorf("Format should include the offending source line")
	}
	if !strings.Contains(formatted, "^") {
		t.Errorf("Format should include a caret")
	}
}
