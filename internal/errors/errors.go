// Package errors implements the single SyntaxError kind shared by the
// parser and type checker, plus source-context formatting for
// diagnostics.
package errors

import (
	"fmt"
	"strings"

	"github.com/reactor-lang/reactorc/internal/location"
)

// Code enumerates every diagnostic code used across the parser and
// checker.
type Code string

const (
	MissingToken                    Code = "MISSING_TOKEN"
	StatementExpected               Code = "STATEMENT_EXPECTED"
	ExpressionExpected              Code = "EXPRESSION_EXPECTED"
	NewLineExpected                 Code = "NEW_LINE_EXPECTED"
	FunctionParameterAlreadyDefined Code = "FUNCTION_PARAMETER_ALREADY_DEFINED"
	Redefinition                    Code = "REDEFINITION"
	OverloadNotFound                Code = "OVERLOAD_NOT_FOUND"
	VariableNotFound                Code = "VARIABLE_NOT_FOUND"
	IncompleteInput                 Code = "INCOMPLETE_INPUT"
)

// SyntaxError carries a diagnostic code, its location, and an
// optional secondary location (e.g. REDEFINITION's original binding
// site).
type SyntaxError struct {
	Code      Code
	Location  location.Location
	Message   string
	Secondary *location.Location

	// Source and File are optional, set by callers that want
	// Format(true-ish caret rendering); both may be empty.
	Source string
	File   string
}

// New constructs a SyntaxError with no secondary location.
func New(code Code, loc location.Location, message string) *SyntaxError {
	return &SyntaxError{Code: code, Location: loc, Message: message}
}

// WithSecondary returns a copy of e with a secondary location attached
// (used by REDEFINITION to point at the original binding).
func (e *SyntaxError) WithSecondary(loc location.Location) *SyntaxError {
	cp := *e
	cp.Secondary = &loc
	return &cp
}

// Error implements the error interface as "path:line:col: CODE: message".
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Location.String(), e.Code, e.Message)
}

// Format renders the diagnostic with a source-line/caret view when
// Source is populated.
func (e *SyntaxError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Location.Line, e.Location.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Location.Line, e.Location.Column)
	}

	if line := sourceLine(e.Source, e.Location.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Location.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+location.ColumnOffset(line, e.Location.Column)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	fmt.Fprintf(&sb, "%s: %s", e.Code, e.Message)
	if e.Secondary != nil {
		fmt.Fprintf(&sb, " (originally defined at %s)", e.Secondary.String())
	}
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
