package translator

import (
	"fmt"
	"strconv"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/reactor"
	"github.com/reactor-lang/reactorc/internal/types"
)

// lowerLiteral dispatches on the literal's data type and emits a
// constant-reactor builder whose payload is the parsed runtime value.
// The literal's verbatim text is only ever converted here.
func (t *Translator) lowerLiteral(l *ast.Literal) (reactor.Builder, error) {
	switch l.Type() {
	case types.Bool:
		return reactor.Constant(l.Text == "true"), nil
	case types.Integer:
		n, err := strconv.ParseInt(l.Text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("translator: invalid integer literal %q: %w", l.Text, err)
		}
		return reactor.Constant(n), nil
	case types.Float:
		f, err := strconv.ParseFloat(l.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("translator: invalid float literal %q: %w", l.Text, err)
		}
		return reactor.Constant(f), nil
	case types.Text:
		s, err := strconv.Unquote(l.Text)
		if err != nil {
			// Text that didn't come through Go-style quoting (the
			// lexer hands back the literal already unquoted) is used
			// verbatim.
			s = l.Text
		}
		return reactor.Constant(s), nil
	default:
		return nil, fmt.Errorf("translator: literal has unsupported type %v", l.Type())
	}
}
