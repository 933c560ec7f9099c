package shell

import (
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// evalArithmetic evaluates input as a POSIX shell arithmetic expression
// against the real environment, so $VAR references work inside expressions.
// Values are integers; division truncates.
func evalArithmetic(input string) (int, error) {
	expr, err := syntax.NewParser().Arithmetic(strings.NewReader(input))
	if err != nil {
		return 0, err
	}

	cfg := &expand.Config{Env: expand.ListEnviron(os.Environ()...)}
	return expand.Arithm(cfg, expr)
}
