package journeys

import (
	"log"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// compilePredicate compiles an activation expression once, at definition time.
// Expressions are evaluated over the flattened answers map, so an unanswered
// field shows up as an undefined variable.
func compilePredicate(src string) *vm.Program {
	if src == "" {
		return nil
	}
	program, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		// นิยาม journey ผิดตั้งแต่ประกาศ — ให้ตายตอน start ไม่ใช่ตอน request
		log.Fatalf("invalid activation predicate %q: %v", src, err)
	}
	return program
}

// evalPredicate runs a compiled predicate against the answers environment.
// A nil program is always active. A runtime failure (typically a reference to
// an answer that does not exist yet) means inactive, never an error — linear
// progress must not be blocked before the controlling answer is supplied.
func evalPredicate(program *vm.Program, env map[string]any) bool {
	if program == nil {
		return true
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	active, ok := out.(bool)
	return ok && active
}
