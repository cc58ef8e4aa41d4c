package lib

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Formula is a compiled damage expression over the variables attack, hp and defense.
type Formula struct {
	source  string
	program *vm.Program
}

func formulaEnv(attack, hp, defense float64) map[string]any {
	return map[string]any{
		"attack":  attack,
		"hp":      hp,
		"defense": defense,
	}
}

func CompileFormula(source string) (*Formula, error) {
	program, err := expr.Compile(source, expr.Env(formulaEnv(0, 0, 0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("Cannot compile damage formula %q (%w)", source, err)
	}
	return &Formula{source: source, program: program}, nil
}

func (f *Formula) Eval(attack, attackerHP, defense int) (float64, error) {
	result, err := vm.Run(f.program, formulaEnv(float64(attack), float64(attackerHP), float64(defense)))
	if err != nil {
		return 0, fmt.Errorf("Cannot evaluate damage formula %q (%w)", f.source, err)
	}
	raw, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("Damage formula %q returned %T", f.source, result)
	}
	return raw, nil
}

func (f *Formula) String() string {
	return f.source
}
