package eval

import (
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/reader"
)

// bootstrapForms are evaluated once against the root environment before any
// user code runs. Ported verbatim (in meaning) from the original
// implementation's own bootstrap sequence: `not` and `load-file` are plain
// definitions, `cond` is the first macro the language needs to define
// itself rather than have the evaluator special-case.
var bootstrapForms = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0)
		(list 'if (first xs)
			(if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond"))
			(cons 'cond (rest (rest xs)))))))`,
}

// Bootstrap evaluates the fixed bootstrap forms against e, in order. It
// must run after corelib's builtins (and the eval/Apply wiring they need)
// are already bound in e, and before any user or script code.
func Bootstrap(e *env.Environment) error {
	for _, src := range bootstrapForms {
		form, err := reader.ReadStr(src)
		if err != nil {
			return err
		}
		if form == nil {
			continue
		}
		if _, err := Eval(form, e); err != nil {
			return err
		}
	}
	return nil
}
