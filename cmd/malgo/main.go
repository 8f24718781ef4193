// Command malgo is the interpreter's driver: a REPL when run with no
// script argument, or a one-shot file execution when given one.
//
// The driver follows a linear read/parse/run pipeline with two exit
// codes: success, or an uncaught error at the top level. Argument parsing
// goes through cobra.Command.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/malgo/pkgs/corelib"
	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/eval"
	"github.com/aledsdavies/malgo/pkgs/reader"
	"github.com/aledsdavies/malgo/pkgs/repl"
	"github.com/aledsdavies/malgo/pkgs/types"
)

// Exit code constants: success, or an uncaught error at the top level.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var historyPath string
	var noColor bool

	exitCode := ExitSuccess

	root := &cobra.Command{
		Use:           "malgo [script] [args...]",
		Short:         "malgo is a small Lisp interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newRootEnv()

			if len(args) == 0 {
				bindArgv(e, nil)
				startREPL(e, historyPath, noColor)
				return nil
			}

			scriptPath := args[0]
			bindArgv(e, args[1:])
			if err := runFile(e, scriptPath); err != nil {
				fmt.Fprintln(os.Stderr, repl.FormatError(err))
				exitCode = ExitFailure
			}
			return nil
		},
	}

	root.Flags().StringVar(&historyPath, "history", "history.txt", "path to the REPL history file")
	root.Flags().BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable ANSI styling in the REPL and error output")
	root.SetArgs(argv)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return exitCode
}

// newRootEnv builds the root environment: corelib's builtins, the
// eval.Apply wiring corelib needs for map/apply/swap!, and the bootstrap
// forms (not, load-file, cond).
func newRootEnv() *env.Environment {
	corelib.Apply = eval.Apply
	e := corelib.New()
	if err := eval.Bootstrap(e); err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap failed:", err)
		os.Exit(ExitFailure)
	}
	return e
}

// bindArgv binds *ARGV* to the script's trailing arguments, as a list of
// strings.
func bindArgv(e *env.Environment, args []string) {
	items := make([]*types.Value, len(args))
	for i, a := range args {
		items[i] = types.NewStr(a)
	}
	e.Set("*ARGV*", types.NewList(items))
}

func runFile(e *env.Environment, path string) error {
	src := fmt.Sprintf(`(load-file "%s")`, escapePathForForm(path))
	form, err := reader.ReadStr(src)
	if err != nil {
		return err
	}
	_, err = eval.Eval(form, e)
	return err
}

func startREPL(e *env.Environment, historyPath string, noColor bool) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		repl.RunPlain(e,
			func() (string, bool) {
				if !scanner.Scan() {
					return "", false
				}
				return scanner.Text(), true
			},
			func(s string) { fmt.Println(s) },
		)
		return
	}

	if err := repl.Run(e, historyPath, noColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func escapePathForForm(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '"' || path[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, path[i])
	}
	return string(out)
}
