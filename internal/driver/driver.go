// Package driver dispatches parsed statements into a context: the thin
// layer that turns the parser's Statement stream into context mutations
// and REPL-printable results.
package driver

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/context"
	"github.com/lambdapi/lambdapi/internal/errors"
	"github.com/lambdapi/lambdapi/internal/eval"
	"github.com/lambdapi/lambdapi/internal/types"
)

// Result is what a statement produces for display: Kind names the
// originating statement kind and Display holds the text to print.
type Result struct {
	Kind    string // "declare", "let", "eval", "show"
	Display string
}

// Run executes one statement against ctx. Declarations are atomic: the
// context is mutated only after the statement has fully type-checked. An
// *errors.Internal invariant violation is fatal: Run panics with it instead
// of returning it.
func Run(ctx *context.Context, stmt ast.Statement) (res *Result, err error) {
	defer func() {
		if internal, ok := err.(*errors.Internal); ok {
			panic(internal)
		}
	}()
	switch s := stmt.(type) {
	case *ast.Declare:
		return runDeclare(ctx, s)
	case *ast.Let:
		return runLet(ctx, s)
	case *ast.Eval:
		return runEval(ctx, s)
	case *ast.Show:
		return runShow(ctx), nil
	default:
		return nil, fmt.Errorf("driver: unhandled statement type %T", stmt)
	}
}

func runDeclare(ctx *context.Context, s *ast.Declare) (*Result, error) {
	if err := types.Check(ctx, s.Type, eval.VUniverse{}); err != nil {
		return nil, err
	}
	level := ctx.Len()
	ty, err := eval.Eval(s.Type, ctx.Env())
	if err != nil {
		return nil, err
	}
	if err := ctx.Declare(s.Name, ty, s.Pos); err != nil {
		return nil, err
	}
	return &Result{Kind: "declare", Display: eval.Print(eval.Quote(ty, level))}, nil
}

func runLet(ctx *context.Context, s *ast.Let) (*Result, error) {
	ty, err := types.Infer(ctx, s.Term)
	if err != nil {
		return nil, err
	}
	level := ctx.Len()
	val, err := eval.Eval(s.Term, ctx.Env())
	if err != nil {
		return nil, err
	}
	if err := ctx.Define(s.Name, ty, val, s.Pos); err != nil {
		return nil, err
	}
	return &Result{Kind: "let", Display: eval.Print(eval.Quote(val, level))}, nil
}

func runEval(ctx *context.Context, s *ast.Eval) (*Result, error) {
	if _, err := types.Infer(ctx, s.Term); err != nil {
		return nil, err
	}
	val, err := eval.Eval(s.Term, ctx.Env())
	if err != nil {
		return nil, err
	}
	return &Result{Kind: "eval", Display: eval.Print(eval.Quote(val, ctx.Len()))}, nil
}

func runShow(ctx *context.Context) *Result {
	entries := ctx.Entries()
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		line := fmt.Sprintf("%s :: %s", e.Name, eval.Print(eval.Quote(e.Type, i)))
		if e.IsDef {
			line += fmt.Sprintf(" := %s", eval.Print(eval.Quote(e.Value, len(entries))))
		}
		out += line
	}
	return &Result{Kind: "show", Display: out}
}
