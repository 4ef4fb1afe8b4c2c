// Package types implements the bidirectional type checker and definitional
// equality for lambdapi's dependent core.
package types

import (
	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/context"
	"github.com/lambdapi/lambdapi/internal/errors"
	"github.com/lambdapi/lambdapi/internal/eval"
)

// Infer computes the type of term when no expected type is supplied ("⇒").
func Infer(ctx *context.Context, term ast.Expr) (eval.Value, error) {
	switch t := term.(type) {
	case *ast.Var:
		entry, ok := ctx.Lookup(t.Name)
		if !ok {
			return nil, errors.UnboundVariable(t.Name, t.Pos)
		}
		return entry.Type, nil

	case *ast.Universe:
		// One universe, 𝒰 : 𝒰 — accepted type-in-type, a known unsoundness.
		return eval.VUniverse{}, nil

	case *ast.Nat:
		return eval.VUniverse{}, nil

	case *ast.Zero:
		return eval.VNat{}, nil

	case *ast.Num:
		return eval.VNat{}, nil

	case *ast.Succ:
		if err := Check(ctx, t.Arg, eval.VNat{}); err != nil {
			return nil, err
		}
		return eval.VNat{}, nil

	case *ast.Pi:
		return inferPi(ctx, t)

	case *ast.Forall:
		return Infer(ctx, eval.Desugar(t))

	case *ast.App:
		funTy, err := Infer(ctx, t.Fun)
		if err != nil {
			return nil, err
		}
		pi, ok := funTy.(eval.VPi)
		if !ok {
			return nil, errors.ExpectedFunctionType(render(ctx, funTy), t.Fun.Position())
		}
		if err := Check(ctx, t.Arg, pi.ArgType); err != nil {
			return nil, err
		}
		argVal, err := eval.Eval(t.Arg, ctx.Env())
		if err != nil {
			return nil, err
		}
		return pi.Closure.Apply(argVal)

	case *ast.Annot:
		if err := Check(ctx, t.Type, eval.VUniverse{}); err != nil {
			return nil, err
		}
		ty, err := eval.Eval(t.Type, ctx.Env())
		if err != nil {
			return nil, err
		}
		if err := Check(ctx, t.Term, ty); err != nil {
			return nil, err
		}
		return ty, nil

	case *ast.Lambda:
		return nil, errors.CannotInferLambda(t.Pos)

	default:
		return nil, &errors.Internal{Message: "infer: unhandled node type"}
	}
}

func inferPi(ctx *context.Context, p *ast.Pi) (eval.Value, error) {
	if err := Check(ctx, p.ArgType, eval.VUniverse{}); err != nil {
		return nil, err
	}
	argType, err := eval.Eval(p.ArgType, ctx.Env())
	if err != nil {
		return nil, err
	}
	name := p.ArgName
	if name == "" {
		name = "_"
	}
	var retErr error
	err = ctx.WithAssumption(name, argType, func(eval.Value) error {
		retErr = Check(ctx, p.RetType, eval.VUniverse{})
		return retErr
	})
	if err != nil {
		return nil, err
	}
	return eval.VUniverse{}, nil
}

// Check verifies that term has the expected type ("⇐").
func Check(ctx *context.Context, term ast.Expr, expected eval.Value) error {
	if lam, ok := term.(*ast.Lambda); ok {
		pi, ok := expected.(eval.VPi)
		if !ok {
			return errors.ExpectedFunctionType(render(ctx, expected), lam.Pos)
		}
		var bodyErr error
		return ctx.WithAssumption(lam.Arg, pi.ArgType, func(argVal eval.Value) error {
			expectedBody, err := pi.Closure.Apply(argVal)
			if err != nil {
				return err
			}
			bodyErr = Check(ctx, lam.Body, expectedBody)
			return bodyErr
		})
	}

	inferred, err := Infer(ctx, term)
	if err != nil {
		return err
	}
	if !Equal(inferred, expected, ctx.Len()) {
		return errors.TypeMismatch(render(ctx, expected), render(ctx, inferred), term.Position())
	}
	return nil
}

// render quotes a type value back to source form for error messages,
// starting from the current context depth so free context variables print
// consistently with values produced by Quote elsewhere.
func render(ctx *context.Context, v eval.Value) string {
	return eval.Print(eval.Quote(v, ctx.Len()))
}
