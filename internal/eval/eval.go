package eval

import (
	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/errors"
)

// Eval reduces a surface term to weak-head normal form under env.
func Eval(term ast.Expr, env *Env) (Value, error) {
	switch t := term.(type) {
	case *ast.Var:
		if v, ok := env.Lookup(t.Name); ok {
			return v, nil
		}
		// Unreachable once the type checker has accepted the term: every
		// free variable it permits is already bound in env via a context
		// assumption or definition.
		return nil, &errors.Internal{Message: "unbound variable at eval time: " + t.Name}

	case *ast.Zero:
		return VZero{}, nil

	case *ast.Num:
		return evalNum(t.Value), nil

	case *ast.Succ:
		pred, err := Eval(t.Arg, env)
		if err != nil {
			return nil, err
		}
		return VSucc{Pred: pred}, nil

	case *ast.Nat:
		return VNat{}, nil

	case *ast.Universe:
		return VUniverse{}, nil

	case *ast.Lambda:
		return VLam{Closure: &Closure{Env: env, Arg: t.Arg, Body: t.Body}}, nil

	case *ast.App:
		fn, err := Eval(t.Fun, env)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(t.Arg, env)
		if err != nil {
			return nil, err
		}
		return Apply(fn, arg, t.Pos)

	case *ast.Pi:
		argType, err := Eval(t.ArgType, env)
		if err != nil {
			return nil, err
		}
		name := t.ArgName
		if name == "" {
			name = "_" // non-dependent arrow: body never references the argument
		}
		return VPi{ArgType: argType, Closure: &Closure{Env: env, Arg: name, Body: t.RetType}}, nil

	case *ast.Forall:
		return Eval(Desugar(t), env)

	case *ast.Annot:
		return Eval(t.Term, env)

	default:
		return nil, &errors.Internal{Message: "eval: unhandled node type"}
	}
}

// evalNum unfolds Num(n) into n applications of VSucc around VZero, so a
// numeral literal is interchangeable with its Succ-chain expansion.
func evalNum(n int) Value {
	var v Value = VZero{}
	for i := 0; i < n; i++ {
		v = VSucc{Pred: v}
	}
	return v
}

// Apply evaluates the application of fn to arg: β-reduction for VLam,
// neutral-extension for VNeutral, and NotAFunction otherwise.
func Apply(fn Value, arg Value, pos ast.Pos) (Value, error) {
	switch f := fn.(type) {
	case VLam:
		return f.Closure.Apply(arg)
	case VNeutral:
		return VNeutral{Neutral: NApp{Fun: f.Neutral, Arg: arg}}, nil
	default:
		return nil, errors.NotAFunction(String(fn), pos)
	}
}

// Desugar rewrites a Forall into a right-nested chain of Pi types:
// forall (x : T), (y : U). E  ==>  Pi(x, T, Pi(y, U, E))
func Desugar(f *ast.Forall) ast.Expr {
	body := f.Body
	for i := len(f.Bindings) - 1; i >= 0; i-- {
		b := f.Bindings[i]
		body = &ast.Pi{ArgName: b.Name, ArgType: b.Type, RetType: body, Pos: f.Pos}
	}
	return body
}
