package eval

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
)

// boundName is the display name lambdapi gives to a binder introduced at
// the given level: bound variables appear as "_<index>".
func boundName(level int) string {
	return fmt.Sprintf("_%d", level)
}

// Quote converts a value back into a surface AST by instantiating binders
// with fresh variables starting at level, forcing each closure exactly
// once. The result is used both for printing (REPL output) and, via
// structural comparison, for definitional equality (see internal/types).
func Quote(v Value, level int) ast.Expr {
	switch v := v.(type) {
	case VUniverse:
		return &ast.Universe{}
	case VNat:
		return &ast.Nat{}
	case VZero:
		return &ast.Zero{}
	case VSucc:
		return &ast.Succ{Arg: Quote(v.Pred, level)}
	case VLam:
		name := boundName(level)
		bodyVal, err := v.Closure.Apply(FreshNeutral(level))
		if err != nil {
			// Closures are only ever applied to values of the right shape
			// once type checking succeeds; a failure here means a prior
			// invariant was already violated.
			return &ast.Error{Msg: err.Error()}
		}
		return &ast.Lambda{Arg: name, Body: Quote(bodyVal, level+1)}
	case VPi:
		name := boundName(level)
		argTypeAst := Quote(v.ArgType, level)
		retVal, err := v.Closure.Apply(FreshNeutral(level))
		if err != nil {
			return &ast.Error{Msg: err.Error()}
		}
		return &ast.Pi{ArgName: name, ArgType: argTypeAst, RetType: Quote(retVal, level+1)}
	case VNeutral:
		return quoteNeutral(v.Neutral, level)
	default:
		return &ast.Error{Msg: fmt.Sprintf("quote: unhandled value %T", v)}
	}
}

func quoteNeutral(n Neutral, level int) ast.Expr {
	switch n := n.(type) {
	case NVar:
		if n.Name != "" {
			return &ast.Var{Name: n.Name}
		}
		return &ast.Var{Name: boundName(n.Level)}
	case NApp:
		return &ast.App{Fun: quoteNeutral(n.Fun, level), Arg: Quote(n.Arg, level)}
	default:
		return &ast.Error{Msg: fmt.Sprintf("quote: unhandled neutral %T", n)}
	}
}
