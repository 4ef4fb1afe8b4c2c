package types

import (
	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/eval"
)

// Equal decides definitional equality of two values by quoting both at
// level and comparing the resulting ASTs structurally. Because Quote
// always names the binder opened at depth d as "_<d>", two values are
// alpha-equivalent exactly when their quoted forms are identical modulo
// source position — no separate alpha-renaming pass is needed. Mixed
// Num/Succ/Zero representations never reach this function: Eval already
// normalises every Num literal into a Succ/Zero chain before it becomes a
// Value.
func Equal(v1, v2 eval.Value, level int) bool {
	return equalExpr(eval.Quote(v1, level), eval.Quote(v2, level))
}

func equalExpr(a, b ast.Expr) bool {
	switch x := a.(type) {
	case *ast.Var:
		y, ok := b.(*ast.Var)
		return ok && x.Name == y.Name
	case *ast.Universe:
		_, ok := b.(*ast.Universe)
		return ok
	case *ast.Nat:
		_, ok := b.(*ast.Nat)
		return ok
	case *ast.Zero:
		_, ok := b.(*ast.Zero)
		return ok
	case *ast.Succ:
		y, ok := b.(*ast.Succ)
		return ok && equalExpr(x.Arg, y.Arg)
	case *ast.Lambda:
		y, ok := b.(*ast.Lambda)
		return ok && equalExpr(x.Body, y.Body)
	case *ast.Pi:
		y, ok := b.(*ast.Pi)
		return ok && equalExpr(x.ArgType, y.ArgType) && equalExpr(x.RetType, y.RetType)
	case *ast.App:
		y, ok := b.(*ast.App)
		return ok && equalExpr(x.Fun, y.Fun) && equalExpr(x.Arg, y.Arg)
	default:
		return false
	}
}
